// Package memory provides an in-process session store, used as the
// SESSION_BACKEND=memory development backend and as the store in tests.
// Sessions do not survive a restart.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// SessionStore keeps one session's token and serialised user in memory. The
// user is stored as JSON so corrupt-payload behaviour matches the Redis
// implementation.
type SessionStore struct {
	mu    sync.Mutex
	token string
	user  string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *SessionStore) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *SessionStore) ClearToken(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *SessionStore) SetUser(_ context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = string(raw)
	return nil
}

func (s *SessionStore) User(context.Context) (*domain.User, error) {
	s.mu.Lock()
	raw := s.user
	s.mu.Unlock()

	if raw == "" || raw == "null" {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (s *SessionStore) ClearUser(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = ""
	return nil
}

// CorruptUser overwrites the stored user payload with non-JSON text. Test
// helper for the fail-soft read path.
func (s *SessionStore) CorruptUser(payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = payload
}
