package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionStore persists one session's bearer token and cached user profile.
// Key format: session:<sid>:token and session:<sid>:user. Both keys share the
// session TTL, refreshed on every write.
type SessionStore struct {
	client *redis.Client
	sid    string
	ttl    time.Duration
}

// NewSessionStore binds a store to the given session id. A TTL <= 0 falls
// back to defaultSessionTTL.
func NewSessionStore(client *redis.Client, sid string, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, sid: sid, ttl: ttl}
}

func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key("token"), token, s.ttl).Err()
}

// Token returns the stored bearer token, or "" when absent.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key("token")).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) ClearToken(ctx context.Context) error {
	return s.client.Del(ctx, s.key("token")).Err()
}

func (s *SessionStore) SetUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key("user"), raw, s.ttl).Err()
}

// User returns the cached profile. Absent or unparseable payloads read as
// nil, never an error.
func (s *SessionStore) User(ctx context.Context) (*domain.User, error) {
	raw, err := s.client.Get(ctx, s.key("user")).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == "null" {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (s *SessionStore) ClearUser(ctx context.Context) error {
	return s.client.Del(ctx, s.key("user")).Err()
}

func (s *SessionStore) key(field string) string {
	return "session:" + s.sid + ":" + field
}
