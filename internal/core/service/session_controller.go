package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// SessionState is a point-in-time snapshot of a session's authentication
// state. IsRestoring is true only between controller construction and the
// completion of Restore.
type SessionState struct {
	User            *domain.User
	IsAuthenticated bool
	IsRestoring     bool
}

// Role returns the effective role, defaulting to RoleUser when no profile is
// cached.
func (s SessionState) Role() domain.Role {
	if s.User == nil {
		return domain.RoleUser
	}
	return s.User.Role
}

// SessionController owns the authentication state of one session. State is
// derived from the session store at restore time and updated by
// login/register/logout and by gateway-reported 401s. Writes are
// last-write-wins; the store itself is the only shared mutable state.
type SessionController struct {
	store ports.SessionStore
	auth  ports.AuthService

	mu    sync.Mutex
	state SessionState
}

func NewSessionController(store ports.SessionStore, auth ports.AuthService) *SessionController {
	return &SessionController{
		store: store,
		auth:  auth,
		state: SessionState{IsRestoring: true},
	}
}

// Restore loads the persisted session. A token present in the store means
// authenticated; an expired JWT-shaped token is cleared instead of being sent
// to the backend just to bounce off a 401.
func (c *SessionController) Restore(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.state.IsRestoring = false }()

	token, err := c.store.Token(ctx)
	if err != nil || token == "" {
		c.state.User = nil
		c.state.IsAuthenticated = false
		return
	}

	if tokenExpired(token) {
		_ = c.store.ClearToken(ctx)
		_ = c.store.ClearUser(ctx)
		c.state.User = nil
		c.state.IsAuthenticated = false
		return
	}

	user, _ := c.store.User(ctx)
	c.state.User = user
	c.state.IsAuthenticated = true
}

// State returns a snapshot of the current session state.
func (c *SessionController) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Login delegates to the auth service. On success the session store has
// already been written by the time state is updated; on failure state is left
// untouched and the error propagates to the caller.
func (c *SessionController) Login(ctx context.Context, creds ports.Credentials) (*domain.User, error) {
	result, err := c.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	c.setAuthenticated(result.User)
	return result.User, nil
}

// Register mirrors Login via the registration endpoint.
func (c *SessionController) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	result, err := c.auth.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	c.setAuthenticated(result.User)
	return result.User, nil
}

// Logout clears the session store and resets state. Purely local token
// invalidation — the backend is never called — and safe to repeat.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.store.ClearToken(ctx); err != nil {
		return err
	}
	if err := c.store.ClearUser(ctx); err != nil {
		return err
	}
	c.reset()
	return nil
}

// Invalidate resets in-memory state after the gateway expired the session on
// a 401. The store is already empty at that point.
func (c *SessionController) Invalidate(context.Context) {
	c.reset()
}

func (c *SessionController) setAuthenticated(user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = SessionState{User: user, IsAuthenticated: true}
}

func (c *SessionController) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = SessionState{}
}

// tokenExpired screens JWT-shaped tokens for a past exp claim without
// verifying the signature — verification is the backend's job. Opaque tokens
// and JWTs without exp pass through.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
