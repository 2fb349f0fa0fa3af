package ports

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// Gateway is the single chokepoint for backend calls. Implementations attach
// the bearer token, normalise errors, and react to authorization expiry;
// callers interpret the envelope's success flag themselves.
type Gateway interface {
	Get(ctx context.Context, path string) (*domain.Envelope, error)
	Post(ctx context.Context, path string, body any) (*domain.Envelope, error)
	Put(ctx context.Context, path string, body any) (*domain.Envelope, error)
	Delete(ctx context.Context, path string) (*domain.Envelope, error)
}

// SessionStore holds the bearer token and cached user profile for one
// session, durably across restarts. Reads fail soft: an absent token is ""
// and an absent or unparseable user is nil, never an error.
type SessionStore interface {
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error

	SetUser(ctx context.Context, user *domain.User) error
	User(ctx context.Context) (*domain.User, error)
	ClearUser(ctx context.Context) error
}
