package ports

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is the backend's answer to a successful login or registration.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService authenticates against the backend. Successful calls persist
// the token and user to the session store before returning — the only domain
// service with a persistence side effect.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
}
