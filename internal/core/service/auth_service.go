package service

import (
	"context"
	"fmt"

	"github.com/kar-app/kar-portal/internal/api/metrics"
	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// AuthService implements login and registration against the backend. On
// success it persists the returned token and user to the session store before
// returning, so any subsequent read through the access guard sees the
// authenticated state.
type AuthService struct {
	gw    ports.Gateway
	store ports.SessionStore
}

func NewAuthService(gw ports.Gateway, store ports.SessionStore) *AuthService {
	return &AuthService{gw: gw, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authPayload is the data block of a successful login/register envelope.
type authPayload struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	env, err := s.gw.Post(ctx, "/api/auth/login", loginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	if !env.Success {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, env.Err("Login failed")
	}

	result, err := s.persist(ctx, env)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return result, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	env, err := s.gw.Post(ctx, "/api/auth/register", registerRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Registration failed")
	}
	return s.persist(ctx, env)
}

// persist writes token and user to the session store. The writes complete
// before the method returns.
func (s *AuthService) persist(ctx context.Context, env *domain.Envelope) (*ports.AuthResult, error) {
	var payload authPayload
	if err := env.Decode(&payload); err != nil {
		return nil, fmt.Errorf("auth: decode payload: %w", err)
	}

	if err := s.store.SetToken(ctx, payload.Token); err != nil {
		return nil, fmt.Errorf("auth: persist token: %w", err)
	}
	if err := s.store.SetUser(ctx, payload.User); err != nil {
		return nil, fmt.Errorf("auth: persist user: %w", err)
	}

	return &ports.AuthResult{User: payload.User, Token: payload.Token}, nil
}
