package service

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// GarageService is the typed façade over /api/garage/users, the client
// accounts managed by a garage. Unlike the rest of the admin surface, the
// backend returns bare user documents in data (no wrapper object).
type GarageService struct {
	gw ports.Gateway
}

func NewGarageService(gw ports.Gateway) *GarageService {
	return &GarageService{gw: gw}
}

func (s *GarageService) ListUsers(ctx context.Context) ([]domain.User, error) {
	env, err := s.gw.Get(ctx, "/api/garage/users")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch users")
	}

	var users []domain.User
	if err := env.Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GarageService) CreateUser(ctx context.Context, input ports.GarageUserInput) (*domain.User, error) {
	env, err := s.gw.Post(ctx, "/api/garage/users", input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to create user")
	}

	var user domain.User
	if err := env.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GarageService) UpdateUser(ctx context.Context, id string, input ports.GarageUserInput) (*domain.User, error) {
	env, err := s.gw.Put(ctx, "/api/garage/users/"+id, input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to update user")
	}

	var user domain.User
	if err := env.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GarageService) DeleteUser(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/garage/users/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete user")
	}
	return nil
}
