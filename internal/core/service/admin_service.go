package service

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// AdminService is the typed façade over /api/admin. The backend enforces the
// admin role; the portal's access guard gates the routes as well.
type AdminService struct {
	gw ports.Gateway
}

func NewAdminService(gw ports.Gateway) *AdminService {
	return &AdminService{gw: gw}
}

type userListPayload struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

type userPayload struct {
	User *domain.User `json:"user"`
}

func (s *AdminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	env, err := s.gw.Get(ctx, "/api/admin/stats")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch admin statistics")
	}

	var stats domain.AdminStats
	if err := env.Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	env, err := s.gw.Get(ctx, "/api/admin/users")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch users")
	}

	var payload userListPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

func (s *AdminService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	env, err := s.gw.Get(ctx, "/api/admin/users/"+id)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch user")
	}

	var payload userPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	env, err := s.gw.Put(ctx, "/api/admin/users/"+id, input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to update user")
	}

	var payload userPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/admin/users/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete user")
	}
	return nil
}

func (s *AdminService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	env, err := s.gw.Get(ctx, "/api/admin/vehicles")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch vehicles")
	}

	var payload vehicleListPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Vehicles, nil
}

func (s *AdminService) DeleteVehicle(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/admin/vehicles/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete vehicle")
	}
	return nil
}

func (s *AdminService) ListServices(ctx context.Context) ([]domain.Service, error) {
	env, err := s.gw.Get(ctx, "/api/admin/services")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch services")
	}

	var payload serviceListPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Services, nil
}

func (s *AdminService) DeleteService(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/admin/services/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete service")
	}
	return nil
}
