package service

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// VehicleService is the typed façade over /api/vehicles.
type VehicleService struct {
	gw ports.Gateway
}

func NewVehicleService(gw ports.Gateway) *VehicleService {
	return &VehicleService{gw: gw}
}

type vehicleListPayload struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
}

type vehiclePayload struct {
	Vehicle *domain.Vehicle `json:"vehicle"`
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	env, err := s.gw.Get(ctx, "/api/vehicles")
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

func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	env, err := s.gw.Get(ctx, "/api/vehicles/"+id)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch vehicle")
	}

	var payload vehiclePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Vehicle, nil
}

func (s *VehicleService) Create(ctx context.Context, input ports.VehicleInput) (*domain.Vehicle, error) {
	env, err := s.gw.Post(ctx, "/api/vehicles", input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to create vehicle")
	}

	var payload vehiclePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id string, input ports.VehicleInput) (*domain.Vehicle, error) {
	env, err := s.gw.Put(ctx, "/api/vehicles/"+id, input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to update vehicle")
	}

	var payload vehiclePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/vehicles/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete vehicle")
	}
	return nil
}
