package ports

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// VehicleInput carries the writable fields of a vehicle.
type VehicleInput struct {
	Marque          string `json:"marque"`
	Modele          string `json:"modele"`
	Annee           int    `json:"annee"`
	Immatriculation string `json:"immatriculation"`
}

// VehicleService wraps the /api/vehicles resource family.
type VehicleService interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, input VehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, input VehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
