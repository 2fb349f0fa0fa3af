package ports

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// UpdateUserInput carries a partial user update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string      `json:"username,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
}

// AdminService wraps the /api/admin resource family. All calls require the
// admin role on the backend side; the portal additionally gates the routes.
type AdminService interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// GarageUserInput carries the fields a garage supplies when creating or
// updating one of its client accounts.
type GarageUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// GarageService wraps the /api/garage/users resource family.
type GarageService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input GarageUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input GarageUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
