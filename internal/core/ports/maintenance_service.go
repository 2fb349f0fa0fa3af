package ports

import (
	"context"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// ServiceInput carries the writable fields of a maintenance record.
type ServiceInput struct {
	Vehicle     string             `json:"vehicle"`
	Type        domain.ServiceType `json:"type"`
	Date        string             `json:"date"`
	Kilometrage int                `json:"kilometrage"`
	Notes       string             `json:"notes,omitempty"`
}

// ServiceFilter narrows a maintenance listing. Zero values mean no filter.
type ServiceFilter struct {
	Type      string
	VehicleID string
}

// MaintenanceService wraps the /api/services resource family.
type MaintenanceService interface {
	List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, input ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// NotificationService wraps GET /api/notifications.
type NotificationService interface {
	Feed(ctx context.Context) (*domain.NotificationFeed, error)
}
