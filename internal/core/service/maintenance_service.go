package service

import (
	"context"
	"net/url"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// MaintenanceService is the typed façade over /api/services, the maintenance
// record resource.
type MaintenanceService struct {
	gw ports.Gateway
}

func NewMaintenanceService(gw ports.Gateway) *MaintenanceService {
	return &MaintenanceService{gw: gw}
}

type serviceListPayload struct {
	Services []domain.Service `json:"services"`
	Count    int              `json:"count"`
}

type servicePayload struct {
	Service *domain.Service `json:"service"`
}

func (s *MaintenanceService) List(ctx context.Context, filter ports.ServiceFilter) ([]domain.Service, error) {
	endpoint := "/api/services"
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.VehicleID != "" {
		q.Set("vehicleId", filter.VehicleID)
	}
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	env, err := s.gw.Get(ctx, endpoint)
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

func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.Service, error) {
	env, err := s.gw.Get(ctx, "/api/services/"+id)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch service")
	}

	var payload servicePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Service, nil
}

func (s *MaintenanceService) Create(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	env, err := s.gw.Post(ctx, "/api/services", input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to create service")
	}

	var payload servicePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Service, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	env, err := s.gw.Put(ctx, "/api/services/"+id, input)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to update service")
	}

	var payload servicePayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Service, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	env, err := s.gw.Delete(ctx, "/api/services/"+id)
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err("Failed to delete service")
	}
	return nil
}

// NotificationService is the typed façade over GET /api/notifications.
type NotificationService struct {
	gw ports.Gateway
}

func NewNotificationService(gw ports.Gateway) *NotificationService {
	return &NotificationService{gw: gw}
}

func (s *NotificationService) Feed(ctx context.Context) (*domain.NotificationFeed, error) {
	env, err := s.gw.Get(ctx, "/api/notifications")
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err("Failed to fetch notifications")
	}

	var feed domain.NotificationFeed
	if err := env.Decode(&feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
