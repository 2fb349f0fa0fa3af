package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

const recentServicesLimit = 5

// DashboardHandler aggregates the client dashboard view: the user's
// vehicles, their most recent maintenance, and the notification summary.
// The view is always re-derived from fresh list fetches, never from cached
// state.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type recentService struct {
	ID           string             `json:"id"`
	Type         domain.ServiceType `json:"type"`
	Date         string             `json:"date"`
	Kilometrage  int                `json:"kilometrage"`
	VehicleLabel string             `json:"vehicleLabel"`
}

type dashboardResponse struct {
	User           *domain.User               `json:"user"`
	Vehicles       []domain.Vehicle           `json:"vehicles"`
	RecentServices []recentService            `json:"recentServices"`
	Notifications  domain.NotificationSummary `json:"notifications"`
}

// Overview handles GET /dashboard.
//
// @Summary      Client dashboard overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctrl, err := ctxSession(c)
	if err != nil {
		return err
	}
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	vehicles, err := service.NewVehicleService(gw).List(ctx)
	if err != nil {
		return err
	}
	records, err := service.NewMaintenanceService(gw).List(ctx, ports.ServiceFilter{})
	if err != nil {
		return err
	}
	feed, err := service.NewNotificationService(gw).Feed(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		User:           ctrl.State().User,
		Vehicles:       vehicles,
		RecentServices: recentFirst(records, vehicles),
		Notifications:  feed.Summary,
	})
}

// recentFirst sorts maintenance records newest first and resolves each
// vehicle reference to a display label. Dangling references render as
// "Véhicule inconnu" rather than failing.
func recentFirst(records []domain.Service, vehicles []domain.Vehicle) []recentService {
	byID := make(map[string]*domain.Vehicle, len(vehicles))
	for i := range vehicles {
		byID[vehicles[i].ID] = &vehicles[i]
	}

	// ISO-8601 dates sort lexicographically
	sorted := make([]domain.Service, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	if len(sorted) > recentServicesLimit {
		sorted = sorted[:recentServicesLimit]
	}

	out := make([]recentService, 0, len(sorted))
	for _, record := range sorted {
		label := record.Vehicle.Label()
		if record.Vehicle.Vehicle == nil {
			if v, ok := byID[record.Vehicle.ID]; ok {
				label = v.Label()
			}
		}
		out = append(out, recentService{
			ID:           record.ID,
			Type:         record.Type,
			Date:         record.Date,
			Kilometrage:  record.Kilometrage,
			VehicleLabel: label,
		})
	}
	return out
}
