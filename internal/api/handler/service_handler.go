package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// ServiceHandler handles the maintenance records of the session user's
// vehicles.
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

type serviceRequest struct {
	Vehicle     string `json:"vehicle" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Vidange Freins Pneus Filtres Batterie Révision Autre"`
	Date        string `json:"date" validate:"required"`
	Kilometrage int    `json:"kilometrage" validate:"gte=0"`
	Notes       string `json:"notes"`
}

type serviceListResponse struct {
	Services []domain.Service `json:"services"`
	Count    int              `json:"count"`
}

func (r serviceRequest) input() ports.ServiceInput {
	return ports.ServiceInput{
		Vehicle:     r.Vehicle,
		Type:        domain.ServiceType(r.Type),
		Date:        r.Date,
		Kilometrage: r.Kilometrage,
		Notes:       r.Notes,
	}
}

// List handles GET /services with optional type and vehicleId filters.
//
// @Summary      List maintenance records
// @Tags         services
// @Produce      json
// @Param        type       query     string  false  "Service type filter"
// @Param        vehicleId  query     string  false  "Vehicle id filter"
// @Success      200        {object}  serviceListResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	services, err := service.NewMaintenanceService(gw).List(c.Request().Context(), ports.ServiceFilter{
		Type:      c.QueryParam("type"),
		VehicleID: c.QueryParam("vehicleId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: services, Count: len(services)})
}

// Get handles GET /services/:id.
//
// @Summary      Get a maintenance record
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	record, err := service.NewMaintenanceService(gw).Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /services.
//
// @Summary      Create a maintenance record
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	record, err := service.NewMaintenanceService(gw).Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /services/:id.
//
// @Summary      Update a maintenance record
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  domain.Service
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	record, err := service.NewMaintenanceService(gw).Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /services/:id.
//
// @Summary      Delete a maintenance record
// @Tags         services
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewMaintenanceService(gw).Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// NotificationHandler serves the maintenance reminder feed.
type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Feed handles GET /notifications.
//
// @Summary      Maintenance reminders for the session user
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  domain.NotificationFeed
// @Router       /notifications [get]
func (h *NotificationHandler) Feed(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	feed, err := service.NewNotificationService(gw).Feed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}
