package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// VehicleHandler handles the authenticated user's vehicles. Mutations return
// the backend's document and clients re-list; the portal never patches local
// state (refetch-after-mutation policy).
type VehicleHandler struct{}

func NewVehicleHandler() *VehicleHandler {
	return &VehicleHandler{}
}

type vehicleRequest struct {
	Marque          string `json:"marque" validate:"required"`
	Modele          string `json:"modele" validate:"required"`
	Annee           int    `json:"annee" validate:"required,gte=1900,lte=2100"`
	Immatriculation string `json:"immatriculation" validate:"required"`
}

type vehicleListResponse struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
}

func (r vehicleRequest) input() ports.VehicleInput {
	return ports.VehicleInput{
		Marque:          r.Marque,
		Modele:          r.Modele,
		Annee:           r.Annee,
		Immatriculation: r.Immatriculation,
	}
}

// List handles GET /vehicles.
//
// @Summary      List the session user's vehicles
// @Tags         vehicles
// @Produce      json
// @Success      200  {object}  vehicleListResponse
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	vehicles, err := service.NewVehicleService(gw).List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleListResponse{Vehicles: vehicles, Count: len(vehicles)})
}

// Get handles GET /vehicles/:id.
//
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id   path      string  true  "Vehicle id"
// @Success      200  {object}  domain.Vehicle
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	vehicle, err := service.NewVehicleService(gw).Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Create handles POST /vehicles.
//
// @Summary      Create a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      vehicleRequest  true  "Vehicle details"
// @Success      201   {object}  domain.Vehicle
// @Failure      400   {object}  map[string]string
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleRequest
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

	vehicle, err := service.NewVehicleService(gw).Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// Update handles PUT /vehicles/:id.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Vehicle id"
// @Param        body  body      vehicleRequest  true  "Vehicle details"
// @Success      200   {object}  domain.Vehicle
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	var req vehicleRequest
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

	vehicle, err := service.NewVehicleService(gw).Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Delete handles DELETE /vehicles/:id.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Param        id  path  string  true  "Vehicle id"
// @Success      204
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewVehicleService(gw).Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
