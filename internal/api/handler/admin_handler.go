package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// AdminHandler exposes the admin dashboard: platform statistics and
// management of all users, vehicles, and maintenance records. Routes are
// mounted behind the admin access guard.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin garage"`
}

// Stats handles GET /admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AdminStats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	stats, err := service.NewAdminService(gw).Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	users, err := service.NewAdminService(gw).ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users, "count": len(users)})
}

// GetUser handles GET /admin/users/:id.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	user, err := service.NewAdminService(gw).GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /admin/users/:id. Absent fields are left untouched.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateUserInput{Username: req.Username, Email: req.Email}
	if req.Role != nil {
		role := domain.ParseRole(*req.Role)
		input.Role = &role
	}

	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	user, err := service.NewAdminService(gw).UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewAdminService(gw).DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListVehicles handles GET /admin/vehicles.
//
// @Summary      List all vehicles
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/vehicles [get]
func (h *AdminHandler) ListVehicles(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	vehicles, err := service.NewAdminService(gw).ListVehicles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"vehicles": vehicles, "count": len(vehicles)})
}

// DeleteVehicle handles DELETE /admin/vehicles/:id.
//
// @Summary      Delete a vehicle
// @Tags         admin
// @Param        id  path  string  true  "Vehicle id"
// @Success      204
// @Router       /admin/vehicles/{id} [delete]
func (h *AdminHandler) DeleteVehicle(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewAdminService(gw).DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListServices handles GET /admin/services.
//
// @Summary      List all maintenance records
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/services [get]
func (h *AdminHandler) ListServices(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	services, err := service.NewAdminService(gw).ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"services": services, "count": len(services)})
}

// DeleteService handles DELETE /admin/services/:id.
//
// @Summary      Delete a maintenance record
// @Tags         admin
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Router       /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewAdminService(gw).DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
