package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// GarageHandler exposes the garage dashboard: the client accounts a garage
// manages. Routes are mounted behind the garage access guard.
type GarageHandler struct{}

func NewGarageHandler() *GarageHandler {
	return &GarageHandler{}
}

type garageUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type garageUserUpdateRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// ListUsers handles GET /garage/users.
//
// @Summary      List the garage's client accounts
// @Tags         garage
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /garage/users [get]
func (h *GarageHandler) ListUsers(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	users, err := service.NewGarageService(gw).ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users, "count": len(users)})
}

// CreateUser handles POST /garage/users.
//
// @Summary      Create a client account
// @Tags         garage
// @Accept       json
// @Produce      json
// @Param        body  body      garageUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /garage/users [post]
func (h *GarageHandler) CreateUser(c echo.Context) error {
	var req garageUserRequest
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

	user, err := service.NewGarageService(gw).CreateUser(c.Request().Context(), ports.GarageUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /garage/users/:id.
//
// @Summary      Update a client account
// @Tags         garage
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "User id"
// @Param        body  body      garageUserUpdateRequest  true  "Account details"
// @Success      200   {object}  domain.User
// @Router       /garage/users/{id} [put]
func (h *GarageHandler) UpdateUser(c echo.Context) error {
	var req garageUserUpdateRequest
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

	user, err := service.NewGarageService(gw).UpdateUser(c.Request().Context(), c.Param("id"), ports.GarageUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /garage/users/:id.
//
// @Summary      Delete a client account
// @Tags         garage
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /garage/users/{id} [delete]
func (h *GarageHandler) DeleteUser(c echo.Context) error {
	gw, err := ctxGateway(c)
	if err != nil {
		return err
	}

	if err := service.NewGarageService(gw).DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
