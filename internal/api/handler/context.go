package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/api/middleware"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// ctxSession extracts the session controller installed by the Session
// middleware. Its absence is a wiring bug, not a client error.
func ctxSession(c echo.Context) (*service.SessionController, error) {
	ctrl, ok := c.Get(middleware.ContextKeySession).(*service.SessionController)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}
	return ctrl, nil
}

// ctxGateway extracts the session-bound gateway client.
func ctxGateway(c echo.Context) (ports.Gateway, error) {
	gw, ok := c.Get(middleware.ContextKeyGateway).(ports.Gateway)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}
	return gw, nil
}
