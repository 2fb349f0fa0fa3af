package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/api/metrics"
	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/service"
)

// Guard gates a protected view on the session state. Checks run in a fixed
// order and the first failing one decides the outcome:
//
//  1. session still restoring → neutral loading answer, no redirect
//  2. not authenticated → redirect to the login view
//  3. each required role, in declared order, not held → redirect to the
//     default dashboard
//
// Role checks are never evaluated for an unauthenticated session.
func Guard(require ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctrl, ok := c.Get(ContextKeySession).(*service.SessionController)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
			}
			state := ctrl.State()

			if state.IsRestoring {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusOK, map[string]string{"status": "restoring"})
			}

			if !state.IsAuthenticated {
				metrics.GuardDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			for _, role := range require {
				if state.Role() != role {
					metrics.GuardDenialsTotal.WithLabelValues("role").Inc()
					return c.Redirect(http.StatusSeeOther, DashboardPath)
				}
			}

			return next(c)
		}
	}
}
