package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
	"github.com/kar-app/kar-portal/internal/gateway"
)

// Context keys under which the session plumbing is stashed for handlers.
const (
	ContextKeySession = "session_controller"
	ContextKeyGateway = "session_gateway"
)

// Portal navigation targets used by the guard and the error handler.
const (
	LoginPath     = "/auth/login"
	DashboardPath = "/dashboard"
)

// StoreFactory yields the session store bound to a session id.
type StoreFactory func(sid string) ports.SessionStore

// SessionConfig carries the dependencies of the Session middleware.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	Stores     StoreFactory
	Gateway    *gateway.Client
}

// Session resolves the browser's session cookie (issuing one when absent),
// binds the gateway client and a session controller to that session, restores
// persisted state, and stashes both in the request context. The controller
// subscribes to the gateway's 401 hook so an authorization expiry anywhere
// resets the session state.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := cfg.Stores(sid)
			gw := cfg.Gateway.WithSession(store)
			ctrl := service.NewSessionController(store, service.NewAuthService(gw, store))
			gw.OnUnauthorized(ctrl.Invalidate)
			ctrl.Restore(c.Request().Context())

			c.Set(ContextKeySession, ctrl)
			c.Set(ContextKeyGateway, gw)

			return next(c)
		}
	}
}
