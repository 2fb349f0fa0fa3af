package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/kar-app/kar-portal/docs"
	"github.com/kar-app/kar-portal/internal/api/handler"
	"github.com/kar-app/kar-portal/internal/api/middleware"
	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/gateway"
	memorydb "github.com/kar-app/kar-portal/internal/infrastructure/db/memory"
	redisdb "github.com/kar-app/kar-portal/internal/infrastructure/db/redis"
	"github.com/kar-app/kar-portal/internal/infrastructure/http/handlers"
	"github.com/kar-app/kar-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the in-memory session backend is configured.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("karportal"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no session required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(rdb, cfg.APIBaseURL).Readiness)

	// --- Session plumbing ---
	var stores middleware.StoreFactory
	if cfg.Session.Backend == "memory" {
		registry := memorydb.NewRegistry()
		stores = func(sid string) ports.SessionStore { return registry.ForSession(sid) }
	} else {
		stores = func(sid string) ports.SessionStore {
			return redisdb.NewSessionStore(rdb, sid, cfg.Session.TTL)
		}
	}

	session := middleware.Session(middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Env == "production",
		Stores:     stores,
		Gateway:    gateway.New(cfg.APIBaseURL, nil, log),
	})

	// --- Auth flows (session attached, no guard) ---
	authHandler := handler.NewAuthHandler()
	auth := e.Group("/auth", session)
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Client views (authenticated) ---
	vehicleHandler := handler.NewVehicleHandler()
	serviceHandler := handler.NewServiceHandler()

	app := e.Group("", session, middleware.Guard())
	app.GET("/dashboard", handler.NewDashboardHandler().Overview)
	app.GET("/notifications", handler.NewNotificationHandler().Feed)

	app.GET("/vehicles", vehicleHandler.List)
	app.POST("/vehicles", vehicleHandler.Create)
	app.GET("/vehicles/:id", vehicleHandler.Get)
	app.PUT("/vehicles/:id", vehicleHandler.Update)
	app.DELETE("/vehicles/:id", vehicleHandler.Delete)

	app.GET("/services", serviceHandler.List)
	app.POST("/services", serviceHandler.Create)
	app.GET("/services/:id", serviceHandler.Get)
	app.PUT("/services/:id", serviceHandler.Update)
	app.DELETE("/services/:id", serviceHandler.Delete)

	// --- Admin views ---
	adminHandler := handler.NewAdminHandler()
	admin := e.Group("/admin", session, middleware.Guard(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/vehicles", adminHandler.ListVehicles)
	admin.DELETE("/vehicles/:id", adminHandler.DeleteVehicle)
	admin.GET("/services", adminHandler.ListServices)
	admin.DELETE("/services/:id", adminHandler.DeleteService)

	// --- Garage views ---
	garageHandler := handler.NewGarageHandler()
	garage := e.Group("/garage", session, middleware.Guard(domain.RoleGarage))
	garage.GET("/users", garageHandler.ListUsers)
	garage.POST("/users", garageHandler.CreateUser)
	garage.PUT("/users/:id", garageHandler.UpdateUser)
	garage.DELETE("/users/:id", garageHandler.DeleteUser)

	return e
}
