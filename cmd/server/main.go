// KAR portal: the web frontend of the KAR vehicle-maintenance product.
// Serves the client, admin, and garage dashboards and consumes the remote
// KAR REST backend for all data.
//
// @title           KAR Portal API
// @version         1.0
// @description     Session-backed portal over the KAR vehicle-maintenance backend.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"

	"github.com/kar-app/kar-portal/internal/api"
	redisdb "github.com/kar-app/kar-portal/internal/infrastructure/db/redis"
	"github.com/kar-app/kar-portal/internal/pkg/config"
	"github.com/kar-app/kar-portal/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kar-portal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	figure.NewFigure("kar portal", "cybermedium", true).Print()
	fmt.Println()

	var rdb *redis.Client
	if cfg.Session.Backend != "memory" {
		var err error
		rdb, err = redisdb.Connect(context.Background(), redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
	}

	e := api.NewRouter(cfg, rdb, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", cfg.APIBaseURL).
			Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("portal stopped")
	return nil
}
