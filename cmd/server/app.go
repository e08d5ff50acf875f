package main

import (
	"fmt"
	"log/slog"

	"github.com/freshfest/gateway-api/internal/client"
	"github.com/freshfest/gateway-api/internal/config"
	"github.com/freshfest/gateway-api/internal/platform/logger"
	"github.com/freshfest/gateway-api/internal/service/auth"
	"github.com/freshfest/gateway-api/internal/service/baan"
	"github.com/freshfest/gateway-api/internal/service/checkin"
	"github.com/freshfest/gateway-api/internal/service/estamp"
	"github.com/freshfest/gateway-api/internal/service/file"
	"github.com/freshfest/gateway-api/internal/service/group"
	"github.com/freshfest/gateway-api/internal/service/staff"
	"github.com/freshfest/gateway-api/internal/service/user"
)

// application bundles the gateway's shared dependencies: configuration,
// logging, the gRPC connection pool, and the domain services built on it.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *client.Pool

	authSvc    *auth.Service
	userSvc    *user.Service
	baanSvc    *baan.Service
	groupSvc   *group.Service
	fileSvc    *file.Service
	checkinSvc *checkin.Service
	estampSvc  *estamp.Service
	staffSvc   *staff.Service
}

// newApplication loads configuration, sets up logging, dials the backends,
// and wires the domain services.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"checkin_day", cfg.Event.CheckinDay)

	pool, err := client.NewPool(cfg.Services)
	if err != nil {
		return nil, fmt.Errorf("failed to dial backend services: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     log,
		pool:       pool,
		authSvc:    auth.NewService(pool.Auth()),
		userSvc:    user.NewService(pool.User()),
		baanSvc:    baan.NewService(pool.Baan()),
		groupSvc:   group.NewService(pool.Group()),
		fileSvc:    file.NewService(pool.File()),
		checkinSvc: checkin.NewService(pool.CheckinUser(), cfg.Event),
		estampSvc:  estamp.NewService(pool.CheckinEvent(), pool.CheckinUser(), cfg.Event),
		staffSvc:   staff.NewService(pool.CheckinStaff()),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.pool.Close(); err != nil {
		app.logger.Error("failed to close backend connections", "error", err)
	}
}
