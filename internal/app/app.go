// Package app wires config, logger, store, service and HTTP layer together.
// The store is created here and handed to everything that needs it; there is no
// package-level state.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/user-directory/internal/config"
	"github.com/maxviazov/user-directory/internal/handler"
	"github.com/maxviazov/user-directory/internal/repository/memory"
	"github.com/maxviazov/user-directory/internal/server"
	"github.com/maxviazov/user-directory/internal/service"
)

type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Store   *memory.UserStore
	Users   service.UserService
	Handler http.Handler
}

// New builds the application graph. It seeds the store when cfg.Seed.Path is set.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	store := memory.NewUserStore()
	users := service.NewUserService(store, logger, service.Options{
		DefaultPageSize: cfg.Pagination.DefaultSize,
		MaxPageSize:     cfg.Pagination.MaxSize,
	})

	if cfg.Seed.Path != "" {
		n, err := seed(ctx, users, cfg.Seed.Path, logger)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("users", n).Str("path", cfg.Seed.Path).Msg("seed fixtures loaded")
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog(logger))
	handler.Register(r, store, users, logger)

	return &App{Config: cfg, Log: logger, Store: store, Users: users, Handler: r}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv := server.New(a.Config.App.Addr, a.Handler, server.Options{
		ReadTimeout:  a.Config.App.ReadTimeout,
		WriteTimeout: a.Config.App.WriteTimeout,
	}, a.Log)
	return srv.Run(ctx, a.Config.App.ShutdownTimeout)
}

// seed goes through the service so fixtures obey the same rules as form input.
// Invalid entries are logged and skipped; only an unreadable file is fatal.
func seed(ctx context.Context, users service.UserService, path string, logger zerolog.Logger) (int, error) {
	fixtures, err := memory.LoadSeedFile(path)
	if err != nil {
		return 0, err
	}
	added := 0
	for i, f := range fixtures {
		_, err := users.CreateUser(ctx, service.UserInput{
			LastName:  f.LastName,
			FirstName: f.FirstName,
			Email:     f.Email,
			BirthDate: f.BirthDate,
		})
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Interface("field_errors", service.FieldErrors(err)).Msg("seed user skipped")
			continue
		}
		added++
	}
	if added == 0 && len(fixtures) > 0 {
		return 0, fmt.Errorf("seed file %s: no valid users", path)
	}
	return added, nil
}
