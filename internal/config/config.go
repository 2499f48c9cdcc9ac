package config

import (
	"time"

	"github.com/maxviazov/user-directory/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after its own defaults
	Pagination PaginationConfig    `mapstructure:"pagination"`
	Seed       SeedConfig          `mapstructure:"seed"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// PaginationConfig bounds the page size accepted from clients.
type PaginationConfig struct {
	DefaultSize int `mapstructure:"default_size" validate:"gte=1"`
	MaxSize     int `mapstructure:"max_size" validate:"gtefield=DefaultSize"`
}

// SeedConfig points at an optional YAML fixture file loaded at startup.
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// InheritLoggerSettings fills logger fields the file left empty from the app section.
// The logger has no "test" env, so test runs log like dev.
func (c *Config) InheritLoggerSettings() {
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = c.App.Name
	}
	if c.Logger.ServiceVersion == "" {
		c.Logger.ServiceVersion = c.App.Version
	}
	if c.Logger.Env == "" {
		switch c.App.Env {
		case "dev", "staging", "prod":
			c.Logger.Env = c.App.Env
		case "test":
			c.Logger.Env = "dev"
		}
	}
}
