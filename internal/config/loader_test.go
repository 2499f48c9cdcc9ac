package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/user-directory/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	path := writeTempConfig(t, `
app:
  name: user-directory
  version: 1.2.3
  env: test
  addr: 127.0.0.1:18080
  shutdown_timeout: 3s

logger:
  level: info
  format: json

pagination:
  default_size: 20
  max_size: 50

seed:
  path: fixtures/users.yaml
`)
	t.Setenv("APP_APP_ADDR", ":9090")
	t.Setenv("APP_PAGINATION_MAX_SIZE", "80")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, ":9090", cfg.App.Addr, "env overrides file")
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Pagination.DefaultSize)
	assert.Equal(t, 80, cfg.Pagination.MaxSize)
	assert.Equal(t, "fixtures/users.yaml", cfg.Seed.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "user-directory", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.App.Addr)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Pagination.DefaultSize)
	assert.Equal(t, 100, cfg.Pagination.MaxSize)
	assert.Empty(t, cfg.Seed.Path)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown env", "app:\n  env: qa\n"},
		{"max below default", "pagination:\n  default_size: 20\n  max_size: 5\n"},
		{"zero default size", "pagination:\n  default_size: 0\n"},
		{"empty addr", "app:\n  addr: \"\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestInheritLoggerSettings(t *testing.T) {
	cfg, err := config.Load(writeTempConfig(t, "app:\n  name: dir\n  version: 9.9.9\n  env: test\n"))
	require.NoError(t, err)

	cfg.InheritLoggerSettings()
	assert.Equal(t, "dir", cfg.Logger.ServiceName)
	assert.Equal(t, "9.9.9", cfg.Logger.ServiceVersion)
	assert.Equal(t, "dev", cfg.Logger.Env)

	cfg.Logger.Env = "prod"
	cfg.App.Env = "staging"
	cfg.InheritLoggerSettings()
	assert.Equal(t, "prod", cfg.Logger.Env, "explicit logger env wins")
}
