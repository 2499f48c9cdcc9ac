package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. APP_APP_ADDR or APP_LOGGER_LEVEL.
const EnvPrefix = "APP"

// Load reads the YAML file at path, applies APP_* environment overrides and
// validates the result. An empty path means defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it even when the
// file leaves it out.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "user-directory")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.read_timeout", "5s")
	v.SetDefault("app.write_timeout", "10s")
	v.SetDefault("app.shutdown_timeout", "10s")

	// Empty logger values are filled by logger.New depending on env.
	for _, k := range []string{
		"level", "format", "output_target", "time_field", "time_format",
		"service_name", "service_version", "env", "stacktrace_min_level",
	} {
		v.SetDefault("logger."+k, "")
	}
	v.SetDefault("logger.with_caller", false)
	v.SetDefault("logger.stacktrace", false)

	v.SetDefault("pagination.default_size", 10)
	v.SetDefault("pagination.max_size", 100)

	v.SetDefault("seed.path", "")
}
