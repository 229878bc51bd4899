package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"streetcast/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	NATS      configs.NATS      `envPrefix:"NATS_"`
	Device    configs.Device    `envPrefix:"DEVICE_"`
	Analytics configs.Analytics `envPrefix:"ANALYTICS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HTTP.RateLimit < 0 {
		return errors.New("HTTP_RATE_LIMIT must not be negative")
	}
	if c.Device.OnlineWindow <= 0 || c.Device.WarningWindow < c.Device.OnlineWindow {
		return errors.New("DEVICE_WARNING_WINDOW must be at least DEVICE_ONLINE_WINDOW and both positive")
	}
	if c.Analytics.RecentLimit <= 0 {
		return errors.New("ANALYTICS_RECENT_LIMIT must be positive")
	}
	return nil
}
