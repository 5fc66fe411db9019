package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"sniptaste-popups/internal/config/configs"
)

// Config aggregates all configuration sections. Fields are populated from
// environment variables; nested sections read variables with their
// envPrefix, e.g. HTTP_PORT or STORAGE_DRIVER.
type Config struct {
	// Env names the deployment environment (prod, dev). It is only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables and rejects an
// unknown storage driver.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Storage.NormalizedDriver() {
	case configs.DriverMemory, configs.DriverRedis, configs.DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.KeyPrefix == "" {
		return fmt.Errorf("storage key prefix must not be empty")
	}
	return nil
}
