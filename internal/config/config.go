// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// DatabaseURL is the Postgres DSN. Required.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// SecretKey is the shared ingestion secret compared on every write. Required.
	SecretKey string `mapstructure:"SECRET_KEY"`
	// Port is the HTTP listen port.
	Port string `mapstructure:"PORT"`
	// MigrationsPath is the directory holding golang-migrate SQL files.
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
	// KafkaBrokers is a comma-separated broker list. Empty disables the
	// reading stream mirror.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// KafkaTopic is the topic stored readings are mirrored to.
	KafkaTopic string `mapstructure:"KAFKA_TOPIC"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Missing .env is ignored (e.g. in CI); env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("PORT", "3000")
	v.SetDefault("MIGRATIONS_PATH", "internal/db/migrations")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "sensor-readings")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL must be set")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("config: SECRET_KEY must be set")
	}
	if cfg.Port == "" {
		return nil, errors.New("config: PORT must be set")
	}

	return &cfg, nil
}

// KafkaBrokersList returns broker addresses from the comma-separated config.
// An empty result means the stream mirror is disabled.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
