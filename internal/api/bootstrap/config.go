package bootstrap

import (
	"errors"
	"time"

	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/env"
)

// DefaultJwtSecret only works with AUTH_ENABLED=false; Validate rejects it
// otherwise.
const DefaultJwtSecret = "dev-secret"

var ErrInsecureJwtSecret = errors.New("JWT_SECRET must be set to a non-default value when auth is enabled")

type Config struct {
	HttpPort   string
	DbSettings database.PostgresSettings

	JwtSecret   string
	AuthEnabled bool

	CorsAllowedOrigins []string
	MigrateOnStart     bool
	ShutdownTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		HttpPort: ":8000",
		DbSettings: database.PostgresSettings{
			User:       "postgres",
			Password:   "postgres",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "carbon_wallet",
			SSlEnabled: false,
		},
		JwtSecret:          DefaultJwtSecret,
		AuthEnabled:        true,
		CorsAllowedOrigins: []string{"*"},
		MigrateOnStart:     true,
		ShutdownTimeout:    5 * time.Second,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies every variable that is set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)

	env.TrySetFromEnv(env.EnvDatabaseURL, &cfg.DbSettings.URL)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled)
	env.TrySetBoolFromEnv(env.EnvMigrateOnStart, &cfg.MigrateOnStart)

	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetBoolFromEnv(env.EnvAuthEnabled, &cfg.AuthEnabled)

	env.TrySetListFromEnv(env.EnvCorsAllowedOrigins, &cfg.CorsAllowedOrigins)
	env.TrySetDurationFromEnv(env.EnvShutdownTimeout, &cfg.ShutdownTimeout)

	return cfg
}

func (c Config) Validate() error {
	if c.AuthEnabled && (c.JwtSecret == "" || c.JwtSecret == DefaultJwtSecret) {
		return ErrInsecureJwtSecret
	}

	return nil
}
