package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Port   string
	Driver string

	// Postgres connection parameters, assembled into a URL unless
	// DATABASE_URL is set explicitly.
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	RawDatabaseURL   string

	DatabasePath   string
	MigrationsPath string

	LogLevel string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "database.db")
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Port:             v.GetString("PORT"),
		Driver:           v.GetString("DATABASE_DRIVER"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		RawDatabaseURL:   v.GetString("DATABASE_URL"),
		DatabasePath:     v.GetString("DATABASE_PATH"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	// Each driver keeps its migrations in its own dialect.
	if cfg.MigrationsPath == "" {
		if cfg.Driver == DriverPostgres {
			cfg.MigrationsPath = "infra/migrations"
		} else {
			cfg.MigrationsPath = "db/migrations"
		}
	}

	return cfg
}

// DatabaseURL returns DATABASE_URL when set, otherwise a URL assembled
// from the POSTGRES_* parameters. Empty when neither is configured.
func (c *Config) DatabaseURL() string {
	if c.RawDatabaseURL != "" {
		return c.RawDatabaseURL
	}

	if c.PostgresHost == "" || c.PostgresDB == "" || c.PostgresUser == "" {
		return ""
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
	)
}
