// Package config loads settings from the environment (and a .env file, if present).
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"moviedb/internal/repositories"
	"moviedb/internal/services"
	"moviedb/internal/storage"
)

// Config holds all configuration for the catalog core.
type Config struct {
	Storage         storage.Options
	KeyNamespace    string
	PasswordHashing string
	LogLevel        string
	LogFormat       string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("STORE_DRIVER", storage.DriverMemory)
	v.SetDefault("BADGER_DIR", "./data/badger")
	v.SetDefault("SQLITE_DSN", "moviedb.db")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=moviedb port=5432 sslmode=disable")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KEY_NAMESPACE", repositories.DefaultNamespace)
	v.SetDefault("PASSWORD_HASHING", services.HashingPlaintext)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads configuration from environment variables, after loading .env if it exists.
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Storage: storage.Options{
			Driver:      v.GetString("STORE_DRIVER"),
			BadgerDir:   v.GetString("BADGER_DIR"),
			SQLiteDSN:   v.GetString("SQLITE_DSN"),
			PostgresDSN: v.GetString("DATABASE_DSN"),
			Redis: storage.RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
		},
		KeyNamespace:    v.GetString("KEY_NAMESPACE"),
		PasswordHashing: v.GetString("PASSWORD_HASHING"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers, hashing modes and log formats.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverBadger, storage.DriverSQLite, storage.DriverPostgres, storage.DriverRedis:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q", c.Storage.Driver)
	}
	if _, err := services.NewPasswordHasher(c.PasswordHashing); err != nil {
		return fmt.Errorf("invalid PASSWORD_HASHING: %w", err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
