package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Lock backends for per-parent append serialization.
const (
	LockNone  = "none"
	LockLocal = "local"
	LockRedis = "redis"
)

// Config holds all application configuration.
type Config struct {
	AppPort       string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseDSN   string
	StoreTimeout  time.Duration
	BcryptCost    int
	LockBackend   string
	RedisURL      string
	LockTTL       time.Duration
	RabbitMQURL   string
	LogLevel      slog.Level
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "web420DB")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=web420 port=5432 sslmode=disable")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("LOCK_BACKEND", LockLocal)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("LOCK_TTL", "5s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		// Missing files are fine; real environment variables still win.
		_ = godotenv.Load(envFiles...)
	}
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:       v.GetString("APP_PORT"),
		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		StoreTimeout:  v.GetDuration("STORE_TIMEOUT"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		LockBackend:   strings.ToLower(v.GetString("LOCK_BACKEND")),
		RedisURL:      v.GetString("REDIS_URL"),
		LockTTL:       v.GetDuration("LOCK_TTL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER %q is not one of mongo, postgres, sqlite, memory", c.StoreDriver)
	}
	switch c.LockBackend {
	case LockNone, LockLocal, LockRedis:
	default:
		return fmt.Errorf("LOCK_BACKEND %q is not one of none, local, redis", c.LockBackend)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST %d outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.LockBackend == LockRedis && c.LockTTL <= 0 {
		return fmt.Errorf("LOCK_TTL must be positive with the redis lock backend")
	}
	return nil
}
