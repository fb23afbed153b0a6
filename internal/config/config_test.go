package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/JojerDojer/web-420/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.AppPort)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, config.LockLocal, cfg.LockBackend)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]any{
		"STORE_DRIVER": "SQLite",
		"LOG_LEVEL":    "debug",
		"LOCK_BACKEND": "redis",
		"LOCK_TTL":     "2s",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.LockTTL)
}

func TestFromViper_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"driver":    {"STORE_DRIVER": "cassandra"},
		"lock":      {"LOCK_BACKEND": "zookeeper"},
		"cost":      {"BCRYPT_COST": 2},
		"log level": {"LOG_LEVEL": "loud"},
		"ttl":       {"LOCK_BACKEND": "redis", "LOCK_TTL": "0s"},
	}
	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromViper(newViper(overrides))
			assert.Error(t, err)
		})
	}
}
