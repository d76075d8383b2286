package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values fall through to the defaults, shielding the test from
	// whatever the surrounding environment carries.
	for _, key := range []string{
		"SERVER_PORT", "SERVER_PATH_PREFIX", "SERVER_AUTH_TOKEN",
		"STORAGE_DRIVER", "CLIENT_EXCHANGE", "CLIENT_PAIR", "DISPLAY_TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.PathPrefix)
	assert.Equal(t, "public-anon-key", cfg.Server.AuthToken)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "Bitkub", cfg.Client.Exchange)
	assert.Equal(t, "BTC/THB", cfg.Client.Pair)
	assert.Equal(t, "Asia/Bangkok", cfg.Display.Timezone)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "UTC", cfg.Display.Timezone)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"port out of range", func(c *config.Config) { c.Server.Port = 0 }},
		{"empty auth token", func(c *config.Config) { c.Server.AuthToken = "" }},
		{"unknown storage driver", func(c *config.Config) { c.Storage.Driver = "cassandra" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"unknown display timezone", func(c *config.Config) { c.Display.Timezone = "Not/AZone" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
