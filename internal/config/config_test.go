package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.WorkerPoolSize)
	assert.Equal(t, 4096, cfg.MorphCacheSize)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.LexiconSQLitePath)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WORKER_POOL_SIZE", "16")
	t.Setenv("MORPH_CACHE_SIZE", "1024")
	t.Setenv("RATE_LIMIT_PER_SECOND", "50.5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.WorkerPoolSize)
	assert.Equal(t, 1024, cfg.MorphCacheSize)
	assert.Equal(t, 50.5, cfg.RateLimitPerSecond)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_POOL_SIZE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.WorkerPoolSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"zero pool", func(c *Config) { c.WorkerPoolSize = 0 }, true},
		{"negative rate", func(c *Config) { c.RateLimitPerSecond = -1 }, true},
		{"rate without burst", func(c *Config) { c.RateLimitPerSecond = 10; c.RateBurst = 0 }, true},
		{"zero cache", func(c *Config) { c.MorphCacheSize = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "TRACE" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				WorkerPoolSize: 8,
				RateBurst:      16,
				MorphCacheSize: 4096,
				LogLevel:       "INFO",
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
