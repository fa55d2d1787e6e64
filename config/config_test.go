package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_PRETTY", "INDEXED_UNIT_VALUE", "REDIS_ADDR",
		"RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "CORS_ALLOWED_ORIGINS",
		"OPENAI_API_KEY", "OPENAI_API_URL", "OPENAI_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, DefaultIndexedUnitValue, cfg.IndexedUnitValue)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("INDEXED_UNIT_VALUE", "39000.5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.cl, https://b.cl ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 39000.5, cfg.IndexedUnitValue)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://a.cl", "https://b.cl"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidIndexedUnitValue(t *testing.T) {
	for _, value := range []string{"-1", "0", "NaN", "Inf", "-Inf", "+Inf"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("INDEXED_UNIT_VALUE", value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080, IndexedUnitValue: 1, RateLimitCapacity: 1, RateLimitWindow: time.Second}
	assert.NoError(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}
