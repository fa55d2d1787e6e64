// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultIndexedUnitValue = 38899.12

// Config holds application configuration
type Config struct {
	Port               int
	LogLevel           string
	LogPretty          bool
	IndexedUnitValue   float64 // valor UF usado cuando no hay override en Redis
	RedisAddr          string  // vacío = valor fijo
	RateLimitCapacity  int
	RateLimitWindow    time.Duration
	CORSAllowedOrigins []string
	OpenAIAPIKey       string
	OpenAIAPIURL       string
	OpenAIModel        string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8080),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getEnvAsBool("LOG_PRETTY", false),
		IndexedUnitValue:   getEnvAsFloat("INDEXED_UNIT_VALUE", DefaultIndexedUnitValue),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RateLimitCapacity:  getEnvAsInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:    getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:       getEnv("OPENAI_API_URL", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if math.IsNaN(c.IndexedUnitValue) || math.IsInf(c.IndexedUnitValue, 0) || c.IndexedUnitValue <= 0 {
		return fmt.Errorf("INDEXED_UNIT_VALUE must be a positive finite number, got %v", c.IndexedUnitValue)
	}
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimitCapacity)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
