package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/leaderboard"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		CORSOrigins  []string      `yaml:"cors_origins"`
	} `yaml:"server"`

	Log struct {
		Level   string `yaml:"level"`
		Console bool   `yaml:"console"`
	} `yaml:"log"`

	Auth struct {
		TokenTTL  time.Duration `yaml:"token_ttl"`
		RateLimit struct {
			PerSecond float64 `yaml:"per_second"`
			Burst     int     `yaml:"burst"`
		} `yaml:"rate_limit"`
	} `yaml:"auth"`

	Quotas authz.Quotas `yaml:"quotas"`

	Redis struct {
		URL            string        `yaml:"url"`
		LeaderboardTTL time.Duration `yaml:"leaderboard_ttl"`
	} `yaml:"redis"`

	// JWTSecret is read from JWT_SECRET only
	JWTSecret string `yaml:"-"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 15 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Log.Level = "info"
	cfg.Log.Console = true
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Auth.RateLimit.PerSecond = 1
	cfg.Auth.RateLimit.Burst = 5
	cfg.Quotas = authz.DefaultQuotas()
	cfg.Redis.URL = "redis://localhost:6379/0"
	cfg.Redis.LeaderboardTTL = leaderboard.DefaultTTL
	return cfg
}

// loadConfig reads path over the defaults. A missing file keeps the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if port := getEnvAsInt("PORT", 0); port > 0 {
		cfg.Server.Port = port
	}
	cfg.Redis.URL = getEnv("REDIS_URL", cfg.Redis.URL)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
