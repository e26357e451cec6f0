package dbconfig

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds Postgres connection settings shared by the API server, the
// outbox relay, the gateway and the seed tools.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// AppName is reported as application_name so each binary can be told
	// apart in pg_stat_activity.
	AppName string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

// NewConfigFromEnv reads DB_* environment variables (with defaults).
func NewConfigFromEnv(appName string) Config {
	return Config{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvAsInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "tipster"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		AppName:         appName,
		MaxConns:        int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		MinConns:        int32(getEnvAsInt("DB_MIN_CONNS", 0)),
		MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),
	}
}

// DSN returns the Postgres connection URL. Credentials are escaped.
func (c Config) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	if c.AppName != "" {
		query.Set("application_name", c.AppName)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// PoolConfig builds a pgxpool config with the pool limits applied.
func (c Config) PoolConfig() (*pgxpool.Config, error) {
	if c.MinConns > c.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.MinConns, c.MaxConns)
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	return poolConfig, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
