package dbconfig

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME"} {
		t.Setenv(key, "")
	}

	cfg := NewConfigFromEnv("tipster-api")
	assert.Equal(t, Config{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "tipster",
		SSLMode:         "disable",
		AppName:         "tipster-api",
		MaxConns:        10,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
	}, cfg)
}

func TestNewConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "2")
	t.Setenv("DB_MAX_CONN_LIFETIME", "15m")

	cfg := NewConfigFromEnv("tipster-relay")
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, int32(25), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, 15*time.Minute, cfg.MaxConnLifetime)
}

func TestNewConfigFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "postgres")
	t.Setenv("DB_MAX_CONNS", "-3")
	t.Setenv("DB_MAX_CONN_LIFETIME", "forever")

	cfg := NewConfigFromEnv("")
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
}

func TestConfig_DSNEscapesCredentials(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5432,
		User:     "tipster",
		Password: "p@ss:w/rd",
		Database: "tipster",
		SSLMode:  "verify-full",
		AppName:  "tipster-gateway",
	}

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", password)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/tipster", u.Path)
	assert.Equal(t, "verify-full", u.Query().Get("sslmode"))
	assert.Equal(t, "tipster-gateway", u.Query().Get("application_name"))
}

func TestConfig_PoolConfig(t *testing.T) {
	cfg := Config{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "tipster",
		SSLMode:         "disable",
		MaxConns:        8,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
	}

	poolConfig, err := cfg.PoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(1), poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, "tipster", poolConfig.ConnConfig.Database)

	cfg.MinConns = 9
	_, err = cfg.PoolConfig()
	assert.Error(t, err)
}
