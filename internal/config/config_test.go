package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "APP_NAME", "PORT", "LOG_LEVEL", "DATABASE_URL",
		"DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME", "DB_MAX_CONN_IDLE_TIME",
		"DB_HEALTH_CHECK_PERIOD", "DB_CONNECT_TIMEOUT", "DB_STARTUP_RETRIES", "DB_RETRY_DELAY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, defaultDevDatabaseURL, cfg.Database.URL)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(0), cfg.Database.MinConns)
	assert.Equal(t, 3, cfg.Database.StartupRetries)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/films")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_CONNECT_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "postgres://u:p@db:5432/films", cfg.Database.URL)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.ConnectTimeout)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("DB_RETRY_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "production requires DATABASE_URL",
			env:  map[string]string{"APP_ENV": "production"},
			want: "DATABASE_URL must be set in production",
		},
		{
			name: "port must be numeric",
			env:  map[string]string{"PORT": "http"},
			want: `invalid PORT "http"`,
		},
		{
			name: "min conns above max conns",
			env:  map[string]string{"DB_MAX_CONNS": "2", "DB_MIN_CONNS": "3"},
			want: "DB_MIN_CONNS must be between 0 and DB_MAX_CONNS",
		},
		{
			name: "at least one startup attempt",
			env:  map[string]string{"DB_STARTUP_RETRIES": "0"},
			want: "DB_STARTUP_RETRIES must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadProductionWithURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://prod/movies")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
