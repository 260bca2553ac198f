package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("TRUST_PROXY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.False(t, cfg.TrustProxy)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://swapi:secret@db:5432/swapi")
	t.Setenv("PORT", "8081")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "postgresql://swapi:secret@db:5432/swapi", cfg.DatabaseURL)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
	assert.True(t, cfg.TrustProxy)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("port not a number", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rate limit without budget", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "true")
		t.Setenv("RATE_LIMIT_RPS", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestNormalizeDatabaseURL(t *testing.T) {
	assert.Equal(t, "postgresql://u@h/db", NormalizeDatabaseURL("postgres://u@h/db"))
	assert.Equal(t, "postgresql://u@h/db", NormalizeDatabaseURL("postgresql://u@h/db"))
	assert.Equal(t, "", NormalizeDatabaseURL(""))
}
