package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_APIConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://test-backend:8001/api/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("API_READ_ATTEMPTS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://test-backend:8001/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.ReadAttempts)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8001/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.ReadAttempts)
	assert.Equal(t, 3*time.Second, cfg.UI.SOSLockout)
	assert.Equal(t, time.Second, cfg.UI.LanguageRedirectDelay)
	assert.Equal(t, "arovia_session", cfg.Session.CookieName)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.ServerAddr())
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.Equal(t, 2*time.Second, cfg.Redis.Timeout)
	assert.Empty(t, cfg.Redis.KeyPrefix)
}

func TestLoad_RejectsInvalidReadAttempts(t *testing.T) {
	t.Setenv("API_READ_ATTEMPTS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://arovia.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:5173", "https://arovia.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.UI.StreamHeartbeat)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
}
