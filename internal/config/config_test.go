package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable FromEnv reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_CLIENT_ID", "GOOGLE_REDIRECT_URL", "APP_BASE_URL",
		"BACKEND_EXCHANGE_URL", "BACKEND_TIMEOUT", "LOGIN_STATE_TTL",
		"SESSION_SECRET", "SERVER_ADDR", "CONTENT_FILE", "LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-123.apps.googleusercontent.com")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.AppBaseURL)
	assert.Equal(t, "http://localhost:8080/auth/google/callback", cfg.GoogleRedirectURL)
	assert.Equal(t, "http://localhost:8000/api/auth/google", cfg.BackendExchangeURL)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 10*time.Minute, cfg.LoginStateTTL)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.UsesDefaultSessionSecret())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")
	t.Setenv("APP_BASE_URL", "https://voxnote.example.com/")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://voxnote.example.com", cfg.AppBaseURL)
	assert.Equal(t, "https://voxnote.example.com/auth/google/callback", cfg.GoogleRedirectURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.UsesDefaultSessionSecret())
}

func TestFromEnv_MissingClientID(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.Error(t, err)
	require.NotNil(t, cfg, "config must still be usable so the page can render")

	assert.True(t, errors.Is(err, ErrMissingField))

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "GoogleClientID", missing.Field)
	assert.Equal(t, "GOOGLE_CLIENT_ID", missing.EnvVar)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
}

func TestValidate_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")
	t.Setenv("BACKEND_EXCHANGE_URL", "not a url")
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := FromEnv()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "BACKEND_EXCHANGE_URL")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("SOME_TIMEOUT", time.Minute))
}
