package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CascadeDeletes)
	assert.False(t, cfg.StrictForbidden)
	assert.Equal(t, "mock", cfg.Provider())
}

func TestParse_ProviderFromKey(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider())
	assert.Equal(t, "gpt-4o-mini", cfg.Model())

	t.Setenv("LLM_PROVIDER", "gemini")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider())
	assert.Equal(t, "gemini-2.0-flash", cfg.Model())

	t.Setenv("LLM_MODEL", "gemini-2.5-pro")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "postgres without url", env: map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": ""}},
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "claude"}},
		{name: "production without secret", env: map[string]string{"APP_ENV": "production", "SESSION_SECRET": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "development")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
