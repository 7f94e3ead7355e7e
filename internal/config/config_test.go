package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDSN(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn required")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASSISTANT_POSTGRES_DSN", "postgres://localhost/assistant")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, "web", cfg.HTTP.StaticDir)
	assert.Equal(t, 0.6, cfg.NLU.Threshold)
	assert.Equal(t, 50, cfg.Redis.HistoryLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_POSTGRES_DSN", "postgres://localhost/assistant")
	t.Setenv("ASSISTANT_HTTP_PORT", "9090")
	t.Setenv("ASSISTANT_NLU_URL", "http://nlu:5005")
	t.Setenv("ASSISTANT_NLU_THRESHOLD", "0.8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, "http://nlu:5005", cfg.NLU.URL)
	assert.Equal(t, 0.8, cfg.NLU.Threshold)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("ASSISTANT_POSTGRES_DSN", "postgres://localhost/assistant")
	t.Setenv("ASSISTANT_NLU_THRESHOLD", "1.5")

	_, err := Load()
	require.Error(t, err)
}
