package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvDuration(t *testing.T) {
	const key = "QDRANT_TIMEOUT"
	fallback := 30 * time.Second

	t.Run("unset uses fallback", func(t *testing.T) {
		assert.Equal(t, fallback, envDuration(key, fallback))
	})

	t.Run("go duration string", func(t *testing.T) {
		t.Setenv(key, "45s")
		assert.Equal(t, 45*time.Second, envDuration(key, fallback))
	})

	t.Run("bare seconds", func(t *testing.T) {
		t.Setenv(key, "15")
		assert.Equal(t, 15*time.Second, envDuration(key, fallback))
	})

	t.Run("garbage uses fallback", func(t *testing.T) {
		t.Setenv(key, "soon")
		assert.Equal(t, fallback, envDuration(key, fallback))
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.Qdrant.Endpoint)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, "http://localhost:6333", cfg.Qdrant.RestURL)
	assert.Equal(t, 30*time.Second, cfg.Qdrant.Timeout)
	assert.Equal(t, "knowledge_base", cfg.DefaultCollection)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, ":9090", cfg.MetricsAddress)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QDRANT_ENDPOINT", "qdrant.internal")
	t.Setenv("QDRANT_PORT", "16334")
	t.Setenv("DEFAULT_COLLECTION", "docs")
	t.Setenv("QDRANT_PORT_BAD", "nope")

	cfg := Load()
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Endpoint)
	assert.Equal(t, 16334, cfg.Qdrant.Port)
	assert.Equal(t, "docs", cfg.DefaultCollection)
}

func TestEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("QDRANT_PORT", "not-a-port")
	assert.Equal(t, 6334, envInt("QDRANT_PORT", 6334))
}
