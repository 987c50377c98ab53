package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("GEN_PROVIDER", "")
	t.Setenv("GEN_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "gemini", cfg.Generation.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Generation.Model)
	assert.Equal(t, time.Duration(0), cfg.Generation.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Drafts.TTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("GEN_PROVIDER", "anthropic")
	t.Setenv("GEN_MODEL", "")
	t.Setenv("GEN_TIMEOUT", "45s")
	t.Setenv("GEN_RATE_LIMIT", "2.5")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SNAPSHOT_S3_BUCKET", "backups")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
	assert.Equal(t, "anthropic", cfg.Generation.Provider)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Generation.Model)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	assert.InDelta(t, 2.5, cfg.Generation.RateLimit, 0.0001)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "backups", cfg.Snapshot.S3Bucket)
}

func TestValidate(t *testing.T) {
	t.Run("rejects unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "STORAGE_DRIVER")
	})

	t.Run("postgres requires a dsn", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DB_DSN", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DSN")
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("GEN_PROVIDER", "ollama")
		_, err := Load()
		assert.ErrorContains(t, err, "GEN_PROVIDER")
	})

	t.Run("snapshot s3 target needs a bucket", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("GEN_PROVIDER", "gemini")
		t.Setenv("SNAPSHOT_DRIVER", "s3")
		t.Setenv("SNAPSHOT_S3_BUCKET", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.ErrorContains(t, cfg.ValidateSnapshot(), "SNAPSHOT_S3_BUCKET")
	})
}

func TestInvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("GEN_PROVIDER", "gemini")
	t.Setenv("DRAFT_MAX", "lots")
	t.Setenv("DRAFT_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Drafts.MaxDrafts)
	assert.Equal(t, 2*time.Hour, cfg.Drafts.TTL)
}
