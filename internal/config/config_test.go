package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DB_DSN": "postgres://localhost/daresni",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5*time.Minute, cfg.TutorCacheTTL)
	assert.Equal(t, 8, cfg.RankWorkers)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DB_DSN":              "postgres://localhost/daresni",
		"ENV":                 "production",
		"TELEGRAM_TOKEN":      "token",
		"REDIS_ADDR":          "localhost:6379",
		"REDIS_DB":            "2",
		"TUTOR_CACHE_TTL":     "90s",
		"RANK_WORKERS":        "3",
		"CACHE_WARM_INTERVAL": "10m",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.TutorCacheTTL)
	assert.Equal(t, 3, cfg.RankWorkers)
	assert.Equal(t, 10*time.Minute, cfg.CacheWarmInterval)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{}},
		{"bad redis db", map[string]string{"DB_DSN": "x", "REDIS_DB": "one"}},
		{"bad ttl", map[string]string{"DB_DSN": "x", "TUTOR_CACHE_TTL": "-1m"}},
		{"bad warm interval", map[string]string{"DB_DSN": "x", "CACHE_WARM_INTERVAL": "soon"}},
		{"bad workers", map[string]string{"DB_DSN": "x", "RANK_WORKERS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			assert.Error(t, err)
		})
	}
}
