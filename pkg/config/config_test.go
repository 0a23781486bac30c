package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
environment: test
finnhub:
  api_key: key
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Finnhub.NewsLimit)
	assert.Equal(t, 30, cfg.Finnhub.NewsDays)
	assert.Equal(t, "https://finnhub.io/api/v1", cfg.Finnhub.BaseURL)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, ".", cfg.Report.Dir)
	assert.Equal(t, "finnhub", cfg.Market.Provider)
}

func TestParseMarketProvider(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML + "market:\n  provider: yahoo\n"))
	require.NoError(t, err)
	assert.Equal(t, "yahoo", cfg.Market.Provider)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing environment", "finnhub:\n  api_key: key\n"},
		{"missing api key", "environment: test\n"},
		{"unknown cache backend", minimalYAML + "cache:\n  backend: memcached\n"},
		{"unknown market provider", minimalYAML + "market:\n  provider: openbb\n"},
		{"redis without addr", minimalYAML + "cache:\n  enabled: true\n  backend: redis\n"},
		{"events without brokers", minimalYAML + "events:\n  enabled: true\n"},
		{"bad rate limit", minimalYAML + "server:\n  rate_limit:\n    enabled: true\n    capacity: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: test\n"), 0o644))

	t.Setenv("FINNHUB_API_KEY", "from-env")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPORT_DIR", "/tmp/reports")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Finnhub.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/reports", cfg.Report.Dir)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Events.Brokers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
