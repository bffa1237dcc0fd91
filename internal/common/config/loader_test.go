package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: rental-workers
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: rentals
    user: ${TEST_DB_USER}
  elasticsearch:
    addresses:
      - http://localhost:9200
  redis:
    address: localhost:6379
workers:
  toggle-favorite:
    enabled: true
    timeout: 5000
  notify-search-matches:
    enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_DefaultsAndExpansion(t *testing.T) {
	t.Setenv("TEST_DB_USER", "rentals_app")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, "rentals_app", cfg.Database.Postgres.User)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, "http://localhost:9200", cfg.Database.Elasticsearch.URL)
	assert.Equal(t, "properties", cfg.Search.ListingsIndex)
	assert.Equal(t, 200, cfg.Search.CandidateLimit)
	assert.Equal(t, "https://wa.me", cfg.WhatsApp.BaseURL)
	assert.Equal(t, "rental-workers", cfg.Observability.ServiceName)

	fav := GetWorkerConfig(cfg, "toggle-favorite")
	assert.Equal(t, 5000, fav.Timeout)
	assert.Equal(t, 5, fav.MaxJobsActive)
	assert.Equal(t, 3, fav.MaxRetries)
}

func TestLoadFromFile_MissingBroker(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, `
database:
  postgres:
    host: localhost
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camunda.broker_address")
}

func TestLoadFromFile_TracingNeedsEndpoint(t *testing.T) {
	t.Setenv("TEST_DB_USER", "rentals_app")
	_, err := LoadFromFile(writeConfig(t, baseYAML+`
observability:
  tracing_enabled: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jaeger_endpoint")
}

func TestIsWorkerEnabled(t *testing.T) {
	t.Setenv("TEST_DB_USER", "rentals_app")
	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.True(t, IsWorkerEnabled(cfg, "toggle-favorite"))
	assert.False(t, IsWorkerEnabled(cfg, "notify-search-matches"))
	assert.True(t, IsWorkerEnabled(cfg, "unknown-worker"))
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Minute, GetTTL(60))
}
