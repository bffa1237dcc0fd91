package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-workers/internal/common/config"
	"rental-workers/internal/common/logger"
	"rental-workers/pkg/registry"
)

func testDeps(t *testing.T) *dependencies {
	t.Helper()
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)

	return &dependencies{
		cfg: &config.Config{
			Workers: map[string]config.WorkerConfig{
				"toggle-favorite":      {Enabled: true, Timeout: 2000},
				"execute-saved-search": {Enabled: true, Timeout: 60000},
			},
		},
		registry: reg,
		log:      logger.NewTestLogger(t),
	}
}

func TestBuildWorkers_CoversRegistry(t *testing.T) {
	d := testDeps(t)

	workers := buildWorkers(d)
	require.Len(t, workers, len(d.registry.Activities))
	for _, w := range workers {
		_, ok := d.registry.Find(w.taskType)
		assert.True(t, ok, "%s is not registered", w.taskType)
		assert.NotNil(t, w.handle)
	}
}

func TestTimeouts(t *testing.T) {
	d := testDeps(t)

	// registry wins over worker config for the handler deadline
	assert.Equal(t, 5*time.Second, d.handlerTimeout("toggle-favorite"))
	// the job lock is never shorter than the handler deadline
	assert.Equal(t, 10*time.Second, d.jobTimeout("toggle-favorite"))
	assert.Equal(t, time.Minute, d.jobTimeout("execute-saved-search"))
}

func TestHealthMux(t *testing.T) {
	healthy := newHealthMux([]readinessCheck{{name: "redis", check: func(context.Context) error { return nil }}})
	rec := httptest.NewRecorder()
	healthy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	broken := newHealthMux([]readinessCheck{{name: "postgres", check: func(context.Context) error { return errors.New("down") }}})
	rec = httptest.NewRecorder()
	broken.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"down"`)

	rec = httptest.NewRecorder()
	broken.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
