// cmd/worker-manager/health.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rental-workers/internal/common/camunda"
	"rental-workers/internal/common/database"
)

type readinessCheck struct {
	name  string
	check func(ctx context.Context) error
}

func readinessChecks(zeebe *camunda.Client, pg *database.PostgresClient, es *database.ElasticsearchClient, redis *database.RedisClient) []readinessCheck {
	return []readinessCheck{
		{name: "zeebe", check: zeebe.HealthCheck},
		{name: "postgres", check: pg.Ping},
		{name: "elasticsearch", check: es.Ping},
		{name: "redis", check: redis.Ping},
	}
}

func newHealthMux(checks []readinessCheck) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]interface{}{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		failed := map[string]string{}
		for _, c := range checks {
			if err := c.check(ctx); err != nil {
				failed[c.name] = err.Error()
			}
		}
		if len(failed) > 0 {
			writeStatus(w, http.StatusServiceUnavailable, map[string]interface{}{"status": "not ready", "failed": failed})
			return
		}
		writeStatus(w, http.StatusOK, map[string]interface{}{"status": "ready"})
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, code int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
