// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	PropertiesEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_properties_evaluated_total",
			Help: "Candidate properties evaluated against search criteria",
		},
	)

	PropertiesMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_properties_matched_total",
			Help: "Candidate properties that satisfied search criteria",
		},
	)

	FavoriteToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_toggles_total",
			Help: "Favorite toggles by resulting state",
		},
		[]string{"state"},
	)

	ProfileCompletion = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profile_completion_percentage",
			Help:    "Computed profile completion percentage",
			Buckets: []float64{0, 20, 40, 60, 80, 95, 100},
		},
		[]string{"role"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_match_notifications_total",
			Help: "Saved-search match notifications by channel and outcome",
		},
		[]string{"channel", "status"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Redis cache lookups by cache name and result",
		},
		[]string{"cache", "result"},
	)
)

// RecordCacheLookup counts a hit or a miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(cache, result).Inc()
}
