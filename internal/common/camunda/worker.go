// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// WorkerOptions are the per task settings used to open a job worker.
type WorkerOptions struct {
	TaskType      string
	MaxJobsActive int
	Timeout       time.Duration
}

// Instrument wraps a job handler with the active gauge, the duration histogram
// and a job span.
func Instrument(taskType string, obs *observability.Observability, handler worker.JobHandler) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()

		if obs == nil {
			handler(client, job)
			metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(time.Since(start).Seconds())
			return
		}

		ctx, span := obs.StartJobSpan(context.Background(), taskType, job.GetKey(), job.GetProcessInstanceKey())
		defer span.End()

		handler(client, job)

		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		obs.RecordJobDuration(ctx, taskType, elapsed)
		obs.RecordJobProcessed(ctx, taskType, "handled")
	}
}

// StartWorker opens an instrumented job worker for one task type.
func StartWorker(client zbc.Client, opts WorkerOptions, handler worker.JobHandler, obs *observability.Observability, log logger.Logger) worker.JobWorker {
	jobWorker := client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(Instrument(opts.TaskType, obs, handler)).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      opts.TaskType,
		"maxJobsActive": opts.MaxJobsActive,
		"timeout_ms":    opts.Timeout.Milliseconds(),
	})

	return jobWorker
}
