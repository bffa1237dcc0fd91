package camunda

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// DecodeVariables validates the job variables against schema (when one is
// registered for the task) and decodes them into dst.
func DecodeVariables(job entities.Job, schema map[string]interface{}, dst interface{}) error {
	raw := job.GetVariables()
	if raw == "" {
		raw = "{}"
	}

	if len(schema) > 0 {
		if err := validation.ValidateJSON(schema, raw); err != nil {
			return err
		}
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return apperrors.NewParseError(err)
	}
	return nil
}

// CompleteJob completes the job with output as its variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.GetKey()).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return MapError(err, "complete job")
	}
	metrics.WorkerJobsCompleted.WithLabelValues(taskType).Inc()
	return nil
}

// FailJob reports err through the error handler and counts it.
func FailJob(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, handler *apperrors.ErrorHandler, err error) {
	stdErr := apperrors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(taskType, string(stdErr.Code)).Inc()
	handler.HandleJobError(ctx, client, job, err)
}
