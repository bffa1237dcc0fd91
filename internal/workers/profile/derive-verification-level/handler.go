// internal/workers/profile/derive-verification-level/handler.go
package deriveverificationlevel

import (
	"context"
	"database/sql"

	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/completion"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "derive-verification-level"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		db:           db,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := camunda.DecodeVariables(job, h.config.InputSchema, &input); err != nil {
		h.failJob(client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

// execute recomputes the level from the flags. A level supplied by the caller
// is never trusted; only a change against the stored level is persisted.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}

	stored, err := queries.GetVerificationStatus(ctx, h.db, input.UserID)
	if err != nil {
		return nil, err
	}

	flags := *stored
	if input.Status != nil {
		flags = *input.Status
	}
	derived := completion.WithDerivedLevel(flags)

	changed := derived.VerificationLevel != stored.VerificationLevel
	if changed {
		if err := queries.SaveVerificationLevel(ctx, h.db, input.UserID, derived.VerificationLevel); err != nil {
			return nil, err
		}
		h.logger.Info("verification level changed", map[string]interface{}{
			"userId": input.UserID,
			"from":   stored.VerificationLevel,
			"to":     derived.VerificationLevel,
		})
	}

	return &Output{
		UserID:       input.UserID,
		Verification: derived,
		Changed:      changed,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	if err := camunda.CompleteJob(context.Background(), client, job, TaskType, output); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	camunda.FailJob(context.Background(), client, job, TaskType, h.errorHandler, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
