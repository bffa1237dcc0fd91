// internal/workers/profile/calculate-profile-completion/handler.go
package calculateprofilecompletion

import (
	"context"
	"database/sql"

	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/completion"
	"rental-workers/internal/models"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-profile-completion"
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}
	if input.Role != models.RoleTenant && input.Role != models.RoleLandlord {
		return nil, apperrors.NewValidationError("role", "role must be tenant or landlord")
	}

	var (
		result *models.ProfileCompletion
		err    error
	)
	if input.TenantProfile != nil || input.LandlordProfile != nil {
		result, err = completion.ForRole(input.Role, input.TenantProfile, input.LandlordProfile)
	} else {
		result, err = queries.ProfileCompletion(ctx, h.db, input.Role, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	metrics.ProfileCompletion.WithLabelValues(string(input.Role)).Observe(float64(result.Percentage))

	h.logger.Debug("profile completion calculated", map[string]interface{}{
		"userId":     input.UserID,
		"role":       input.Role,
		"percentage": result.Percentage,
	})

	return &Output{
		UserID:     input.UserID,
		Role:       input.Role,
		Completion: result,
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
