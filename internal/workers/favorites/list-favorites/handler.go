// internal/workers/favorites/list-favorites/handler.go
package listfavorites

import (
	"context"
	"database/sql"

	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "list-favorites"
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

	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}
	if h.config.MaxLimit > 0 && limit > h.config.MaxLimit {
		limit = h.config.MaxLimit
	}

	favorites, err := queries.ListFavorites(ctx, h.db, input.UserID, limit)
	if err != nil {
		return nil, err
	}

	return &Output{
		UserID:    input.UserID,
		Favorites: favorites,
		Total:     len(favorites),
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
