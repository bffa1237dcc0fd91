// internal/workers/search/manage-saved-search/handler.go
package managesavedsearch

import (
	"context"
	"database/sql"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "manage-saved-search"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
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
	if input.SavedSearchID == "" {
		return nil, apperrors.NewValidationError("savedSearchId", "savedSearchId is required")
	}
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}

	out := &Output{SavedSearchID: input.SavedSearchID, Action: input.Action}

	var err error
	switch input.Action {
	case ActionGet:
		out.SavedSearch, err = cache.SavedSearch(ctx, h.db, h.redis, h.config.CacheTTL, input.SavedSearchID, input.UserID)
		if err != nil {
			return nil, err
		}
		return out, nil
	case ActionActivate, ActionDeactivate:
		err = queries.SetSavedSearchActive(ctx, h.db, input.SavedSearchID, input.UserID, input.Action == ActionActivate)
	case ActionEnableNotifications, ActionDisableNotifications:
		err = queries.SetSavedSearchNotifications(ctx, h.db, input.SavedSearchID, input.UserID, input.Action == ActionEnableNotifications)
	case ActionDelete:
		err = queries.DeleteSavedSearch(ctx, h.db, input.SavedSearchID, input.UserID)
		out.Deleted = err == nil
	default:
		return nil, apperrors.NewInvalidOperationError(string(input.Action))
	}
	if err != nil {
		return nil, err
	}

	if err := cache.InvalidateSavedSearch(ctx, h.redis, input.SavedSearchID, input.UserID); err != nil {
		// a stale entry would keep serving the old state until its TTL expires
		return nil, err
	}

	if !out.Deleted {
		out.SavedSearch, err = queries.GetSavedSearch(ctx, h.db, input.SavedSearchID, input.UserID)
		if err != nil {
			return nil, err
		}
	}

	h.logger.Info("saved search updated", map[string]interface{}{
		"savedSearchId": input.SavedSearchID,
		"action":        input.Action,
	})
	return out, nil
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
