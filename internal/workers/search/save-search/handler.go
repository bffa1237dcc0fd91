// internal/workers/search/save-search/handler.go
package savesearch

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/matching"
	"rental-workers/internal/models"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "save-search"
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
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if h.config.MaxNameLength > 0 && len([]rune(name)) > h.config.MaxNameLength {
		return nil, apperrors.NewValidationError("name",
			fmt.Sprintf("name must be at most %d characters", h.config.MaxNameLength))
	}

	criteria := matching.NormalizeCriteria(input.Criteria)
	if err := matching.ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	created := input.SavedSearchID == ""
	search := models.SavedSearch{
		ID:                   input.SavedSearchID,
		UserID:               input.UserID,
		Name:                 name,
		Criteria:             criteria,
		IsActive:             true,
		NotificationsEnabled: input.NotificationsEnabled == nil || *input.NotificationsEnabled,
	}
	if created {
		search.ID = uuid.New().String()
	}

	if err := queries.UpsertSavedSearch(ctx, h.db, &search); err != nil {
		return nil, err
	}

	if err := cache.InvalidateSavedSearch(ctx, h.redis, search.ID, search.UserID); err != nil {
		h.logger.Warn("failed to evict saved search cache", map[string]interface{}{
			"savedSearchId": search.ID,
			"error":         err,
		})
	}

	h.logger.Info("saved search stored", map[string]interface{}{
		"savedSearchId": search.ID,
		"userId":        search.UserID,
		"created":       created,
	})

	return &Output{SavedSearch: search, Created: created}, nil
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
