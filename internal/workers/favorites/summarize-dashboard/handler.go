// internal/workers/favorites/summarize-dashboard/handler.go
package summarizedashboard

import (
	"context"
	"database/sql"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/models"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "summarize-dashboard"
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

	summary, cached, err := h.counts(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// completion is scored from the current profile on every call
	c, err := queries.ProfileCompletion(ctx, h.db, models.RoleTenant, input.UserID)
	switch {
	case err == nil:
		summary.ProfileCompletion = &c.Percentage
	case apperrors.IsNotFound(err):
		// no tenant profile yet
	default:
		return nil, err
	}

	return &Output{Summary: summary, Cached: cached}, nil
}

// counts reads the dashboard counters through Redis. Only the counters are
// cached; writers that change them evict the key.
func (h *Handler) counts(ctx context.Context, userID string) (*models.DashboardSummary, bool, error) {
	key := cache.DashboardKey(userID)
	var cached models.DashboardSummary
	found, err := database.GetJSON(ctx, h.redis, key, &cached)
	if err != nil {
		h.logger.Warn("dashboard cache read failed, using postgres", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
		found = false
	}
	metrics.RecordCacheLookup("dashboard", found)
	if found {
		cached.ProfileCompletion = nil
		return &cached, true, nil
	}

	summary, err := queries.DashboardCounts(ctx, h.db, userID)
	if err != nil {
		return nil, false, err
	}
	if err := database.SetJSON(ctx, h.redis, key, summary, h.config.CacheTTL); err != nil {
		h.logger.Warn("failed to cache dashboard", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
	}
	return summary, false, nil
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
