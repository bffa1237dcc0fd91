// internal/workers/favorites/toggle-favorite/handler.go
package togglefavorite

import (
	"context"
	"database/sql"
	"strings"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "toggle-favorite"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	newID        func() string
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
		newID:        uuid.NewString,
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
	userID := strings.TrimSpace(input.UserID)
	propertyID := strings.TrimSpace(input.PropertyID)
	if userID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}
	if propertyID == "" {
		return nil, apperrors.NewValidationError("propertyId", "propertyId is required")
	}

	var (
		favorited  bool
		favoriteID string
	)
	err := database.WithTx(ctx, h.db, func(tx database.Querier) error {
		var err error
		favorited, favoriteID, err = queries.ToggleFavorite(ctx, tx, h.newID(), userID, propertyID)
		return err
	})
	if err != nil {
		if _, ok := apperrors.AsStandard(err); ok {
			return nil, err
		}
		return nil, apperrors.NewQueryExecutionFailedError("toggle_favorite", err)
	}

	if err := cache.InvalidateDashboard(ctx, h.redis, userID); err != nil {
		h.logger.Warn("failed to evict dashboard cache", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
	}

	state := "removed"
	if favorited {
		state = "added"
	}
	metrics.FavoriteToggles.WithLabelValues(state).Inc()

	h.logger.Info("favorite toggled", map[string]interface{}{
		"userId":      userID,
		"propertyId":  propertyID,
		"isFavorited": favorited,
	})

	return &Output{
		UserID:      userID,
		PropertyID:  propertyID,
		IsFavorited: favorited,
		FavoriteID:  favoriteID,
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
