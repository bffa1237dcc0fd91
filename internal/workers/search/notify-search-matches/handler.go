// internal/workers/search/notify-search-matches/handler.go
package notifysearchmatches

import (
	"context"
	"database/sql"
	"time"

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
	TaskType = "notify-search-matches"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	notifier     *Notifier
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	taskLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
		notifier:     NewNotifier(config, email, sms, taskLog),
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       taskLog,
		now:          time.Now,
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
	if input.SavedSearchID == "" || input.UserID == "" {
		return nil, apperrors.NewValidationError("savedSearchId", "savedSearchId and userId are required")
	}
	if input.MatchCount < 0 {
		return nil, apperrors.NewValidationError("matchCount", "matchCount must not be negative")
	}

	search, err := queries.GetSavedSearch(ctx, h.db, input.SavedSearchID, input.UserID)
	if err != nil {
		return nil, err
	}

	total, err := queries.RecordSearchRun(ctx, h.db, search.ID, input.MatchCount, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := cache.InvalidateSavedSearch(ctx, h.redis, search.ID, search.UserID); err != nil {
		h.logger.Warn("failed to evict saved search cache", map[string]interface{}{
			"savedSearchId": search.ID,
			"error":         err,
		})
	}

	out := &Output{
		SavedSearchID:   search.ID,
		NewMatchesCount: total,
		Deliveries:      []Delivery{},
	}
	if input.MatchCount == 0 || !search.IsActive || !search.NotificationsEnabled {
		return out, nil
	}

	out.Deliveries = h.notifier.Notify(ctx, search, input)
	for _, d := range out.Deliveries {
		if d.Status == StatusSent {
			out.Notified = true
		}
	}

	h.logger.Info("search matches recorded", map[string]interface{}{
		"savedSearchId":   search.ID,
		"matchCount":      input.MatchCount,
		"newMatchesCount": total,
		"notified":        out.Notified,
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
