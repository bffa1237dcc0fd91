// internal/workers/search/execute-saved-search/handler.go
package executesavedsearch

import (
	"context"
	"database/sql"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/listings"
	"rental-workers/internal/matching"
	"rental-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "execute-saved-search"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	es           *elasticsearch.Client
	redis        *redis.Client
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, db *sql.DB, es *elasticsearch.Client, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		db:           db,
		es:           es,
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
	if input.SavedSearchID == "" || input.UserID == "" {
		return nil, apperrors.NewValidationError("savedSearchId", "savedSearchId and userId are required")
	}

	search, err := cache.SavedSearch(ctx, h.db, h.redis, h.config.CacheTTL, input.SavedSearchID, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &Output{
		SavedSearchID: search.ID,
		UserID:        search.UserID,
		Matches:       []models.Property{},
	}
	if !search.IsActive {
		out.Inactive = true
		return out, nil
	}

	candidates, err := h.candidates(ctx, input, search.Criteria)
	if err != nil {
		return nil, err
	}

	out.Matches = matching.Filter(search.Criteria, candidates.Properties)
	out.MatchCount = len(out.Matches)
	out.Evaluated = len(candidates.Properties)
	out.Source = candidates.Source

	metrics.PropertiesEvaluated.Add(float64(out.Evaluated))
	metrics.PropertiesMatched.Add(float64(out.MatchCount))

	h.logger.Info("saved search executed", map[string]interface{}{
		"savedSearchId": search.ID,
		"source":        candidates.Source,
		"evaluated":     out.Evaluated,
		"matched":       out.MatchCount,
	})
	return out, nil
}

func (h *Handler) candidates(ctx context.Context, input *Input, criteria models.SearchCriteria) (*listings.Result, error) {
	if input.Candidates != nil {
		return listings.FromInput(input.Candidates), nil
	}
	return listings.Search(ctx, h.es, h.config.Index, listings.Query{
		Criteria: criteria,
		Size:     h.config.CandidateLimit,
	})
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
