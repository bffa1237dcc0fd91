// internal/workers/search/query-listings/handler.go
package querylistings

import (
	"context"

	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/listings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
)

const (
	TaskType = "query-listings"
)

type Handler struct {
	config       *Config
	client       *elasticsearch.Client
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		client:       client,
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
	size := input.Size
	if h.config.MaxSize > 0 && (size <= 0 || size > h.config.MaxSize) {
		size = h.config.MaxSize
	}

	result, err := listings.Search(ctx, h.client, h.config.Index, listings.Query{
		Criteria: input.Criteria,
		Keywords: input.Keywords,
		From:     input.From,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	if result.Skipped > 0 {
		h.logger.Warn("skipped undecodable listings", map[string]interface{}{
			"index":   h.config.Index,
			"skipped": result.Skipped,
		})
	}
	h.logger.Info("listings retrieved", map[string]interface{}{
		"count": len(result.Properties),
		"total": result.Total,
	})

	return &Output{Listings: result}, nil
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
