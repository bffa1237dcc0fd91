// internal/workers/favorites/contact-landlord/handler.go
package contactlandlord

import (
	"context"
	"database/sql"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/camunda"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/listings"
	"rental-workers/internal/models"
	"rental-workers/internal/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "contact-landlord"
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
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("userId", "userId is required")
	}

	property, err := h.property(ctx, input)
	if err != nil {
		return nil, err
	}

	message := renderMessage(h.config.MessageTemplate, property)
	link, err := buildLink(h.config.BaseURL, property.LandlordPhone, message)
	if err != nil {
		return nil, err
	}

	// contacting a property that was never favorited is allowed
	marked, err := queries.MarkContacted(ctx, h.db, input.UserID, property.ID)
	if err != nil {
		return nil, err
	}
	if marked {
		if err := cache.InvalidateDashboard(ctx, h.redis, input.UserID); err != nil {
			h.logger.Warn("failed to evict dashboard cache", map[string]interface{}{
				"userId": input.UserID,
				"error":  err,
			})
		}
	}

	h.logger.Info("landlord contact link built", map[string]interface{}{
		"userId":          input.UserID,
		"propertyId":      property.ID,
		"markedContacted": marked,
	})

	return &Output{
		WhatsAppURL:     link,
		Message:         message,
		MarkedContacted: marked,
	}, nil
}

func (h *Handler) property(ctx context.Context, input *Input) (*models.Property, error) {
	if input.Property != nil {
		p := *input.Property
		if p.ID == "" {
			p.ID = input.PropertyID
		}
		if p.ID == "" {
			return nil, apperrors.NewValidationError("propertyId", "propertyId is required")
		}
		return &p, nil
	}
	if input.PropertyID == "" {
		return nil, apperrors.NewValidationError("propertyId", "propertyId is required")
	}
	return listings.Get(ctx, h.es, h.config.Index, input.PropertyID)
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
