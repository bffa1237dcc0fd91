// cmd/worker-manager/workers.go
package main

import (
	"database/sql"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	"rental-workers/internal/common/config"
	"rental-workers/internal/common/logger"
	"rental-workers/pkg/registry"

	cl "rental-workers/internal/workers/favorites/contact-landlord"
	lf "rental-workers/internal/workers/favorites/list-favorites"
	sd "rental-workers/internal/workers/favorites/summarize-dashboard"
	tf "rental-workers/internal/workers/favorites/toggle-favorite"
	cpc "rental-workers/internal/workers/profile/calculate-profile-completion"
	dvl "rental-workers/internal/workers/profile/derive-verification-level"
	ess "rental-workers/internal/workers/search/execute-saved-search"
	mss "rental-workers/internal/workers/search/manage-saved-search"
	nsm "rental-workers/internal/workers/search/notify-search-matches"
	ql "rental-workers/internal/workers/search/query-listings"
	ss "rental-workers/internal/workers/search/save-search"
	vsc "rental-workers/internal/workers/search/validate-search-criteria"
)

// jobLockMargin keeps the Zeebe job lock longer than the handler's own deadline.
const jobLockMargin = 5 * time.Second

type notificationSenders struct {
	email nsm.EmailSender
	sms   nsm.SMSSender
}

type dependencies struct {
	cfg      *config.Config
	registry *registry.ActivityRegistry
	db       *sql.DB
	es       *elasticsearch.Client
	redis    *redis.Client
	senders  notificationSenders
	log      logger.Logger
}

type registeredWorker struct {
	taskType string
	handle   worker.JobHandler
}

// handlerTimeout prefers the registry's timeout and falls back to the worker config.
func (d *dependencies) handlerTimeout(taskType string) time.Duration {
	fallback := config.GetDuration(config.GetWorkerConfig(d.cfg, taskType).Timeout)
	if a, ok := d.registry.Find(taskType); ok {
		return a.TimeoutOr(fallback)
	}
	return fallback
}

func (d *dependencies) jobTimeout(taskType string) time.Duration {
	lock := config.GetDuration(config.GetWorkerConfig(d.cfg, taskType).Timeout)
	if floor := d.handlerTimeout(taskType) + jobLockMargin; lock < floor {
		return floor
	}
	return lock
}

func (d *dependencies) schema(taskType string) map[string]interface{} {
	return d.registry.InputSchema(taskType)
}

func buildWorkers(d *dependencies) []registeredWorker {
	cfg := d.cfg
	savedSearchTTL := config.GetTTL(cfg.Cache.SavedSearchTTL)

	return []registeredWorker{
		{vsc.TaskType, vsc.NewHandler(&vsc.Config{
			Timeout:     d.handlerTimeout(vsc.TaskType),
			InputSchema: d.schema(vsc.TaskType),
		}, d.log).Handle},

		{ss.TaskType, ss.NewHandler(&ss.Config{
			Timeout:       d.handlerTimeout(ss.TaskType),
			MaxNameLength: ss.LoadConfig().MaxNameLength,
			InputSchema:   d.schema(ss.TaskType),
		}, d.db, d.redis, d.log).Handle},

		{mss.TaskType, mss.NewHandler(&mss.Config{
			Timeout:     d.handlerTimeout(mss.TaskType),
			CacheTTL:    savedSearchTTL,
			InputSchema: d.schema(mss.TaskType),
		}, d.db, d.redis, d.log).Handle},

		{ql.TaskType, ql.NewHandler(&ql.Config{
			Timeout:     d.handlerTimeout(ql.TaskType),
			Index:       cfg.Search.ListingsIndex,
			MaxSize:     cfg.Search.CandidateLimit,
			InputSchema: d.schema(ql.TaskType),
		}, d.es, d.log).Handle},

		{ess.TaskType, ess.NewHandler(&ess.Config{
			Timeout:        d.handlerTimeout(ess.TaskType),
			CacheTTL:       savedSearchTTL,
			Index:          cfg.Search.ListingsIndex,
			CandidateLimit: cfg.Search.CandidateLimit,
			InputSchema:    d.schema(ess.TaskType),
		}, d.db, d.es, d.redis, d.log).Handle},

		{nsm.TaskType, nsm.NewHandler(&nsm.Config{
			Timeout:      d.handlerTimeout(nsm.TaskType),
			EmailEnabled: cfg.Notifications.Email.Enabled,
			SMSEnabled:   cfg.Notifications.SMS.Enabled,
			PreviewCount: nsm.LoadConfig().PreviewCount,
			InputSchema:  d.schema(nsm.TaskType),
		}, d.db, d.redis, d.senders.email, d.senders.sms, d.log).Handle},

		{cpc.TaskType, cpc.NewHandler(&cpc.Config{
			Timeout:     d.handlerTimeout(cpc.TaskType),
			InputSchema: d.schema(cpc.TaskType),
		}, d.db, d.log).Handle},

		{dvl.TaskType, dvl.NewHandler(&dvl.Config{
			Timeout:     d.handlerTimeout(dvl.TaskType),
			InputSchema: d.schema(dvl.TaskType),
		}, d.db, d.log).Handle},

		{tf.TaskType, tf.NewHandler(&tf.Config{
			Timeout:     d.handlerTimeout(tf.TaskType),
			InputSchema: d.schema(tf.TaskType),
		}, d.db, d.redis, d.log).Handle},

		{lf.TaskType, lf.NewHandler(&lf.Config{
			Timeout:      d.handlerTimeout(lf.TaskType),
			DefaultLimit: lf.LoadConfig().DefaultLimit,
			MaxLimit:     lf.LoadConfig().MaxLimit,
			InputSchema:  d.schema(lf.TaskType),
		}, d.db, d.log).Handle},

		{cl.TaskType, cl.NewHandler(&cl.Config{
			Timeout:         d.handlerTimeout(cl.TaskType),
			Index:           cfg.Search.ListingsIndex,
			BaseURL:         cfg.WhatsApp.BaseURL,
			MessageTemplate: cfg.WhatsApp.MessageTemplate,
			InputSchema:     d.schema(cl.TaskType),
		}, d.db, d.es, d.redis, d.log).Handle},

		{sd.TaskType, sd.NewHandler(&sd.Config{
			Timeout:     d.handlerTimeout(sd.TaskType),
			CacheTTL:    config.GetTTL(cfg.Cache.DashboardTTL),
			InputSchema: d.schema(sd.TaskType),
		}, d.db, d.redis, d.log).Handle},
	}
}
