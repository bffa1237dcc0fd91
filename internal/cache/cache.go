// Package cache holds the Redis keys shared by the workers and the read-through
// loaders that sit in front of Postgres.
package cache

import (
	"context"
	"database/sql"
	"time"

	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/models"
	"rental-workers/internal/queries"

	"github.com/redis/go-redis/v9"
)

func SavedSearchKey(id string) string {
	return database.CacheKey("saved_search", id)
}

func DashboardKey(userID string) string {
	return database.CacheKey("dashboard", userID)
}

// SavedSearch reads a saved search through Redis. Redis errors fall back to
// Postgres. A cached entry that belongs to another user is treated as not found.
func SavedSearch(ctx context.Context, db *sql.DB, rdb *redis.Client, ttl time.Duration, id, userID string) (*models.SavedSearch, error) {
	key := SavedSearchKey(id)

	var cached models.SavedSearch
	found, err := database.GetJSON(ctx, rdb, key, &cached)
	if err != nil {
		found = false
	}
	metrics.RecordCacheLookup("saved_search", found)
	if found {
		if cached.UserID != userID {
			return nil, apperrors.NewNotFoundError("saved search", id)
		}
		return &cached, nil
	}

	s, err := queries.GetSavedSearch(ctx, db, id, userID)
	if err != nil {
		return nil, err
	}
	_ = database.SetJSON(ctx, rdb, key, s, ttl)
	return s, nil
}

// InvalidateSavedSearch evicts the saved search and its owner's dashboard.
func InvalidateSavedSearch(ctx context.Context, rdb *redis.Client, id, userID string) error {
	keys := []string{SavedSearchKey(id)}
	if userID != "" {
		keys = append(keys, DashboardKey(userID))
	}
	if err := database.Invalidate(ctx, rdb, keys...); err != nil {
		return apperrors.NewCacheFailureError(keys[0], err)
	}
	return nil
}

// InvalidateDashboard evicts the user's dashboard aggregate.
func InvalidateDashboard(ctx context.Context, rdb *redis.Client, userID string) error {
	key := DashboardKey(userID)
	if err := database.Invalidate(ctx, rdb, key); err != nil {
		return apperrors.NewCacheFailureError(key, err)
	}
	return nil
}
