// internal/queries/savedsearch.go
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"
)

const savedSearchColumns = `id, user_id, name, criteria, is_active, notifications_enabled,
		new_matches_count, last_run_at, created_at, updated_at`

func scanSavedSearch(row interface{ Scan(...interface{}) error }) (*models.SavedSearch, error) {
	var s models.SavedSearch
	var criteria []byte
	var lastRun sql.NullTime

	if err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &criteria, &s.IsActive, &s.NotificationsEnabled,
		&s.NewMatchesCount, &lastRun, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &s.Criteria); err != nil {
			return nil, apperrors.NewParseError(err)
		}
	}
	if lastRun.Valid {
		t := lastRun.Time
		s.LastRunAt = &t
	}
	return &s, nil
}

// GetSavedSearch loads a saved search owned by userID.
func GetSavedSearch(ctx context.Context, q database.Querier, id, userID string) (*models.SavedSearch, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+savedSearchColumns+`
		FROM saved_searches
		WHERE id = $1 AND user_id = $2`, id, userID)

	s, err := scanSavedSearch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("saved search", id)
	}
	if err != nil {
		if _, ok := apperrors.AsStandard(err); ok {
			return nil, err
		}
		return nil, queryError(ctx, "get_saved_search", err)
	}
	return s, nil
}

// ListActiveSavedSearches returns the user's active searches, oldest first.
func ListActiveSavedSearches(ctx context.Context, q database.Querier, userID string) ([]models.SavedSearch, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+savedSearchColumns+`
		FROM saved_searches
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, queryError(ctx, "list_saved_searches", err)
	}
	defer rows.Close()

	out := []models.SavedSearch{}
	for rows.Next() {
		s, err := scanSavedSearch(rows)
		if err != nil {
			return nil, queryError(ctx, "list_saved_searches", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(ctx, "list_saved_searches", err)
	}
	return out, nil
}

// UpsertSavedSearch inserts s or updates its name, criteria and notification flag.
// CreatedAt and UpdatedAt are filled from the database.
func UpsertSavedSearch(ctx context.Context, q database.Querier, s *models.SavedSearch) error {
	criteria, err := json.Marshal(s.Criteria)
	if err != nil {
		return apperrors.NewParseError(err)
	}

	err = q.QueryRowContext(ctx, `
		INSERT INTO saved_searches (id, user_id, name, criteria, is_active, notifications_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    criteria = EXCLUDED.criteria,
		    notifications_enabled = EXCLUDED.notifications_enabled,
		    updated_at = NOW()
		WHERE saved_searches.user_id = EXCLUDED.user_id
		RETURNING created_at, updated_at`,
		s.ID, s.UserID, s.Name, criteria, s.IsActive, s.NotificationsEnabled,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// the id exists but belongs to someone else
		return apperrors.NewNotFoundError("saved search", s.ID)
	}
	if err != nil {
		return queryError(ctx, "upsert_saved_search", err)
	}
	return nil
}

// SetSavedSearchActive activates or deactivates a search.
func SetSavedSearchActive(ctx context.Context, q database.Querier, id, userID string, active bool) error {
	return updateSavedSearch(ctx, q, "set_saved_search_active", id, `
		UPDATE saved_searches SET is_active = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`, userID, active)
}

// SetSavedSearchNotifications toggles match notifications for a search.
func SetSavedSearchNotifications(ctx context.Context, q database.Querier, id, userID string, enabled bool) error {
	return updateSavedSearch(ctx, q, "set_saved_search_notifications", id, `
		UPDATE saved_searches SET notifications_enabled = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`, userID, enabled)
}

// DeleteSavedSearch removes a search.
func DeleteSavedSearch(ctx context.Context, q database.Querier, id, userID string) error {
	return updateSavedSearch(ctx, q, "delete_saved_search", id, `
		DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`, userID)
}

// RecordSearchRun stamps the run time and adds newMatches to the unseen counter.
func RecordSearchRun(ctx context.Context, q database.Querier, id string, newMatches int, at time.Time) (int, error) {
	var total int
	err := q.QueryRowContext(ctx, `
		UPDATE saved_searches
		SET new_matches_count = new_matches_count + $2, last_run_at = $3
		WHERE id = $1
		RETURNING new_matches_count`, id, newMatches, at).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NewNotFoundError("saved search", id)
	}
	if err != nil {
		return 0, queryError(ctx, "record_search_run", err)
	}
	return total, nil
}

func updateSavedSearch(ctx context.Context, q database.Querier, name, id, stmt, userID string, extra ...interface{}) error {
	args := append([]interface{}{id, userID}, extra...)
	res, err := q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return queryError(ctx, name, err)
	}
	n, err := rowsAffected(ctx, name, res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NewNotFoundError("saved search", id)
	}
	return nil
}
