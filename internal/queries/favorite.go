// internal/queries/favorite.go
package queries

import (
	"context"
	"database/sql"
	"errors"

	"rental-workers/internal/common/database"
	"rental-workers/internal/models"
)

// ToggleFavorite removes the favorite if it exists and creates it otherwise.
// It returns the resulting state and the favorite id. Run it inside WithTx.
func ToggleFavorite(ctx context.Context, q database.Querier, newID, userID, propertyID string) (bool, string, error) {
	var id string
	err := q.QueryRowContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND property_id = $2
		RETURNING id`, userID, propertyID).Scan(&id)
	switch {
	case err == nil:
		return false, id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, "", queryError(ctx, "delete_favorite", err)
	}

	err = q.QueryRowContext(ctx, `
		INSERT INTO favorites (id, user_id, property_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, property_id) DO NOTHING
		RETURNING id`, newID, userID, propertyID).Scan(&id)
	switch {
	case err == nil:
		return true, id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, "", queryError(ctx, "insert_favorite", err)
	}

	// a concurrent toggle inserted the same pair first
	err = q.QueryRowContext(ctx, `
		SELECT id FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID).Scan(&id)
	if err != nil {
		return false, "", queryError(ctx, "get_favorite", err)
	}
	return true, id, nil
}

// ListFavorites returns the user's favorites, newest first.
func ListFavorites(ctx context.Context, q database.Querier, userID string, limit int) ([]models.Favorite, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, user_id, property_id, is_contacted, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, queryError(ctx, "list_favorites", err)
	}
	defer rows.Close()

	out := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PropertyID, &f.IsContacted, &f.CreatedAt); err != nil {
			return nil, queryError(ctx, "list_favorites", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(ctx, "list_favorites", err)
	}
	return out, nil
}

// MarkContacted flags a favorite as contacted. It reports false when the
// property is not in the user's favorites.
func MarkContacted(ctx context.Context, q database.Querier, userID, propertyID string) (bool, error) {
	res, err := q.ExecContext(ctx, `
		UPDATE favorites SET is_contacted = true, contacted_at = NOW()
		WHERE user_id = $1 AND property_id = $2`, userID, propertyID)
	if err != nil {
		return false, queryError(ctx, "mark_contacted", err)
	}
	n, err := rowsAffected(ctx, "mark_contacted", res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
