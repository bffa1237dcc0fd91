// internal/queries/dashboard.go
package queries

import (
	"context"

	"rental-workers/internal/common/database"
	"rental-workers/internal/models"
)

// DashboardCounts aggregates a tenant's favorites and active searches.
func DashboardCounts(ctx context.Context, q database.Querier, userID string) (*models.DashboardSummary, error) {
	s := models.DashboardSummary{UserID: userID}
	err := q.QueryRowContext(ctx, `
		SELECT
		    (SELECT COUNT(*) FROM favorites WHERE user_id = $1),
		    (SELECT COUNT(*) FROM favorites WHERE user_id = $1 AND is_contacted),
		    (SELECT COUNT(*) FROM saved_searches WHERE user_id = $1 AND is_active),
		    (SELECT COALESCE(SUM(new_matches_count), 0) FROM saved_searches WHERE user_id = $1 AND is_active)`,
		userID).Scan(&s.FavoritesCount, &s.ContactedCount, &s.ActiveSearchesCount, &s.NewMatchesCount)
	if err != nil {
		return nil, queryError(ctx, "dashboard_counts", err)
	}
	return &s, nil
}
