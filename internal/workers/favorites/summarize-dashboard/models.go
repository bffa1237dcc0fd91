// internal/workers/favorites/summarize-dashboard/models.go
package summarizedashboard

import "rental-workers/internal/models"

type Input struct {
	UserID string `json:"userId"`
}

type Output struct {
	Summary *models.DashboardSummary `json:"summary"`
	Cached  bool                     `json:"cached"`
}
