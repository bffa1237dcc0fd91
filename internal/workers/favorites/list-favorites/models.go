// internal/workers/favorites/list-favorites/models.go
package listfavorites

import "rental-workers/internal/models"

type Input struct {
	UserID string `json:"userId"`
	Limit  int    `json:"limit,omitempty"`
}

type Output struct {
	UserID    string            `json:"userId"`
	Favorites []models.Favorite `json:"favorites"`
	Total     int               `json:"total"`
}
