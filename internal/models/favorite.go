// internal/models/favorite.go
package models

import "time"

// Favorite is unique per (UserID, PropertyID). It is hard deleted on toggle off.
type Favorite struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PropertyID  string    `json:"propertyId"`
	IsContacted bool      `json:"isContacted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardSummary is the tenant dashboard aggregate that depends on favorites.
type DashboardSummary struct {
	UserID              string `json:"userId"`
	FavoritesCount      int    `json:"favoritesCount"`
	ContactedCount      int    `json:"contactedCount"`
	ActiveSearchesCount int    `json:"activeSearchesCount"`
	NewMatchesCount     int    `json:"newMatchesCount"`
	ProfileCompletion   *int   `json:"profileCompletion,omitempty"`
}
