// internal/workers/search/execute-saved-search/models.go
package executesavedsearch

import (
	"rental-workers/internal/listings"
	"rental-workers/internal/models"
)

// Input carries optional candidates. When candidates is absent the listings
// index is queried; an empty list is a valid candidate set.
type Input struct {
	SavedSearchID string            `json:"savedSearchId"`
	UserID        string            `json:"userId"`
	Candidates    []models.Property `json:"candidates,omitempty"`
}

type Output struct {
	SavedSearchID string            `json:"savedSearchId"`
	UserID        string            `json:"userId"`
	Matches       []models.Property `json:"matches"`
	MatchCount    int               `json:"matchCount"`
	Evaluated     int               `json:"evaluated"`
	Source        listings.Source   `json:"source,omitempty"`
	Inactive      bool              `json:"inactive"`
}
