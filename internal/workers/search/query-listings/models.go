// internal/workers/search/query-listings/models.go
package querylistings

import (
	"rental-workers/internal/listings"
	"rental-workers/internal/models"
)

type Input struct {
	Criteria models.SearchCriteria `json:"criteria"`
	Keywords string                `json:"keywords,omitempty"`
	From     int                   `json:"from,omitempty"`
	Size     int                   `json:"size,omitempty"`
}

type Output struct {
	Listings *listings.Result `json:"listings"`
}
