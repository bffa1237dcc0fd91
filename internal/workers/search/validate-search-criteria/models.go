// internal/workers/search/validate-search-criteria/models.go
package validatesearchcriteria

import "rental-workers/internal/models"

type Input struct {
	Criteria models.SearchCriteria `json:"criteria"`
}

type Output struct {
	IsValid  bool                  `json:"isValid"`
	Criteria models.SearchCriteria `json:"criteria"`
}
