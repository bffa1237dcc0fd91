// internal/workers/search/save-search/models.go
package savesearch

import "rental-workers/internal/models"

type Input struct {
	SavedSearchID        string                `json:"savedSearchId,omitempty"`
	UserID               string                `json:"userId"`
	Name                 string                `json:"name"`
	Criteria             models.SearchCriteria `json:"criteria"`
	NotificationsEnabled *bool                 `json:"notificationsEnabled,omitempty"`
}

type Output struct {
	SavedSearch models.SavedSearch `json:"savedSearch"`
	Created     bool               `json:"created"`
}
