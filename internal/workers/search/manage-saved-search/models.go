// internal/workers/search/manage-saved-search/models.go
package managesavedsearch

import "rental-workers/internal/models"

type Action string

const (
	ActionGet                  Action = "get"
	ActionActivate             Action = "activate"
	ActionDeactivate           Action = "deactivate"
	ActionEnableNotifications  Action = "enable-notifications"
	ActionDisableNotifications Action = "disable-notifications"
	ActionDelete               Action = "delete"
)

type Input struct {
	SavedSearchID string `json:"savedSearchId"`
	UserID        string `json:"userId"`
	Action        Action `json:"action"`
}

type Output struct {
	SavedSearchID string              `json:"savedSearchId"`
	Action        Action              `json:"action"`
	SavedSearch   *models.SavedSearch `json:"savedSearch,omitempty"`
	Deleted       bool                `json:"deleted"`
}
