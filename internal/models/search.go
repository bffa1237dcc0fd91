// internal/models/search.go
package models

import "time"

// Range is an inclusive numeric range. A nil bound is unbounded.
type Range struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// SearchCriteria is a tenant authored filter over listings. Money is in minor units.
type SearchCriteria struct {
	BudgetMin     *int64         `json:"budgetMin,omitempty"`
	BudgetMax     *int64         `json:"budgetMax,omitempty"`
	Bedrooms      *Range         `json:"bedrooms,omitempty"`
	Bathrooms     *Range         `json:"bathrooms,omitempty"`
	PropertyTypes []PropertyType `json:"propertyTypes,omitempty"`
	Locations     []string       `json:"locations,omitempty"`
	Amenities     []string       `json:"amenities,omitempty"`
	PetsAllowed   *bool          `json:"petsAllowed,omitempty"`
}

type SavedSearch struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"userId"`
	Name                 string         `json:"name"`
	Criteria             SearchCriteria `json:"criteria"`
	IsActive             bool           `json:"isActive"`
	NotificationsEnabled bool           `json:"notificationsEnabled"`
	NewMatchesCount      int            `json:"newMatchesCount"`
	LastRunAt            *time.Time     `json:"lastRunAt,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
