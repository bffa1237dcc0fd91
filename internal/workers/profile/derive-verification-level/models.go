// internal/workers/profile/derive-verification-level/models.go
package deriveverificationlevel

import "rental-workers/internal/models"

type Input struct {
	UserID string                             `json:"userId"`
	Status *models.LandlordVerificationStatus `json:"verification,omitempty"`
}

type Output struct {
	UserID       string                            `json:"userId"`
	Verification models.LandlordVerificationStatus `json:"verification"`
	Changed      bool                              `json:"changed"`
}
