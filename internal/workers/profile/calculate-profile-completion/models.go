// internal/workers/profile/calculate-profile-completion/models.go
package calculateprofilecompletion

import "rental-workers/internal/models"

// Input carries the profile inline when the process already has it; otherwise
// the stored profile is scored.
type Input struct {
	UserID          string                  `json:"userId"`
	Role            models.Role             `json:"role"`
	TenantProfile   *models.TenantProfile   `json:"tenantProfile,omitempty"`
	LandlordProfile *models.LandlordProfile `json:"landlordProfile,omitempty"`
}

type Output struct {
	UserID     string                    `json:"userId"`
	Role       models.Role               `json:"role"`
	Completion *models.ProfileCompletion `json:"completion"`
}
