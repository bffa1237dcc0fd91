package completion

import (
	"fmt"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"
)

// ForRole scores whichever profile matches role.
func ForRole(role models.Role, tenant *models.TenantProfile, landlord *models.LandlordProfile) (*models.ProfileCompletion, error) {
	switch role {
	case models.RoleTenant:
		if tenant == nil {
			return nil, apperrors.NewValidationError("tenantProfile", "tenantProfile is required for role tenant")
		}
		c := ScoreTenant(*tenant)
		return &c, nil
	case models.RoleLandlord:
		if landlord == nil {
			return nil, apperrors.NewValidationError("landlordProfile", "landlordProfile is required for role landlord")
		}
		c, ok := ScoreLandlord(*landlord)
		if !ok {
			return nil, apperrors.NewValidationError("landlordType", fmt.Sprintf("unknown landlord type %q", landlord.LandlordType))
		}
		return &c, nil
	default:
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
}
