package queries

import (
	"context"

	"rental-workers/internal/common/database"
	"rental-workers/internal/completion"
	"rental-workers/internal/models"
)

// ProfileCompletion loads the user's current profile and scores it. The
// result is never stored.
func ProfileCompletion(ctx context.Context, q database.Querier, role models.Role, userID string) (*models.ProfileCompletion, error) {
	var (
		tenant   *models.TenantProfile
		landlord *models.LandlordProfile
		err      error
	)
	switch role {
	case models.RoleTenant:
		tenant, err = GetTenantProfile(ctx, q, userID)
	case models.RoleLandlord:
		landlord, err = GetLandlordProfile(ctx, q, userID)
	}
	if err != nil {
		return nil, err
	}
	return completion.ForRole(role, tenant, landlord)
}
