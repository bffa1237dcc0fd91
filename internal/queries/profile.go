// internal/queries/profile.go
package queries

import (
	"context"
	"database/sql"
	"errors"

	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"

	"github.com/lib/pq"
)

// GetTenantProfile loads the tenant profile for userID.
func GetTenantProfile(ctx context.Context, q database.Querier, userID string) (*models.TenantProfile, error) {
	var (
		p                               models.TenantProfile
		fullName, phone, email          sql.NullString
		occupation, moveDate            sql.NullString
		budgetMin, budgetMax, occupants sql.NullInt64
		hasPets                         sql.NullBool
		areas, types                    []string
	)

	err := q.QueryRowContext(ctx, `
		SELECT user_id, full_name, phone, email, occupation, budget_min, budget_max,
		       move_date, occupants, preferred_areas, property_types, has_pets
		FROM tenant_profiles
		WHERE user_id = $1`, userID).Scan(
		&p.UserID, &fullName, &phone, &email, &occupation, &budgetMin, &budgetMax,
		&moveDate, &occupants, pq.Array(&areas), pq.Array(&types), &hasPets,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("tenant profile", userID)
	}
	if err != nil {
		return nil, queryError(ctx, "get_tenant_profile", err)
	}

	p.FullName = nullString(fullName)
	p.Phone = nullString(phone)
	p.Email = nullString(email)
	p.Occupation = nullString(occupation)
	p.MoveDate = nullString(moveDate)
	p.BudgetMin = nullInt64Ptr(budgetMin)
	p.BudgetMax = nullInt64Ptr(budgetMax)
	p.Occupants = nullIntPtr(occupants)
	p.HasPets = nullBoolPtr(hasPets)
	p.PreferredAreas = areas
	for _, t := range types {
		p.PropertyTypes = append(p.PropertyTypes, models.PropertyType(t))
	}
	return &p, nil
}

// GetLandlordProfile loads the landlord profile for userID.
func GetLandlordProfile(ctx context.Context, q database.Querier, userID string) (*models.LandlordProfile, error) {
	var (
		p                                     models.LandlordProfile
		landlordType                          string
		fullName, companyName, phone, email   sql.NullString
		photo, logo, bio, idDoc, contact      sql.NullString
		agency, license, registration, office sql.NullString
		website                               sql.NullString
		years                                 sql.NullInt64
		areas                                 []string
	)

	err := q.QueryRowContext(ctx, `
		SELECT user_id, landlord_type, full_name, company_name, phone, email,
		       profile_photo, logo, bio, id_document, preferred_contact,
		       agency_name, license_number, service_areas, years_experience,
		       business_registration, office_address, website
		FROM landlord_profiles
		WHERE user_id = $1`, userID).Scan(
		&p.UserID, &landlordType, &fullName, &companyName, &phone, &email,
		&photo, &logo, &bio, &idDoc, &contact,
		&agency, &license, pq.Array(&areas), &years,
		&registration, &office, &website,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("landlord profile", userID)
	}
	if err != nil {
		return nil, queryError(ctx, "get_landlord_profile", err)
	}

	p.LandlordType = models.LandlordType(landlordType)
	p.FullName = nullString(fullName)
	p.CompanyName = nullString(companyName)
	p.Phone = nullString(phone)
	p.Email = nullString(email)
	p.ProfilePhoto = nullString(photo)
	p.Logo = nullString(logo)
	p.Bio = nullString(bio)
	p.IDDocument = nullString(idDoc)
	p.PreferredContact = nullString(contact)
	p.AgencyName = nullString(agency)
	p.LicenseNumber = nullString(license)
	p.ServiceAreas = areas
	p.YearsExperience = nullIntPtr(years)
	p.BusinessRegistration = nullString(registration)
	p.OfficeAddress = nullString(office)
	p.Website = nullString(website)
	return &p, nil
}

// GetVerificationStatus loads the landlord's verification flags. A landlord
// with no row yet has nothing verified.
func GetVerificationStatus(ctx context.Context, q database.Querier, userID string) (*models.LandlordVerificationStatus, error) {
	var s models.LandlordVerificationStatus
	var level sql.NullString

	err := q.QueryRowContext(ctx, `
		SELECT phone_verified, email_verified, identity_verified,
		       business_license_verified, verification_level
		FROM landlord_verifications
		WHERE user_id = $1`, userID).Scan(
		&s.PhoneVerified, &s.EmailVerified, &s.IdentityVerified,
		&s.BusinessLicenseVerified, &level,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.LandlordVerificationStatus{}, nil
	}
	if err != nil {
		return nil, queryError(ctx, "get_verification_status", err)
	}
	s.VerificationLevel = models.VerificationLevel(nullString(level))
	return &s, nil
}

// SaveVerificationLevel persists a derived level.
func SaveVerificationLevel(ctx context.Context, q database.Querier, userID string, level models.VerificationLevel) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO landlord_verifications (user_id, verification_level, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET verification_level = EXCLUDED.verification_level, updated_at = NOW()`,
		userID, string(level))
	if err != nil {
		return queryError(ctx, "save_verification_level", err)
	}
	return nil
}
