// internal/workers/profile/derive-verification-level/handler_test.go
package deriveverificationlevel

import (
	"context"
	"testing"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusColumns = []string{
	"phone_verified", "email_verified", "identity_verified",
	"business_license_verified", "verification_level",
}

func setup(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHandler(LoadConfig(), db, logger.NewTestLogger(t)), mock
}

func TestExecute_PersistsUpgrade(t *testing.T) {
	h, mock := setup(t)

	mock.ExpectQuery(`FROM landlord_verifications`).
		WithArgs("ll-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).AddRow(true, true, false, false, "basic"))
	mock.ExpectExec(`INSERT INTO landlord_verifications`).
		WithArgs("ll-1", "verified").
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := h.Execute(context.Background(), &Input{UserID: "ll-1"})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, models.VerificationVerified, out.Verification.VerificationLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_IgnoresSuppliedLevel(t *testing.T) {
	h, mock := setup(t)

	mock.ExpectQuery(`FROM landlord_verifications`).
		WithArgs("ll-1").
		WillReturnRows(sqlmock.NewRows(statusColumns).AddRow(false, false, false, false, "basic"))

	out, err := h.Execute(context.Background(), &Input{
		UserID: "ll-1",
		Status: &models.LandlordVerificationStatus{
			PhoneVerified:     true,
			IdentityVerified:  true,
			VerificationLevel: models.VerificationPremium,
		},
	})
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, models.VerificationBasic, out.Verification.VerificationLevel)
	assert.True(t, out.Verification.IdentityVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_NewLandlordWithLicense(t *testing.T) {
	h, mock := setup(t)

	mock.ExpectQuery(`FROM landlord_verifications`).
		WithArgs("ll-2").
		WillReturnRows(sqlmock.NewRows(statusColumns))
	mock.ExpectExec(`INSERT INTO landlord_verifications`).
		WithArgs("ll-2", "premium").
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := h.Execute(context.Background(), &Input{
		UserID: "ll-2",
		Status: &models.LandlordVerificationStatus{BusinessLicenseVerified: true},
	})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, models.VerificationPremium, out.Verification.VerificationLevel)
}

func TestExecute_RequiresUser(t *testing.T) {
	h, _ := setup(t)
	_, err := h.Execute(context.Background(), &Input{})
	assert.True(t, apperrors.IsValidation(err))
}
