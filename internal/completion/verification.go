package completion

import "rental-workers/internal/models"

// DeriveLevel computes the verification level from the milestone flags.
// identityVerified does not affect the level today.
func DeriveLevel(s models.LandlordVerificationStatus) models.VerificationLevel {
	switch {
	case s.BusinessLicenseVerified:
		return models.VerificationPremium
	case s.PhoneVerified && s.EmailVerified:
		return models.VerificationVerified
	default:
		return models.VerificationBasic
	}
}

// WithDerivedLevel returns s with VerificationLevel recomputed from its flags,
// discarding whatever level it carried.
func WithDerivedLevel(s models.LandlordVerificationStatus) models.LandlordVerificationStatus {
	s.VerificationLevel = DeriveLevel(s)
	return s
}
