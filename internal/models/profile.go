// internal/models/profile.go
package models

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

type LandlordType string

const (
	LandlordIndividualOwner LandlordType = "individual_owner"
	LandlordRealEstateAgent LandlordType = "real_estate_agent"
	LandlordPropertyCompany LandlordType = "property_company"
)

// TenantProfile is a partially filled tenant profile. Optional values are pointers
// so that "not answered" and "answered with the zero value" stay distinct.
type TenantProfile struct {
	UserID         string         `json:"userId"`
	FullName       string         `json:"fullName,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Occupation     string         `json:"occupation,omitempty"`
	BudgetMin      *int64         `json:"budgetMin,omitempty"`
	BudgetMax      *int64         `json:"budgetMax,omitempty"`
	MoveDate       string         `json:"moveDate,omitempty"`
	Occupants      *int           `json:"occupants,omitempty"`
	PreferredAreas []string       `json:"preferredAreas,omitempty"`
	PropertyTypes  []PropertyType `json:"propertyTypes,omitempty"`
	HasPets        *bool          `json:"hasPets,omitempty"`
}

type LandlordProfile struct {
	UserID               string       `json:"userId"`
	LandlordType         LandlordType `json:"landlordType"`
	FullName             string       `json:"fullName,omitempty"`
	CompanyName          string       `json:"companyName,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	Email                string       `json:"email,omitempty"`
	ProfilePhoto         string       `json:"profilePhoto,omitempty"`
	Logo                 string       `json:"logo,omitempty"`
	Bio                  string       `json:"bio,omitempty"`
	IDDocument           string       `json:"idDocument,omitempty"`
	PreferredContact     string       `json:"preferredContact,omitempty"`
	AgencyName           string       `json:"agencyName,omitempty"`
	LicenseNumber        string       `json:"licenseNumber,omitempty"`
	ServiceAreas         []string     `json:"serviceAreas,omitempty"`
	YearsExperience      *int         `json:"yearsExperience,omitempty"`
	BusinessRegistration string       `json:"businessRegistration,omitempty"`
	OfficeAddress        string       `json:"officeAddress,omitempty"`
	Website              string       `json:"website,omitempty"`
}

// ProfileCompletion is derived on every request and never stored.
type ProfileCompletion struct {
	Percentage    int      `json:"percentage"`
	MissingFields []string `json:"missingFields"`
	NextSteps     []string `json:"nextSteps"`
}

type VerificationLevel string

const (
	VerificationBasic    VerificationLevel = "basic"
	VerificationVerified VerificationLevel = "verified"
	VerificationPremium  VerificationLevel = "premium"
)

type LandlordVerificationStatus struct {
	PhoneVerified           bool              `json:"phoneVerified"`
	EmailVerified           bool              `json:"emailVerified"`
	IdentityVerified        bool              `json:"identityVerified"`
	BusinessLicenseVerified bool              `json:"businessLicenseVerified"`
	VerificationLevel       VerificationLevel `json:"verificationLevel"`
}
