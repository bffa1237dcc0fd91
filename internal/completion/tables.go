package completion

import "rental-workers/internal/models"

type tenantField = Field[models.TenantProfile]
type landlordField = Field[models.LandlordProfile]

// TenantFields sums to 100. hasPets is present whenever it was answered, so an
// explicit false counts.
var TenantFields = []tenantField{
	{Name: "fullName", Label: "Full name", Weight: 15,
		Present:  func(p models.TenantProfile) bool { return hasText(p.FullName) },
		NextStep: "Add your full name"},
	{Name: "phone", Label: "Phone number", Weight: 15,
		Present:  func(p models.TenantProfile) bool { return hasText(p.Phone) },
		NextStep: "Add a phone number so landlords can reach you"},
	{Name: "occupation", Label: "Occupation", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return hasText(p.Occupation) },
		NextStep: "Tell landlords what you do"},
	{Name: "budgetMin", Label: "Minimum budget", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return positive64(p.BudgetMin) },
		NextStep: "Set your minimum budget"},
	{Name: "budgetMax", Label: "Maximum budget", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return positive64(p.BudgetMax) },
		NextStep: "Set your maximum budget"},
	{Name: "moveDate", Label: "Move-in date", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return hasText(p.MoveDate) },
		NextStep: "Pick your preferred move-in date"},
	{Name: "occupants", Label: "Number of occupants", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return positive(p.Occupants) },
		NextStep: "Say how many people will live in the property"},
	{Name: "preferredAreas", Label: "Preferred areas", Weight: 10,
		Present:  func(p models.TenantProfile) bool { return len(p.PreferredAreas) > 0 },
		NextStep: "Choose the areas you want to live in"},
	{Name: "propertyTypes", Label: "Property types", Weight: 5,
		Present:  func(p models.TenantProfile) bool { return len(p.PropertyTypes) > 0 },
		NextStep: "Select the property types you like"},
	{Name: "hasPets", Label: "Pets", Weight: 5,
		Present:  func(p models.TenantProfile) bool { return p.HasPets != nil },
		NextStep: "Let landlords know whether you have pets"},
}

func landlordText(get func(models.LandlordProfile) string) func(models.LandlordProfile) bool {
	return func(p models.LandlordProfile) bool { return hasText(get(p)) }
}

var (
	fullName     = landlordText(func(p models.LandlordProfile) string { return p.FullName })
	phone        = landlordText(func(p models.LandlordProfile) string { return p.Phone })
	email        = landlordText(func(p models.LandlordProfile) string { return p.Email })
	profilePhoto = landlordText(func(p models.LandlordProfile) string { return p.ProfilePhoto })
	serviceAreas = func(p models.LandlordProfile) bool { return len(p.ServiceAreas) > 0 }
	yearsInTrade = func(p models.LandlordProfile) bool { return p.YearsExperience != nil && *p.YearsExperience >= 0 }
)

// LandlordFields holds one table per landlord type.
var LandlordFields = map[models.LandlordType][]landlordField{
	models.LandlordIndividualOwner: {
		{Name: "fullName", Label: "Full name", Weight: 20, Present: fullName, NextStep: "Add your full name"},
		{Name: "phone", Label: "Phone number", Weight: 20, Present: phone, NextStep: "Add a phone number tenants can reach"},
		{Name: "email", Label: "Email", Weight: 10, Present: email, NextStep: "Add an email address"},
		{Name: "profilePhoto", Label: "Profile photo", Weight: 15, Present: profilePhoto, NextStep: "Add a profile photo"},
		{Name: "bio", Label: "Bio", Weight: 10,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.Bio }),
			NextStep: "Write a short bio"},
		{Name: "idDocument", Label: "ID document", Weight: 15,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.IDDocument }),
			NextStep: "Upload an ID document to get verified"},
		{Name: "preferredContact", Label: "Preferred contact method", Weight: 10,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.PreferredContact }),
			NextStep: "Choose how tenants should contact you"},
	},
	models.LandlordRealEstateAgent: {
		{Name: "fullName", Label: "Full name", Weight: 15, Present: fullName, NextStep: "Add your full name"},
		{Name: "phone", Label: "Phone number", Weight: 15, Present: phone, NextStep: "Add a phone number tenants can reach"},
		{Name: "email", Label: "Email", Weight: 10, Present: email, NextStep: "Add an email address"},
		{Name: "profilePhoto", Label: "Profile photo", Weight: 10, Present: profilePhoto, NextStep: "Add a profile photo"},
		{Name: "agencyName", Label: "Agency name", Weight: 15,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.AgencyName }),
			NextStep: "Add the agency you work for"},
		{Name: "licenseNumber", Label: "License number", Weight: 20,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.LicenseNumber }),
			NextStep: "Add your agent license number"},
		{Name: "serviceAreas", Label: "Service areas", Weight: 10, Present: serviceAreas, NextStep: "List the areas you cover"},
		{Name: "yearsExperience", Label: "Years of experience", Weight: 5, Present: yearsInTrade, NextStep: "Add your years of experience"},
	},
	models.LandlordPropertyCompany: {
		{Name: "companyName", Label: "Company name", Weight: 20,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.CompanyName }),
			NextStep: "Add your company name"},
		{Name: "phone", Label: "Phone number", Weight: 15, Present: phone, NextStep: "Add a phone number tenants can reach"},
		{Name: "email", Label: "Email", Weight: 10, Present: email, NextStep: "Add an email address"},
		{Name: "logo", Label: "Logo", Weight: 10,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.Logo }),
			NextStep: "Upload your company logo"},
		{Name: "businessRegistration", Label: "Business registration", Weight: 20,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.BusinessRegistration }),
			NextStep: "Add your business registration number"},
		{Name: "officeAddress", Label: "Office address", Weight: 10,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.OfficeAddress }),
			NextStep: "Add your office address"},
		{Name: "website", Label: "Website", Weight: 5,
			Present:  landlordText(func(p models.LandlordProfile) string { return p.Website }),
			NextStep: "Add your website"},
		{Name: "serviceAreas", Label: "Service areas", Weight: 10, Present: serviceAreas, NextStep: "List the areas you manage properties in"},
	},
}
