// Package matching decides whether a listing satisfies a tenant's search criteria.
package matching

import (
	"fmt"
	"math"
	"strings"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"
)

// Matches reports whether p satisfies every field rule in c. It has no side effects.
func Matches(c models.SearchCriteria, p models.Property) bool {
	return matchPrice(c, p) &&
		matchRange(c.Bedrooms, float64(p.Bedrooms)) &&
		matchCount(c.Bathrooms, p.Bathrooms) &&
		matchAmenities(c.Amenities, p.Amenities) &&
		matchType(c.PropertyTypes, p.Type) &&
		matchPets(c.PetsAllowed, p.PetsAllowed) &&
		matchLocation(c.Locations, p.Location)
}

// Filter returns the candidates that match c, preserving order. A candidate
// whose fields cannot be coerced only fails itself.
func Filter(c models.SearchCriteria, candidates []models.Property) []models.Property {
	out := make([]models.Property, 0, len(candidates))
	for _, p := range candidates {
		if Matches(c, p) {
			out = append(out, p)
		}
	}
	return out
}

func matchPrice(c models.SearchCriteria, p models.Property) bool {
	min := int64(0)
	if c.BudgetMin != nil {
		min = *c.BudgetMin
	}
	max := int64(math.MaxInt64)
	if c.BudgetMax != nil {
		max = *c.BudgetMax
	}
	return p.PriceAmount >= min && p.PriceAmount <= max
}

func matchRange(r *models.Range, value float64) bool {
	if r == nil {
		return true
	}
	min := 0.0
	if r.Min != nil {
		min = float64(*r.Min)
	}
	max := math.Inf(1)
	if r.Max != nil {
		max = float64(*r.Max)
	}
	return value >= min && value <= max
}

// matchCount applies r to a coerced count. A value that cannot be coerced fails
// any range; with no range the field is not consulted.
func matchCount(r *models.Range, n models.Count) bool {
	if r == nil {
		return true
	}
	value, err := n.Float()
	if err != nil {
		return false
	}
	return matchRange(r, value)
}

// matchAmenities is ANY-of: one shared amenity is enough.
func matchAmenities(wanted, have []string) bool {
	if len(wanted) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, a := range have {
		set[a] = struct{}{}
	}
	for _, a := range wanted {
		if _, ok := set[a]; ok {
			return true
		}
	}
	return false
}

func matchType(types []models.PropertyType, t models.PropertyType) bool {
	if len(types) == 0 {
		return true
	}
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}

func matchPets(required *bool, allowed bool) bool {
	if required == nil || !*required {
		return true
	}
	return allowed
}

func matchLocation(locations []string, location string) bool {
	if len(locations) == 0 {
		return true
	}
	for _, l := range locations {
		if l == location {
			return true
		}
	}
	return false
}

// ValidateCriteria rejects criteria that can never be satisfied or that carry
// unknown values. It runs once before a search is persisted and never corrects
// the input.
func ValidateCriteria(c models.SearchCriteria) error {
	if c.BudgetMin != nil && *c.BudgetMin < 0 {
		return apperrors.NewValidationError("budgetMin", "budgetMin must not be negative")
	}
	if c.BudgetMax != nil && *c.BudgetMax < 0 {
		return apperrors.NewValidationError("budgetMax", "budgetMax must not be negative")
	}
	if c.BudgetMin != nil && c.BudgetMax != nil && *c.BudgetMin > *c.BudgetMax {
		return apperrors.NewValidationError("budgetMin",
			fmt.Sprintf("budgetMin (%d) must not exceed budgetMax (%d)", *c.BudgetMin, *c.BudgetMax))
	}
	if err := validateRange("bedrooms", c.Bedrooms); err != nil {
		return err
	}
	if err := validateRange("bathrooms", c.Bathrooms); err != nil {
		return err
	}
	for _, t := range c.PropertyTypes {
		if !t.Valid() {
			return apperrors.NewValidationError("propertyTypes", fmt.Sprintf("unknown property type %q", t))
		}
	}
	for _, l := range c.Locations {
		if l == "" {
			return apperrors.NewValidationError("locations", "locations must not contain empty names")
		}
	}
	return nil
}

func validateRange(field string, r *models.Range) error {
	if r == nil {
		return nil
	}
	if r.Min != nil && *r.Min < 0 {
		return apperrors.NewValidationError(field, field+".min must not be negative")
	}
	if r.Max != nil && *r.Max < 0 {
		return apperrors.NewValidationError(field, field+".max must not be negative")
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return apperrors.NewValidationError(field,
			fmt.Sprintf("%s.min (%d) must not exceed %s.max (%d)", field, *r.Min, field, *r.Max))
	}
	return nil
}

// NormalizeCriteria trims list entries and drops blanks and duplicates, keeping
// first-seen order. Case is preserved because membership tests are exact.
func NormalizeCriteria(c models.SearchCriteria) models.SearchCriteria {
	c.Locations = dedupe(c.Locations)
	c.Amenities = dedupe(c.Amenities)

	if len(c.PropertyTypes) > 0 {
		seen := make(map[models.PropertyType]bool, len(c.PropertyTypes))
		types := make([]models.PropertyType, 0, len(c.PropertyTypes))
		for _, t := range c.PropertyTypes {
			t = models.PropertyType(strings.TrimSpace(string(t)))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
		c.PropertyTypes = types
	}
	return c
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
