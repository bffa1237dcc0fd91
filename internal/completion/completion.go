// Package completion scores how filled-in a tenant or landlord profile is.
//
// Each profile variant is described by a table of weighted fields. A field adds
// its weight when its presence predicate holds; the sum is clamped to 100.
package completion

import (
	"sort"
	"strings"

	"rental-workers/internal/models"
)

// nextStepThreshold is the minimum weight for a missing field to produce a suggestion.
const nextStepThreshold = 10

// Field is one row of a weight table.
type Field[P any] struct {
	Name     string
	Label    string
	Weight   int
	Present  func(P) bool
	NextStep string
}

// Score folds the table over profile.
func Score[P any](profile P, table []Field[P]) models.ProfileCompletion {
	total := 0
	missing := []string{}
	var gaps []Field[P]

	for _, f := range table {
		if f.Present(profile) {
			total += f.Weight
			continue
		}
		missing = append(missing, f.Label)
		if f.Weight >= nextStepThreshold && f.NextStep != "" {
			gaps = append(gaps, f)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Weight > gaps[j].Weight })
	steps := make([]string, 0, len(gaps))
	for _, f := range gaps {
		steps = append(steps, f.NextStep)
	}

	return models.ProfileCompletion{
		Percentage:    clamp(total, 0, 100),
		MissingFields: missing,
		NextSteps:     steps,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func hasText(s string) bool { return strings.TrimSpace(s) != "" }

func positive64(v *int64) bool { return v != nil && *v > 0 }

func positive(v *int) bool { return v != nil && *v > 0 }

// ScoreTenant scores a tenant profile against TenantFields.
func ScoreTenant(p models.TenantProfile) models.ProfileCompletion {
	return Score(p, TenantFields)
}

// ScoreLandlord scores a landlord profile against the table for its landlord type.
// ok is false for an unknown landlord type.
func ScoreLandlord(p models.LandlordProfile) (models.ProfileCompletion, bool) {
	table, ok := LandlordFields[p.LandlordType]
	if !ok {
		return models.ProfileCompletion{}, false
	}
	return Score(p, table), true
}
