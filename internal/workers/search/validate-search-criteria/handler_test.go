// internal/workers/search/validate-search-criteria/handler_test.go
package validatesearchcriteria

import (
	"context"
	"testing"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), &testLogger{t: t})
}

// ==========================
// Tests
// ==========================

func TestExecute_ValidCriteriaIsNormalized(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{Criteria: models.SearchCriteria{
		BudgetMin:     i64(2000000),
		BudgetMax:     i64(4500000),
		Bedrooms:      &models.Range{Min: intp(2)},
		Locations:     []string{"Kilimani ", "Kilimani", "  "},
		PropertyTypes: []models.PropertyType{models.PropertyTypeApartment},
	}})
	require.NoError(t, err)

	assert.True(t, out.IsValid)
	assert.Equal(t, []string{"Kilimani"}, out.Criteria.Locations)
	assert.Equal(t, int64(4500000), *out.Criteria.BudgetMax)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		criteria  models.SearchCriteria
		wantField string
	}{
		{
			name:      "budget min above max",
			criteria:  models.SearchCriteria{BudgetMin: i64(50000), BudgetMax: i64(40000)},
			wantField: "budgetMin",
		},
		{
			name:      "inverted bedroom range",
			criteria:  models.SearchCriteria{Bedrooms: &models.Range{Min: intp(3), Max: intp(1)}},
			wantField: "bedrooms",
		},
		{
			name:      "unknown property type",
			criteria:  models.SearchCriteria{PropertyTypes: []models.PropertyType{"houseboat"}},
			wantField: "propertyTypes",
		},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{Criteria: tt.criteria})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, apperrors.IsValidation(err))

			stdErr, ok := apperrors.AsStandard(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, stdErr.Metadata["field"])
		})
	}
}

func TestExecute_EmptyCriteriaIsValid(t *testing.T) {
	out, err := newTestHandler(t).Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.True(t, out.IsValid)
}
