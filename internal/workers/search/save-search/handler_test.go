// internal/workers/search/save-search/handler_test.go
package savesearch

import (
	"context"
	"strings"
	"testing"
	"time"

	"rental-workers/internal/cache"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler *Handler
	mock    sqlmock.Sqlmock
	mr      *miniredis.Miniredis
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &fixture{
		handler: NewHandler(LoadConfig(), db, rdb, logger.NewTestLogger(t)),
		mock:    mock,
		mr:      mr,
	}
}

func i64(v int64) *int64 { return &v }

func TestExecute_CreatesSearch(t *testing.T) {
	f := setup(t)
	now := time.Now().UTC()

	f.mock.ExpectQuery(`INSERT INTO saved_searches`).
		WithArgs(sqlmock.AnyArg(), "user-1", "Two beds near town", sqlmock.AnyArg(), true, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	out, err := f.handler.Execute(context.Background(), &Input{
		UserID:   "user-1",
		Name:     "  Two beds near town ",
		Criteria: models.SearchCriteria{BudgetMax: i64(6000000), Locations: []string{"CBD", "CBD"}},
	})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.NotEmpty(t, out.SavedSearch.ID)
	assert.Equal(t, "Two beds near town", out.SavedSearch.Name)
	assert.Equal(t, []string{"CBD"}, out.SavedSearch.Criteria.Locations)
	assert.True(t, out.SavedSearch.NotificationsEnabled)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_UpdateEvictsCache(t *testing.T) {
	f := setup(t)
	now := time.Now().UTC()
	off := false

	require.NoError(t, f.mr.Set(cache.SavedSearchKey("ss-1"), `{"id":"ss-1"}`))
	require.NoError(t, f.mr.Set(cache.DashboardKey("user-1"), `{}`))

	f.mock.ExpectQuery(`INSERT INTO saved_searches`).
		WithArgs("ss-1", "user-1", "Renamed", sqlmock.AnyArg(), true, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID:        "ss-1",
		UserID:               "user-1",
		Name:                 "Renamed",
		NotificationsEnabled: &off,
	})
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.False(t, f.mr.Exists(cache.SavedSearchKey("ss-1")))
	assert.False(t, f.mr.Exists(cache.DashboardKey("user-1")))
}

func TestExecute_ValidationHappensBeforeWrite(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantField string
	}{
		{"missing user", Input{Name: "x"}, "userId"},
		{"blank name", Input{UserID: "user-1", Name: "   "}, "name"},
		{"name too long", Input{UserID: "user-1", Name: strings.Repeat("a", 101)}, "name"},
		{
			"inverted budget",
			Input{UserID: "user-1", Name: "x", Criteria: models.SearchCriteria{BudgetMin: i64(9), BudgetMax: i64(1)}},
			"budgetMin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			_, err := f.handler.Execute(context.Background(), &tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			stdErr, _ := apperrors.AsStandard(err)
			assert.Equal(t, tt.wantField, stdErr.Metadata["field"])
			assert.NoError(t, f.mock.ExpectationsWereMet())
		})
	}
}

func TestExecute_ForeignSearchIsNotFound(t *testing.T) {
	f := setup(t)
	f.mock.ExpectQuery(`INSERT INTO saved_searches`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-9", UserID: "user-2", Name: "mine now"})
	assert.True(t, apperrors.IsNotFound(err))
}
