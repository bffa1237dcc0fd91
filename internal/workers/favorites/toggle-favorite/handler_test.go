// internal/workers/favorites/toggle-favorite/handler_test.go
package togglefavorite

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler *Handler
	mock    sqlmock.Sqlmock
	mr      *miniredis.Miniredis
	rdb     *redis.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	h := NewHandler(LoadConfig(), db, rdb, logger.NewTestLogger(t))
	h.newID = func() string { return "fav-new" }
	return &fixture{handler: h, mock: mock, mr: mr, rdb: rdb}
}

func TestExecute_AddsAndEvictsDashboard(t *testing.T) {
	f := setup(t)
	require.NoError(t, database.SetJSON(context.Background(), f.rdb, cache.DashboardKey("user-1"), map[string]int{"favoritesCount": 0}, time.Minute))

	added := testutil.ToFloat64(metrics.FavoriteToggles.WithLabelValues("added"))

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`DELETE FROM favorites`).WithArgs("user-1", "p-1").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	f.mock.ExpectQuery(`INSERT INTO favorites`).WithArgs("fav-new", "user-1", "p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("fav-new"))
	f.mock.ExpectCommit()

	out, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1", PropertyID: " p-1 "})
	require.NoError(t, err)

	assert.Equal(t, &Output{UserID: "user-1", PropertyID: "p-1", IsFavorited: true, FavoriteID: "fav-new"}, out)
	assert.False(t, f.mr.Exists(cache.DashboardKey("user-1")))
	assert.Equal(t, added+1, testutil.ToFloat64(metrics.FavoriteToggles.WithLabelValues("added")))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_RemovesExisting(t *testing.T) {
	f := setup(t)

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`DELETE FROM favorites`).WithArgs("user-1", "p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("fav-old"))
	f.mock.ExpectCommit()

	out, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1", PropertyID: "p-1"})
	require.NoError(t, err)
	assert.False(t, out.IsFavorited)
	assert.Equal(t, "fav-old", out.FavoriteID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_RollsBackOnFailure(t *testing.T) {
	f := setup(t)

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`DELETE FROM favorites`).WillReturnError(errors.New("connection reset"))
	f.mock.ExpectRollback()

	_, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1", PropertyID: "p-1"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeQueryExecutionFailed))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_RequiresIDs(t *testing.T) {
	f := setup(t)

	_, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.handler.Execute(context.Background(), &Input{PropertyID: "p-1"})
	assert.True(t, apperrors.IsValidation(err))
}
