// internal/workers/search/execute-saved-search/handler_test.go
package executesavedsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/listings"
	"rental-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler *Handler
	mock    sqlmock.Sqlmock
	rdb     *redis.Client
}

func setup(t *testing.T, esHandler http.HandlerFunc) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	if esHandler == nil {
		esHandler = func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected elasticsearch call: %s", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		esHandler(w, r)
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return &fixture{
		handler: NewHandler(LoadConfig(), db, es, rdb, logger.NewTestLogger(t)),
		mock:    mock,
		rdb:     rdb,
	}
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

func (f *fixture) cacheSearch(t *testing.T, s models.SavedSearch) {
	t.Helper()
	require.NoError(t, database.SetJSON(context.Background(), f.rdb, cache.SavedSearchKey(s.ID), s, time.Minute))
}

func twoBedsInKilimani() models.SavedSearch {
	return models.SavedSearch{
		ID:       "ss-1",
		UserID:   "user-1",
		Name:     "Kilimani 2br",
		IsActive: true,
		Criteria: models.SearchCriteria{
			BudgetMax: i64(5000000),
			Bedrooms:  &models.Range{Min: intp(2)},
			Bathrooms: &models.Range{Min: intp(2)},
			Locations: []string{"Kilimani"},
		},
	}
}

func TestExecute_FiltersInputCandidates(t *testing.T) {
	f := setup(t, nil)
	f.cacheSearch(t, twoBedsInKilimani())

	candidates := []models.Property{
		{ID: "p-1", PriceAmount: 4500000, Bedrooms: 2, Bathrooms: models.CountFromString("2"), Location: "Kilimani"},
		{ID: "p-2", PriceAmount: 5000001, Bedrooms: 2, Bathrooms: models.NewCount(2), Location: "Kilimani"},
		{ID: "p-3", PriceAmount: 4000000, Bedrooms: 3, Bathrooms: models.CountFromString("two"), Location: "Kilimani"},
		{ID: "p-4", PriceAmount: 4000000, Bedrooms: 3, Bathrooms: models.NewCount(3), Location: "Kileleshwa"},
		{ID: "p-5", PriceAmount: 5000000, Bedrooms: 4, Bathrooms: models.NewCount(3), Location: "Kilimani"},
	}

	evaluated := testutil.ToFloat64(metrics.PropertiesEvaluated)
	matched := testutil.ToFloat64(metrics.PropertiesMatched)

	out, err := f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-1", UserID: "user-1", Candidates: candidates})
	require.NoError(t, err)

	ids := []string{}
	for _, p := range out.Matches {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p-1", "p-5"}, ids)
	assert.Equal(t, 2, out.MatchCount)
	assert.Equal(t, 5, out.Evaluated)
	assert.Equal(t, listings.SourceInput, out.Source)

	assert.Equal(t, evaluated+5, testutil.ToFloat64(metrics.PropertiesEvaluated))
	assert.Equal(t, matched+2, testutil.ToFloat64(metrics.PropertiesMatched))
}

func TestExecute_QueriesIndexWhenNoCandidates(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/_search", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("size"))

		hits := []map[string]interface{}{
			{"_id": "p-1", "_source": map[string]interface{}{"id": "p-1", "priceAmount": 4800000, "bedrooms": 2, "bathrooms": 2, "location": "Kilimani"}},
			{"_id": "p-2", "_source": map[string]interface{}{"id": "p-2", "priceAmount": 4800000, "bedrooms": 2, "bathrooms": 1, "location": "Kilimani"}},
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"hits": map[string]interface{}{"total": map[string]interface{}{"value": 2}, "hits": hits},
		})
	})
	f.cacheSearch(t, twoBedsInKilimani())

	out, err := f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-1", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, listings.SourceIndex, out.Source)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, "p-1", out.Matches[0].ID)
}

func TestExecute_InactiveSearchMatchesNothing(t *testing.T) {
	f := setup(t, nil)
	s := twoBedsInKilimani()
	s.IsActive = false
	f.cacheSearch(t, s)

	out, err := f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-1", UserID: "user-1"})
	require.NoError(t, err)
	assert.True(t, out.Inactive)
	assert.Empty(t, out.Matches)
}

func TestExecute_UnknownSearch(t *testing.T) {
	f := setup(t, nil)
	f.mock.ExpectQuery(`FROM saved_searches`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "criteria", "is_active", "notifications_enabled",
			"new_matches_count", "last_run_at", "created_at", "updated_at",
		}))

	_, err := f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-404", UserID: "user-1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}
