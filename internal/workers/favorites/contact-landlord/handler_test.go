// internal/workers/favorites/contact-landlord/handler_test.go
package contactlandlord

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-workers/internal/cache"
	"rental-workers/internal/common/database"
	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/elastic/go-elasticsearch/v8"
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
		mr:      mr,
		rdb:     rdb,
	}
}

func TestBuildLink(t *testing.T) {
	link, err := buildLink("https://wa.me/", "+254 (700) 000-001", `Hi "Garden flat" & more?`)
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/254700000001?text=Hi%20%22Garden%20flat%22%20%26%20more%3F", link)

	_, err = buildLink("https://wa.me", "n/a", "hi")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRenderMessage_FallsBackToLocation(t *testing.T) {
	msg := renderMessage("{title} at {address}", &models.Property{Title: "Studio", Location: "Westlands"})
	assert.Equal(t, "Studio at Westlands", msg)
}

func TestExecute_InlinePropertyMarksFavorite(t *testing.T) {
	f := setup(t, nil)
	require.NoError(t, database.SetJSON(context.Background(), f.rdb, cache.DashboardKey("user-1"), map[string]int{"contactedCount": 0}, time.Minute))

	f.mock.ExpectExec(`UPDATE favorites SET is_contacted = true`).
		WithArgs("user-1", "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := f.handler.Execute(context.Background(), &Input{
		UserID:     "user-1",
		PropertyID: "p-1",
		Property:   &models.Property{Title: "Garden flat", Address: "12 Argwings Kodhek Rd", LandlordPhone: "+254700000001"},
	})
	require.NoError(t, err)

	assert.True(t, out.MarkedContacted)
	assert.Equal(t, `Hi, I'm interested in your property "Garden flat" at 12 Argwings Kodhek Rd. Is it still available?`, out.Message)
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/254700000001?text=Hi%2C%20I%27m")
	assert.False(t, f.mr.Exists(cache.DashboardKey("user-1")))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_LoadsPropertyFromIndex(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/_doc/p-2", r.URL.Path)
		_, _ = io.WriteString(w, `{"_id":"p-2","found":true,"_source":{"title":"Penthouse","location":"Kilimani","landlordPhone":"0711 222 333"}}`)
	})

	f.mock.ExpectExec(`UPDATE favorites SET is_contacted = true`).
		WithArgs("user-1", "p-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	out, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1", PropertyID: "p-2"})
	require.NoError(t, err)
	assert.False(t, out.MarkedContacted)
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/0711222333?text=")
	assert.Contains(t, out.Message, "at Kilimani.")
}

func TestExecute_NoPhone(t *testing.T) {
	f := setup(t, nil)

	_, err := f.handler.Execute(context.Background(), &Input{
		UserID:   "user-1",
		Property: &models.Property{ID: "p-3", Title: "Bedsitter"},
	})
	assert.True(t, apperrors.IsValidation(err))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_RequiresProperty(t *testing.T) {
	f := setup(t, nil)
	_, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1"})
	assert.True(t, apperrors.IsValidation(err))
}
