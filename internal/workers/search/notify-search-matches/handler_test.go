// internal/workers/search/notify-search-matches/handler_test.go
package notifysearchmatches

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmail struct{ mock.Mock }

func (m *mockEmail) SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	args := m.Called(ctx, to, subject, textBody, htmlBody)
	return args.String(0), args.Error(1)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) SendSMS(ctx context.Context, phone, message string) (string, error) {
	args := m.Called(ctx, phone, message)
	return args.String(0), args.Error(1)
}

var runAt = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	handler *Handler
	mock    sqlmock.Sqlmock
	email   *mockEmail
	sms     *mockSMS
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := LoadConfig()
	cfg.EmailEnabled = true
	cfg.SMSEnabled = true

	email, sms := &mockEmail{}, &mockSMS{}
	h := NewHandler(cfg, db, rdb, email, sms, logger.NewTestLogger(t))
	h.now = func() time.Time { return runAt }

	return &fixture{handler: h, mock: sqlMock, email: email, sms: sms}
}

func (f *fixture) expectSearch(active, notify bool, newMatches int) {
	f.mock.ExpectQuery(`FROM saved_searches`).
		WithArgs("ss-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "criteria", "is_active", "notifications_enabled",
			"new_matches_count", "last_run_at", "created_at", "updated_at",
		}).AddRow("ss-1", "user-1", "Kilimani <2br>", []byte(`{"locations":["Kilimani"]}`),
			active, notify, 1, nil, runAt, runAt))

	f.mock.ExpectQuery(`UPDATE saved_searches`).
		WithArgs("ss-1", newMatches, runAt).
		WillReturnRows(sqlmock.NewRows([]string{"new_matches_count"}).AddRow(1 + newMatches))
}

func matches() []models.Property {
	return []models.Property{
		{ID: "p-1", Title: "Garden flat", Location: "Kilimani"},
		{ID: "p-2", Title: "Corner unit"},
		{ID: "p-3", Title: "Penthouse"},
		{ID: "p-4", Title: "Studio"},
	}
}

func TestExecute_SendsOnBothChannels(t *testing.T) {
	f := setup(t)
	f.expectSearch(true, true, 4)

	sent := testutil.ToFloat64(metrics.NotificationsSent.WithLabelValues("email", "sent"))

	f.email.On("SendEmail", mock.Anything, "tenant@example.com",
		`4 new listings match your search "Kilimani <2br>"`,
		mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "Garden flat (Kilimani)") && !strings.Contains(text, "Studio")
		}),
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Kilimani &lt;2br&gt;")
		}),
	).Return("ses-1", nil)
	f.sms.On("SendSMS", mock.Anything, "+254700000001", mock.Anything).Return("sns-1", nil)

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID: "ss-1",
		UserID:        "user-1",
		MatchCount:    4,
		Matches:       matches(),
		Email:         "tenant@example.com",
		Phone:         "+254700000001",
	})
	require.NoError(t, err)

	assert.True(t, out.Notified)
	assert.Equal(t, 5, out.NewMatchesCount)
	assert.Equal(t, []Delivery{
		{Channel: "email", Status: StatusSent, MessageID: "ses-1"},
		{Channel: "sms", Status: StatusSent, MessageID: "sns-1"},
	}, out.Deliveries)
	assert.Equal(t, sent+1, testutil.ToFloat64(metrics.NotificationsSent.WithLabelValues("email", "sent")))

	f.email.AssertExpectations(t)
	f.sms.AssertExpectations(t)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_FailedChannelIsReportedNotReturned(t *testing.T) {
	f := setup(t)
	f.expectSearch(true, true, 1)

	f.email.On("SendEmail", mock.Anything, "tenant@example.com", `1 new listing matches your search "Kilimani <2br>"`, mock.Anything, mock.Anything).
		Return("", errors.New("throttled"))

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID: "ss-1",
		UserID:        "user-1",
		MatchCount:    1,
		Email:         "tenant@example.com",
	})
	require.NoError(t, err)

	assert.False(t, out.Notified)
	require.Len(t, out.Deliveries, 2)
	assert.Equal(t, StatusFailed, out.Deliveries[0].Status)
	assert.Equal(t, "throttled", out.Deliveries[0].Error)
	assert.Equal(t, StatusSkipped, out.Deliveries[1].Status)
	f.sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_NotificationsDisabledOnlyRecords(t *testing.T) {
	f := setup(t)
	f.expectSearch(true, false, 2)

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID: "ss-1",
		UserID:        "user-1",
		MatchCount:    2,
		Email:         "tenant@example.com",
	})
	require.NoError(t, err)

	assert.False(t, out.Notified)
	assert.Empty(t, out.Deliveries)
	assert.Equal(t, 3, out.NewMatchesCount)
	f.email.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestExecute_NoMatchesSendsNothing(t *testing.T) {
	f := setup(t)
	f.expectSearch(true, true, 0)

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID: "ss-1",
		UserID:        "user-1",
		Email:         "tenant@example.com",
	})
	require.NoError(t, err)
	assert.False(t, out.Notified)
	assert.Empty(t, out.Deliveries)
}

func TestExecute_InvalidRecipientSkipped(t *testing.T) {
	f := setup(t)
	f.expectSearch(true, true, 1)

	out, err := f.handler.Execute(context.Background(), &Input{
		SavedSearchID: "ss-1",
		UserID:        "user-1",
		MatchCount:    1,
		Email:         "not-an-address",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, out.Deliveries[0].Status)
	assert.Equal(t, "invalid recipient", out.Deliveries[0].Error)
}

func TestExecute_Validation(t *testing.T) {
	f := setup(t)

	_, err := f.handler.Execute(context.Background(), &Input{UserID: "user-1"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.handler.Execute(context.Background(), &Input{SavedSearchID: "ss-1", UserID: "user-1", MatchCount: -1})
	assert.True(t, apperrors.IsValidation(err))
}
