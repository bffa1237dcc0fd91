package favorites

import (
	"context"
	"errors"
	"testing"

	apperrors "rental-workers/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) RunProcess(ctx context.Context, processID string, variables interface{}, fetch ...string) (string, error) {
	args := m.Called(ctx, processID, variables, fetch)
	return args.String(0), args.Error(1)
}

func TestProcessRemote_ToggleFavorite(t *testing.T) {
	runner := new(mockRunner)
	runner.On("RunProcess", mock.Anything, ToggleProcessID,
		userVars{UserID: "user-1", PropertyID: "p-1"}, []string{"isFavorited"}).
		Return(`{"isFavorited":true}`, nil)

	got, err := NewProcessRemote(runner).ToggleFavorite(context.Background(), "user-1", "p-1")
	require.NoError(t, err)
	assert.True(t, got)
	runner.AssertExpectations(t)
}

func TestProcessRemote_ListAndDashboard(t *testing.T) {
	runner := new(mockRunner)
	runner.On("RunProcess", mock.Anything, ListProcessID, userVars{UserID: "user-1"}, []string{"favorites"}).
		Return(`{"favorites":[{"id":"f-1","userId":"user-1","propertyId":"p-1"}]}`, nil)
	runner.On("RunProcess", mock.Anything, DashboardProcessID, userVars{UserID: "user-1"}, []string{"summary"}).
		Return(`{"summary":{"userId":"user-1","favoritesCount":1,"contactedCount":0}}`, nil)

	remote := NewProcessRemote(runner)

	items, err := remote.ListFavorites(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p-1", items[0].PropertyID)

	summary, err := remote.DashboardSummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FavoritesCount)
}

func TestProcessRemote_Errors(t *testing.T) {
	runner := new(mockRunner)
	runner.On("RunProcess", mock.Anything, ToggleProcessID, mock.Anything, mock.Anything).
		Return("", apperrors.NewRemoteFailureError("zeebe run favorite-toggle", errors.New("unavailable"))).Once()
	runner.On("RunProcess", mock.Anything, ToggleProcessID, mock.Anything, mock.Anything).
		Return("{not json", nil).Once()

	remote := NewProcessRemote(runner)

	_, err := remote.ToggleFavorite(context.Background(), "user-1", "p-1")
	assert.True(t, apperrors.IsRemoteFailure(err))

	_, err = remote.ToggleFavorite(context.Background(), "user-1", "p-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode favorite-toggle result")
}
