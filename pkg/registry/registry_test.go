package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *ActivityRegistry {
	return &ActivityRegistry{
		Version: "1.0.0",
		Activities: []Activity{
			{
				ID:          "toggle-favorite",
				DisplayName: "Toggle Favorite",
				Category:    "favorites",
				TaskType:    "toggle-favorite",
				Timeout:     "5s",
				InputSchema: map[string]interface{}{
					"type":     "object",
					"required": []interface{}{"userId", "propertyId"},
				},
			},
			{
				ID:          "list-favorites",
				DisplayName: "List Favorites",
				Category:    "favorites",
				TaskType:    "list-favorites",
			},
		},
	}
}

func TestFindAndSchema(t *testing.T) {
	reg := sample()

	a, ok := reg.Find("toggle-favorite")
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, a.TimeoutOr(time.Minute))
	assert.NotNil(t, reg.InputSchema("toggle-favorite"))

	assert.Nil(t, reg.InputSchema("list-favorites"))
	assert.Nil(t, reg.InputSchema("unknown"))

	var none *ActivityRegistry
	assert.Nil(t, none.InputSchema("toggle-favorite"))
}

func TestTimeoutOr_Fallback(t *testing.T) {
	assert.Equal(t, time.Minute, Activity{}.TimeoutOr(time.Minute))
	assert.Equal(t, time.Minute, Activity{Timeout: "soon"}.TimeoutOr(time.Minute))
	assert.Equal(t, 90*time.Second, Activity{Timeout: "1m30s"}.TimeoutOr(time.Minute))
}

func TestValidate(t *testing.T) {
	require.NoError(t, sample().Validate())

	dup := sample()
	dup.Activities[1].TaskType = "toggle-favorite"
	assert.ErrorContains(t, dup.Validate(), "duplicate task type")

	missing := sample()
	missing.Activities[0].Category = ""
	assert.ErrorContains(t, missing.Validate(), "Category")

	badTimeout := sample()
	badTimeout.Activities[0].Timeout = "five"
	assert.ErrorContains(t, badTimeout.Validate(), "invalid timeout")

	assert.Error(t, (&ActivityRegistry{}).Validate())
}

func TestAddUpdate(t *testing.T) {
	reg := sample()

	require.NoError(t, reg.Add(Activity{ID: "contact-landlord", DisplayName: "Contact Landlord", Category: "favorites", TaskType: "contact-landlord"}))
	assert.Error(t, reg.Add(Activity{ID: "contact-landlord"}))
	assert.NotEmpty(t, reg.LastUpdated)

	require.NoError(t, reg.Update("contact-landlord", "retries", "2"))
	a, _ := reg.Find("contact-landlord")
	assert.Equal(t, 2, a.Retries)

	assert.Error(t, reg.Update("contact-landlord", "retries", "two"))
	assert.Error(t, reg.Update("contact-landlord", "colour", "red"))
	assert.Error(t, reg.Update("nope", "status", "completed"))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "activity-registry.json")
	require.NoError(t, SaveRegistry(sample(), path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Activities, 2)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadRegistry(path)
	assert.Error(t, err)
}

func TestShippedRegistryIsValid(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	require.NoError(t, reg.Validate())
	assert.Len(t, reg.Activities, 12)
	for _, a := range reg.Activities {
		assert.NotNil(t, a.InputSchema, a.TaskType)
	}
}
