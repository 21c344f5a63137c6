package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/shell/config"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/fixtures"
)

func Test_LoadCatalog_EmbeddedDefaultMatchesFixtures(t *testing.T) {
	// act
	catalog, err := config.LoadCatalog("")

	// assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Parts(), catalog.Parts())

	frames := catalog.Frames()
	expected := fixtures.Frames()
	require.Len(t, frames, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i], *frames[i])
	}
}

func Test_LoadCatalog_ReadsFile(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"frames": [{"id": 1, "name": "Tiny 3\"", "price": 9, "compatibility": [3], "image": "tiny.png",
			"connectionPoints": [{"id": 1, "type": "battery", "x": 10, "y": 20, "size": 5, "zIndex": 1}]}],
		"parts": [{"id": 2, "type": "battery", "name": "1s 450mAh", "price": 4, "compatibility": [3], "image": "lipo.png"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// act
	catalog, err := config.LoadCatalog(path)

	// assert
	require.NoError(t, err)
	frame, found := catalog.Frame(1)
	require.True(t, found)
	assert.Equal(t, core.CategoryFrame, frame.Category)
	require.Len(t, frame.ConnectionPoints, 1)
	assert.Equal(t, core.CategoryBattery, frame.ConnectionPoints[0].Accepts)
	assert.Equal(t, 20.0, frame.ConnectionPoints[0].Y)

	part, found := catalog.Part(2)
	require.True(t, found)
	assert.Equal(t, "1s 450mAh", part.Name)
}

func Test_LoadCatalog_MissingFile(t *testing.T) {
	_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_ReadCatalog_RejectsInvalidCatalogs(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected error
	}{
		{
			name:     "unknown part category",
			content:  `{"frames": [], "parts": [{"id": 2, "type": "propeller", "price": 1, "compatibility": [7]}]}`,
			expected: core.ErrUnknownCategory,
		},
		{
			name:     "unknown point category",
			content:  `{"frames": [{"id": 1, "compatibility": [7], "connectionPoints": [{"id": 1, "type": "gimbal"}]}], "parts": []}`,
			expected: core.ErrUnknownCategory,
		},
		{
			name:     "duplicate ids",
			content:  `{"frames": [{"id": 1, "compatibility": [7]}], "parts": [{"id": 1, "type": "camera", "compatibility": [7]}]}`,
			expected: core.ErrDuplicateItemID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := config.ReadCatalog(strings.NewReader(tc.content))

			// assert
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	_, err := config.ReadCatalog(strings.NewReader(`{"frames": 1}`))
	assert.Error(t, err)
}
