package clearall_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/clearall"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/fixtures"
)

func Test_Decide_Success_RegardlessOfPriorState(t *testing.T) {
	catalog := fixtures.Catalog(t)
	full := fixtures.Installed(t, catalog, fixtures.Frame(t, catalog, fixtures.Mark4FrameID), map[int]int{
		fixtures.BatteryPoint: fixtures.Battery8000ID,
	})

	testCases := []struct {
		name            string
		current         *core.Frame
		expectedFrameID int
	}{
		{"assembly with parts", full, fixtures.Mark4FrameID},
		{"empty assembly", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := clearall.Decide(tc.current, clearall.BuildCommand(time.Now()))

			// assert
			require.True(t, result.HasChange())
			assert.Nil(t, result.Assembly)

			event, ok := result.Event.(core.AssemblyCleared)
			require.True(t, ok, "expected an AssemblyCleared event, got %T", result.Event)
			assert.Equal(t, tc.expectedFrameID, event.FrameID)
		})
	}
}
