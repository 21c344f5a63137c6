package selectframe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/selectframe"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/fixtures"
)

func Test_Decide_Success_WhenNothingIsSelected(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)
	command := selectframe.BuildCommand(fixtures.Mark4FrameID, time.Now())

	// act
	result := selectframe.Decide(nil, catalog, command)

	// assert
	require.True(t, result.HasChange())
	require.NoError(t, result.HasError())
	assert.Equal(t, fixtures.Mark4FrameID, result.Assembly.ID)
	assert.Equal(t, 0, result.Assembly.Progress().Installed)

	event, ok := result.Event.(core.FrameSelected)
	require.True(t, ok, "expected a FrameSelected event, got %T", result.Event)
	assert.Equal(t, core.FrameSelectedEventType, event.IsEventType())
	assert.Equal(t, fixtures.Mark4FrameID, event.FrameID)
	assert.Equal(t, "Mark 4 7\"", event.FrameName)
	assert.False(t, event.IsErrorEvent())
}

func Test_Decide_Success_ReplacesAssemblyWithFreshFrame(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)
	current := fixtures.Installed(t, catalog, fixtures.Frame(t, catalog, fixtures.Mark4FrameID), map[int]int{
		fixtures.MotorPoint1: fixtures.FlashHobbyMotorID,
	})
	command := selectframe.BuildCommand(fixtures.Mark4FrameID, time.Now())

	// act
	result := selectframe.Decide(current, catalog, command)

	// assert
	require.True(t, result.HasChange())
	assert.Equal(t, 0, result.Assembly.Progress().Installed)
	assert.True(t, current.ConnectionPoints[0].IsOccupied(), "the previous snapshot must not change")
}

func Test_Decide_Success_SwitchingFrames(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)
	command := selectframe.BuildCommand(fixtures.Mark4V2FrameID, time.Now())

	// act
	result := selectframe.Decide(fixtures.Frame(t, catalog, fixtures.Mark4FrameID), catalog, command)

	// assert
	require.True(t, result.HasChange())
	assert.Equal(t, fixtures.Mark4V2FrameID, result.Assembly.ID)
}

func Test_Decide_Idempotent_WhenSameUntouchedFrameIsSelected(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)
	command := selectframe.BuildCommand(fixtures.Mark4FrameID, time.Now())

	// act
	result := selectframe.Decide(fixtures.Frame(t, catalog, fixtures.Mark4FrameID), catalog, command)

	// assert
	assert.False(t, result.HasChange())
	assert.False(t, result.HasEventToRecord())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenFrameDoesNotExist(t *testing.T) {
	catalog := fixtures.Catalog(t)

	for _, id := range []int{999, fixtures.FlashHobbyMotorID} {
		// arrange
		command := selectframe.BuildCommand(id, time.Now())

		// act
		result := selectframe.Decide(nil, catalog, command)

		// assert
		assert.False(t, result.HasChange())
		assert.ErrorIs(t, result.HasError(), core.ErrFrameNotFound)
		require.True(t, result.HasEventToRecord())

		event, ok := result.Event.(core.SelectingFrameFailed)
		require.True(t, ok, "expected a SelectingFrameFailed event, got %T", result.Event)
		assert.Equal(t, "frame does not exist in the catalog", event.Reason)
		assert.True(t, event.IsErrorEvent())
	}
}
