package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/fixtures"
)

func Test_BillOf_EmptyAssembly(t *testing.T) {
	bill := core.BillOf(nil)

	assert.Empty(t, bill.Sections)
	assert.Zero(t, bill.Total)
}

func Test_BillOf_FrameOnly_IsRemovable(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)

	// act
	bill := core.BillOf(fixtures.Frame(t, catalog, fixtures.Mark4FrameID))

	// assert
	require.Len(t, bill.Sections, 1)
	assert.Equal(t, "Frame", bill.Sections[0].DisplayName)
	assert.True(t, bill.Sections[0].Lines[0].Removable)
	assert.Equal(t, 12.0, bill.Total)
}

func Test_BillOf_GroupsByCategoryInCatalogOrder(t *testing.T) {
	// arrange
	catalog := fixtures.Catalog(t)
	frame := fixtures.Installed(t, catalog, fixtures.Frame(t, catalog, fixtures.Mark4FrameID), map[int]int{
		fixtures.RadioModulePoint: fixtures.BayckRadioID,
		fixtures.MotorPoint3:      fixtures.FlashHobbyMotorID,
		fixtures.MotorPoint1:      fixtures.FlashHobbyMotorID,
		fixtures.CameraPoint:      fixtures.CaddxCameraID,
	})

	// act
	bill := core.BillOf(frame)

	// assert
	names := make([]string, 0, len(bill.Sections))
	for _, section := range bill.Sections {
		names = append(names, section.DisplayName)
	}
	assert.Equal(t, []string{"Frame", "Motor", "Camera", "Radio Module"}, names)

	assert.False(t, bill.Sections[0].Lines[0].Removable, "the frame must not be removable while parts are installed")
	require.Len(t, bill.Sections[1].Lines, 2)
	assert.Equal(t, fixtures.MotorPoint1, bill.Sections[1].Lines[0].PointID)
	assert.Equal(t, fixtures.MotorPoint3, bill.Sections[1].Lines[1].PointID)
	assert.True(t, bill.Sections[1].Lines[0].Removable)

	assert.Equal(t, frame.TotalPrice(), bill.Total)
	assert.Equal(t, core.Progress{Installed: 4, Total: 9}, bill.Progress)
}
