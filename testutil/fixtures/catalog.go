package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// Catalog item ids.
const (
	Mark4FrameID   core.ItemIDInt = 1
	Mark4V2FrameID core.ItemIDInt = 2

	FlashHobbyMotorID   core.ItemIDInt = 3
	EmaxMotorID         core.ItemIDInt = 4
	ReadyToSkyMotorID   core.ItemIDInt = 5
	BrotherHobbyMotorID core.ItemIDInt = 6

	Battery8000ID  core.ItemIDInt = 7
	Battery12000ID core.ItemIDInt = 8

	SpeedyBeeControllerID core.ItemIDInt = 9
	MambaControllerID     core.ItemIDInt = 10

	CaddxCameraID  core.ItemIDInt = 11
	FoxeerCameraID core.ItemIDInt = 12

	RushAntennaID    core.ItemIDInt = 13
	SkyZoneAntennaID core.ItemIDInt = 14

	BayckRadioID      core.ItemIDInt = 15
	HappyModelRadioID core.ItemIDInt = 16
)

// Connection point ids, identical on both frames.
const (
	MotorPoint1           core.PointIDInt = 1
	MotorPoint2           core.PointIDInt = 2
	MotorPoint3           core.PointIDInt = 3
	MotorPoint4           core.PointIDInt = 4
	BatteryPoint          core.PointIDInt = 5
	FlightControllerPoint core.PointIDInt = 6
	CameraPoint           core.PointIDInt = 7
	VideoAntennaPoint     core.PointIDInt = 8
	RadioModulePoint      core.PointIDInt = 9
)

// NaturalImageSize is the natural pixel size of both frame images.
var NaturalImageSize = core.Size{Width: 2048, Height: 1850}

// Frames returns fresh frame templates.
func Frames() []core.Frame {
	return []core.Frame{
		{
			CatalogItem:      item(Mark4FrameID, core.CategoryFrame, "Mark 4 7\"", 12, 7),
			ConnectionPoints: quadPoints(),
		},
		{
			CatalogItem:      item(Mark4V2FrameID, core.CategoryFrame, "Mark 4 v2 10\"", 20, 10),
			ConnectionPoints: quadPoints(),
		},
	}
}

// Parts returns fresh part templates.
func Parts() []core.CatalogItem {
	return []core.CatalogItem{
		item(FlashHobbyMotorID, core.CategoryMotor, "FlashHobby 2807 1300kv + Props HQProp 7x4x3", 55, 7),
		item(EmaxMotorID, core.CategoryMotor, "EMAX 2807 1300kv + Props HQProp 7x4x3", 45, 7),
		item(ReadyToSkyMotorID, core.CategoryMotor, "ReadyToSky 3115 900kv + Props HQ MacroQuad Prop 10x5x3", 70, 10),
		item(BrotherHobbyMotorID, core.CategoryMotor, "BrotherHobby Tornado 3115 900kv + Props HQ MacroQuad Prop 10x5x3", 110, 10),

		item(Battery8000ID, core.CategoryBattery, "6s2p 8000mAh", 60, 7, 10),
		item(Battery12000ID, core.CategoryBattery, "6s3p 12000mAh", 90, 7, 10),

		item(SpeedyBeeControllerID, core.CategoryFlightController, "SpeedyBee V4 55A", 50, 7, 10),
		item(MambaControllerID, core.CategoryFlightController, "Mamba F405 MK2", 70, 7, 10),

		item(CaddxCameraID, core.CategoryCamera, "Caddx Ratel Pro", 30, 7, 10),
		item(FoxeerCameraID, core.CategoryCamera, "Foxeer Night Cat 3", 40, 7, 10),

		item(RushAntennaID, core.CategoryVideoAntenna, "Rush Cherry 2", 10, 7, 10),
		item(SkyZoneAntennaID, core.CategoryVideoAntenna, "SkyZone MushRoom", 8, 7, 10),

		item(BayckRadioID, core.CategoryRadioModule, "Bayck ELRS 915mhz", 10, 7, 10),
		item(HappyModelRadioID, core.CategoryRadioModule, "HappyModel RX 915mhz", 15, 7, 10),
	}
}

// Catalog builds the fixture catalog and fails the test if it is invalid.
func Catalog(t testing.TB) *core.Catalog {
	t.Helper()

	catalog, err := core.NewCatalog(Frames(), Parts())
	require.NoError(t, err, "fixture catalog must be valid")

	return catalog
}

// Part returns the part with the given id and fails the test if it does not exist.
func Part(t testing.TB, catalog *core.Catalog, id core.ItemIDInt) core.CatalogItem {
	t.Helper()

	part, found := catalog.Part(id)
	require.True(t, found, "fixture part %d must exist", id)

	return part
}

// Frame returns a fresh copy of the frame with the given id and fails the test if it does not exist.
func Frame(t testing.TB, catalog *core.Catalog, id core.ItemIDInt) *core.Frame {
	t.Helper()

	frame, found := catalog.Frame(id)
	require.True(t, found, "fixture frame %d must exist", id)

	return frame
}

// Installed returns a copy of frame with the given parts installed at the given points.
func Installed(t testing.TB, catalog *core.Catalog, frame *core.Frame, placements map[core.PointIDInt]core.ItemIDInt) *core.Frame {
	t.Helper()

	next := frame.Copy()
	for pointID, partID := range placements {
		point, found := next.Point(pointID)
		require.True(t, found, "fixture point %d must exist", pointID)
		require.NoError(t, point.Install(Part(t, catalog, partID)))
	}

	return next
}

func item(id core.ItemIDInt, category core.Category, name string, price core.PriceFloat64, sizes ...core.FrameSizeInt) core.CatalogItem {
	return core.CatalogItem{
		ID:              id,
		Category:        category,
		Name:            name,
		Price:           price,
		CompatibleSizes: sizes,
		Image:           "assets/images/" + category.String() + ".png",
	}
}

func quadPoints() []core.ConnectionPoint {
	return []core.ConnectionPoint{
		{ID: MotorPoint1, Accepts: core.CategoryMotor, X: 219, Y: 329, Size: 420, ZIndex: 2},
		{ID: MotorPoint2, Accepts: core.CategoryMotor, X: 1824, Y: 329, Size: 420, ZIndex: 2},
		{ID: MotorPoint3, Accepts: core.CategoryMotor, X: 219, Y: 1520, Size: 420, ZIndex: 2},
		{ID: MotorPoint4, Accepts: core.CategoryMotor, X: 1824, Y: 1520, Size: 420, ZIndex: 2},
		{ID: BatteryPoint, Accepts: core.CategoryBattery, X: 1021, Y: 700, Size: 500, ZIndex: 3},
		{ID: FlightControllerPoint, Accepts: core.CategoryFlightController, X: 1021, Y: 925, Size: 300, ZIndex: 1},
		{ID: CameraPoint, Accepts: core.CategoryCamera, X: 1021, Y: 420, Size: 200, ZIndex: 1},
		{ID: VideoAntennaPoint, Accepts: core.CategoryVideoAntenna, X: 1021, Y: 1420, Size: 150, ZIndex: 1},
		{ID: RadioModulePoint, Accepts: core.CategoryRadioModule, X: 1180, Y: 1250, Size: 120, ZIndex: 1},
	}
}
