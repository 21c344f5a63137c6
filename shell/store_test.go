package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/importassembly"
	"github.com/AntonStoeckl/drone-assembly-go/reactive"
	"github.com/AntonStoeckl/drone-assembly-go/shell"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/fixtures"
	"github.com/AntonStoeckl/drone-assembly-go/testutil/observability/testdoubles"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, options ...shell.Option) *shell.Store {
	t.Helper()

	options = append([]shell.Option{shell.WithClock(func() time.Time { return fixedNow })}, options...)
	store, err := shell.NewStore(fixtures.Catalog(t), options...)
	require.NoError(t, err)

	return store
}

func installedAt(t *testing.T, store *shell.Store, pointID core.PointIDInt) core.ItemIDInt {
	t.Helper()

	assembly := store.Assembly().Get()
	require.NotNil(t, assembly)
	point, found := assembly.Point(pointID)
	require.True(t, found)
	if point.Installed == nil {
		return 0
	}

	return point.Installed.ID
}

func Test_NewStore_StartsEmpty(t *testing.T) {
	// act
	store := newStore(t)

	// assert
	assert.Nil(t, store.Assembly().Get())
	assert.Zero(t, store.Price().Get())
	assert.Equal(t, core.Progress{}, store.Progress().Get())
	assert.False(t, store.CanUndo().Get())
	assert.False(t, store.CanRedo().Get())
	assert.False(t, store.MaxPrice().Get().IsSet())
	assert.Nil(t, store.DragItem().Get())
	assert.Empty(t, store.Journal())
	assert.Empty(t, store.ExportAssembly())
}

func Test_NewStore_Fails_WithInvalidOptions(t *testing.T) {
	catalog := fixtures.Catalog(t)

	_, err := shell.NewStore(nil)
	assert.ErrorIs(t, err, shell.ErrNilCatalog)

	_, err = shell.NewStore(catalog, shell.WithClock(nil))
	assert.ErrorIs(t, err, shell.ErrNilClock)

	_, err = shell.NewStore(catalog, shell.WithMaxPrice(core.PriceLimitOf(-1)))
	assert.ErrorIs(t, err, shell.ErrNegativeMaxPrice)
}

func Test_Store_SelectFrame_PublishesFreshFrameAndDerivedValues(t *testing.T) {
	// arrange
	store := newStore(t)
	var published []*core.Frame
	store.Assembly().Subscribe(func(frame *core.Frame) { published = append(published, frame) })

	// act
	err := store.SelectFrame(fixtures.Mark4FrameID)

	// assert
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, fixtures.Mark4FrameID, published[0].ID)
	assert.Equal(t, 12.0, store.Price().Get())
	assert.Equal(t, core.Progress{Installed: 0, Total: 9}, store.Progress().Get())
	assert.True(t, store.CanUndo().Get())
}

func Test_Store_SelectFrame_UnknownId_IsReportedAndPublishesNothing(t *testing.T) {
	// arrange
	store := newStore(t)
	published := 0
	store.Assembly().Subscribe(func(*core.Frame) { published++ })

	// act
	err := store.SelectFrame(999)

	// assert
	assert.ErrorIs(t, err, core.ErrFrameNotFound)
	assert.Zero(t, published)
	assert.False(t, store.CanUndo().Get())

	journal := store.Journal()
	require.Len(t, journal, 1)
	assert.Equal(t, core.SelectingFrameFailedEventType, journal[0].DomainEvent.IsEventType())
}

func Test_Store_InstallPart_UpdatesPriceAndProgress(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	var prices []core.PriceFloat64
	store.Price().Subscribe(func(price core.PriceFloat64) { prices = append(prices, price) })

	// act
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint2))
	require.NoError(t, store.InstallPart(fixtures.SpeedyBeeControllerID, fixtures.FlightControllerPoint))

	// assert
	assert.Equal(t, []core.PriceFloat64{12 + 55, 12 + 55 + 50}, prices)
	assert.Equal(t, core.Progress{Installed: 2, Total: 9}, store.Progress().Get())
	assert.Equal(t, fixtures.FlashHobbyMotorID, installedAt(t, store, fixtures.MotorPoint2))
}

func Test_Store_InstallPart_RejectedTransitionChangesNothing(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	revision := store.Revision()
	before := store.Assembly().Get()

	testCases := []struct {
		name     string
		partID   int
		pointID  int
		expected error
	}{
		{"category mismatch", fixtures.CaddxCameraID, fixtures.BatteryPoint, core.ErrCategoryMismatch},
		{"frame size mismatch", fixtures.ReadyToSkyMotorID, fixtures.MotorPoint2, core.ErrIncompatibleFrameSize},
		{"unknown part", 999, fixtures.MotorPoint2, core.ErrItemNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := store.InstallPart(tc.partID, tc.pointID)

			// assert
			assert.ErrorIs(t, err, tc.expected)
			assert.Same(t, before, store.Assembly().Get())
			assert.Equal(t, revision, store.Revision())
		})
	}

	t.Run("motor of a different model", func(t *testing.T) {
		// act
		err := store.InstallPart(fixtures.EmaxMotorID, fixtures.MotorPoint2)

		// assert
		var violation *core.ConstraintViolation
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, core.ViolationMotorMismatch, violation.Code)
		assert.Equal(t, revision, store.Revision())
	})
}

func Test_Store_UninstallPart(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FoxeerCameraID, fixtures.CameraPoint))
	priceWithCamera := store.Price().Get()

	// act
	require.NoError(t, store.UninstallPart(fixtures.FoxeerCameraID))

	// assert
	assert.Equal(t, priceWithCamera-40, store.Price().Get())
	assert.Zero(t, installedAt(t, store, fixtures.CameraPoint))
}

func Test_Store_UninstallPart_NotInstalled_IsNoop(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	revision := store.Revision()
	journalLength := len(store.Journal())

	// act
	err := store.UninstallPart(fixtures.FoxeerCameraID)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, revision, store.Revision())
	assert.Len(t, store.Journal(), journalLength)
}

func Test_Store_UninstallPart_FrameId_ClearsAssembly(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.Battery8000ID, fixtures.BatteryPoint))

	// act
	require.NoError(t, store.UninstallPart(fixtures.Mark4FrameID))

	// assert
	assert.Nil(t, store.Assembly().Get())
	assert.Zero(t, store.Price().Get())
	assert.Equal(t, core.Progress{}, store.Progress().Get())
}

func Test_Store_ClearAll_PublishesEmptyRegardlessOfPriorState(t *testing.T) {
	// arrange
	store := newStore(t)
	published := 0
	store.Assembly().Subscribe(func(frame *core.Frame) {
		assert.Nil(t, frame)
		published++
	})

	// act
	store.ClearAll()

	// assert
	assert.Equal(t, 1, published)
	assert.Nil(t, store.Assembly().Get())
}

func Test_Store_UndoRedo_RestoresWithoutRecordingAgain(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint2))
	latest := store.Revision()

	// act + assert
	require.True(t, store.Undo())
	assert.Zero(t, installedAt(t, store, fixtures.MotorPoint2))
	assert.Equal(t, fixtures.FlashHobbyMotorID, installedAt(t, store, fixtures.MotorPoint1))
	assert.True(t, store.CanRedo().Get())

	require.True(t, store.Undo())
	require.True(t, store.Undo())
	assert.Nil(t, store.Assembly().Get())
	assert.False(t, store.CanUndo().Get())
	assert.False(t, store.Undo(), "nothing left to undo")

	require.True(t, store.Redo())
	require.True(t, store.Redo())
	require.True(t, store.Redo())
	assert.False(t, store.Redo(), "nothing left to redo")
	assert.Equal(t, latest, store.Revision(), "undo and redo must not record new entries")
	assert.Equal(t, fixtures.FlashHobbyMotorID, installedAt(t, store, fixtures.MotorPoint2))
	assert.False(t, store.CanRedo().Get())
}

func Test_Store_ChangeAfterUndo_DiscardsRedoPath(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	require.True(t, store.Undo())

	// act
	require.NoError(t, store.InstallPart(fixtures.Battery8000ID, fixtures.BatteryPoint))

	// assert
	assert.False(t, store.CanRedo().Get())
	assert.False(t, store.Redo())
	assert.Zero(t, installedAt(t, store, fixtures.MotorPoint1))
}

func Test_Store_Undo_SnapshotsDoNotAlias(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.CaddxCameraID, fixtures.CameraPoint))

	// act
	published := store.Assembly().Get()
	published.ConnectionPoints[0].Installed = &core.CatalogItem{ID: 999, Category: core.CategoryMotor}
	published.Name = "tampered"

	// assert
	require.True(t, store.Undo())
	require.True(t, store.Redo())
	restored := store.Assembly().Get()
	assert.Equal(t, "Mark 4 7\"", restored.Name)
	assert.False(t, restored.ConnectionPoints[0].IsOccupied())
	assert.Equal(t, fixtures.CaddxCameraID, installedAt(t, store, fixtures.CameraPoint))
}

func Test_Store_ExportImport_RoundTrip(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint2))
	require.NoError(t, store.InstallPart(fixtures.SpeedyBeeControllerID, fixtures.FlightControllerPoint))
	exported := store.ExportAssembly()
	store.ClearAll()

	// act
	err := store.ImportRows(exported)

	// assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Mark4FrameID, store.Assembly().Get().ID)
	assert.Equal(t, fixtures.FlashHobbyMotorID, installedAt(t, store, fixtures.MotorPoint2))
	assert.Equal(t, fixtures.SpeedyBeeControllerID, installedAt(t, store, fixtures.FlightControllerPoint))
	assert.Equal(t, core.Progress{Installed: 2, Total: 9}, store.Progress().Get())
	assert.Equal(t, exported, store.ExportAssembly())
}

func Test_Store_ImportAssembly_Malformed_IsNoop(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4V2FrameID))
	before := store.Assembly().Get()

	// act
	err := store.ImportAssembly([]importassembly.Entry{
		{ItemID: fixtures.Mark4FrameID},
		{ItemID: fixtures.FlashHobbyMotorID, PositionID: fixtures.MotorPoint1},
		{ItemID: 999, PositionID: fixtures.BatteryPoint},
	})

	// assert
	assert.ErrorIs(t, err, core.ErrMalformedImport)
	assert.Same(t, before, store.Assembly().Get())
}

func Test_Store_MaxPrice_IsAdvisory(t *testing.T) {
	// arrange
	store := newStore(t, shell.WithMaxPrice(core.PriceLimitOf(100)))
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	var overBudget []bool
	store.OverBudget().Subscribe(func(v bool) { overBudget = append(overBudget, v) })

	// act
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint2))

	// assert
	assert.Equal(t, []bool{false, true}, overBudget, "installing above the max price is not blocked")
	assert.Equal(t, 12.0+55+55, store.Price().Get())

	require.NoError(t, store.SetMaxPrice(core.NoPriceLimit()))
	assert.False(t, store.OverBudget().Get())
	assert.ErrorIs(t, store.SetMaxPrice(core.PriceLimitOf(-5)), shell.ErrNegativeMaxPrice)
}

func Test_Store_FrameOptions(t *testing.T) {
	// arrange
	store := newStore(t, shell.WithMaxPrice(core.PriceLimitOf(15)))
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))

	// act
	options := store.FrameOptions()

	// assert
	require.Len(t, options, 2)
	assert.True(t, options[0].Selected)
	assert.False(t, options[0].OverBudget)
	assert.False(t, options[1].Selected)
	assert.True(t, options[1].OverBudget)
}

func Test_Store_PartOptions(t *testing.T) {
	// arrange
	store := newStore(t, shell.WithMaxPrice(core.PriceLimitOf(160)))
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	require.NoError(t, store.InstallPart(fixtures.CaddxCameraID, fixtures.CameraPoint))

	// act
	options := store.PartOptions()

	// assert
	byID := make(map[int]shell.PartOption, len(options))
	for _, option := range options {
		byID[option.Part.ID] = option
	}

	assert.Len(t, options, 12, "only parts fitting the 7 inch frame are offered")
	assert.NotContains(t, byID, fixtures.ReadyToSkyMotorID)

	assert.False(t, byID[fixtures.FlashHobbyMotorID].OverBudget, "12 + 55 + 30 + 55 stays within 160")
	assert.True(t, byID[fixtures.FlashHobbyMotorID].Available())

	var violation *core.ConstraintViolation
	require.True(t, errors.As(byID[fixtures.EmaxMotorID].Blocked, &violation))
	assert.Equal(t, core.ViolationMotorMismatch, violation.Code)

	assert.ErrorIs(t, byID[fixtures.FoxeerCameraID].Blocked, core.ErrNoFreeConnectionPoint)

	assert.NoError(t, byID[fixtures.Battery12000ID].Blocked)
	assert.True(t, byID[fixtures.Battery12000ID].OverBudget, "12 + 55 + 30 + 90 exceeds 160")
	assert.False(t, byID[fixtures.Battery12000ID].Available())
}

func Test_Store_PartOptions_NoFrameSelected(t *testing.T) {
	assert.Empty(t, newStore(t).PartOptions())
}

func Test_Store_Bill(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.Battery8000ID, fixtures.BatteryPoint))

	// act
	bill := store.Bill()

	// assert
	require.Len(t, bill.Sections, 2)
	assert.Equal(t, "Battery", bill.Sections[1].DisplayName)
	assert.Equal(t, 72.0, bill.Total)
}

func Test_Store_DragAndDrop(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	var dragged []*core.CatalogItem
	store.DragItem().Subscribe(func(item *core.CatalogItem) { dragged = append(dragged, item) })
	rendered := core.Size{Width: fixtures.NaturalImageSize.Width / 2, Height: fixtures.NaturalImageSize.Height / 2}

	// act
	require.NoError(t, store.StartDrag(fixtures.FlashHobbyMotorID))
	freePoints := store.FreePoints(store.DragItem().Get().Category)
	err := store.Drop(fixtures.FlashHobbyMotorID, core.Point{X: 910, Y: 160}, rendered, fixtures.NaturalImageSize)

	// assert
	require.NoError(t, err)
	assert.Len(t, freePoints, 4)
	assert.Equal(t, fixtures.FlashHobbyMotorID, installedAt(t, store, fixtures.MotorPoint2))
	require.Len(t, dragged, 2)
	assert.Equal(t, fixtures.FlashHobbyMotorID, dragged[0].ID)
	assert.Nil(t, dragged[1])
	assert.Nil(t, store.DragItem().Get())
}

func Test_Store_Drop_WithoutEligiblePoint(t *testing.T) {
	// arrange
	store := newStore(t)
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.CaddxCameraID, fixtures.CameraPoint))
	require.NoError(t, store.StartDrag(fixtures.FoxeerCameraID))

	// act
	err := store.Drop(fixtures.FoxeerCameraID, core.Point{X: 10, Y: 10}, fixtures.NaturalImageSize, fixtures.NaturalImageSize)

	// assert
	assert.ErrorIs(t, err, core.ErrNoFreeConnectionPoint)
	assert.Nil(t, store.DragItem().Get())
	assert.Equal(t, fixtures.CaddxCameraID, installedAt(t, store, fixtures.CameraPoint))
}

func Test_Store_StartDrag_UnknownPart(t *testing.T) {
	store := newStore(t)

	assert.ErrorIs(t, store.StartDrag(fixtures.Mark4FrameID), core.ErrItemNotFound)
	assert.Nil(t, store.DragItem().Get())
}

func Test_Store_Journal_ChainsCausation(t *testing.T) {
	// arrange
	store := newStore(t)

	// act
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	require.NoError(t, store.InstallPart(fixtures.FlashHobbyMotorID, fixtures.MotorPoint1))
	_ = store.InstallPart(fixtures.EmaxMotorID, fixtures.MotorPoint2)
	require.True(t, store.Undo())
	require.True(t, store.Redo())

	// assert
	journal := store.Journal()
	types := make([]string, 0, len(journal))
	for i, envelope := range journal {
		types = append(types, envelope.DomainEvent.IsEventType())
		assert.Equal(t, i+1, envelope.EventMetadata.Sequence)
		assert.Equal(t, fixedNow, envelope.DomainEvent.HasOccurredAt())
		assert.Equal(t, journal[0].EventMetadata.CorrelationID, envelope.EventMetadata.CorrelationID)
	}

	assert.Equal(t, []string{
		core.FrameSelectedEventType,
		core.PartInstalledEventType,
		core.InstallingPartFailedEventType,
		core.ChangeUndoneEventType,
		core.ChangeRedoneEventType,
	}, types)

	for i := 1; i < len(journal); i++ {
		assert.Equal(t, journal[i-1].EventMetadata.MessageID, journal[i].EventMetadata.CausationID)
	}
	assert.Equal(t, journal[0].EventMetadata.CorrelationID, journal[0].EventMetadata.CausationID)

	journal[0].DomainEvent = nil
	assert.NotNil(t, store.Journal()[0].DomainEvent, "Journal returns a copy")
}

func Test_Store_SubscriptionsEndWithTheirScope(t *testing.T) {
	// arrange
	store := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	var prices []core.PriceFloat64
	store.Price().Subscribe(func(price core.PriceFloat64) { prices = append(prices, price) }, reactive.WithContext(ctx), reactive.Immediately())

	// act
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	cancel()
	require.NoError(t, store.SelectFrame(fixtures.Mark4V2FrameID))

	// assert
	assert.Equal(t, []core.PriceFloat64{0, 12}, prices)
}

func Test_Store_ActionFromAssemblyHandler_KeepsDerivedValuesCurrent(t *testing.T) {
	// arrange
	store := newStore(t)
	installed := false
	store.Assembly().Subscribe(func(assembly *core.Frame) {
		if assembly == nil || installed {
			return
		}

		installed = true
		require.NoError(t, store.InstallPart(fixtures.Battery8000ID, fixtures.BatteryPoint))
	})

	// act
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))

	// assert
	latest := store.Assembly().Get()
	require.NotNil(t, latest)
	assert.Equal(t, latest.TotalPrice(), store.Price().Get())
	assert.Equal(t, latest.Progress(), store.Progress().Get())
	assert.Equal(t, core.PriceFloat64(12+60), store.Price().Get())
	assert.Equal(t, fixtures.Battery8000ID, installedAt(t, store, fixtures.BatteryPoint))
}

func Test_Store_Observability(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy(true)
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	store := newStore(t, shell.WithLogger(logger), shell.WithMetrics(metrics))

	// act
	require.NoError(t, store.SelectFrame(fixtures.Mark4FrameID))
	_ = store.InstallPart(fixtures.CaddxCameraID, fixtures.BatteryPoint)
	require.NoError(t, store.UninstallPart(fixtures.CaddxCameraID))

	// assert
	assert.True(t, logger.HasDebugLog("assembly command started"))
	assert.True(t, logger.HasInfoLog("assembly command committed"))
	assert.True(t, logger.HasWarnLog("assembly command rejected"))
	assert.True(t, logger.HasDebugLog("assembly command had no effect"))

	committed := logger.GetRecords("info")[0]
	eventType, found := committed.Attr("event_type")
	require.True(t, found)
	assert.Equal(t, core.FrameSelectedEventType, eventType)

	assert.True(t, metrics.HasCounterRecord(shell.CommandCallsMetric, shell.StatusSuccess))
	assert.True(t, metrics.HasCounterRecord(shell.CommandCallsMetric, shell.StatusError))
	assert.True(t, metrics.HasCounterRecord(shell.CommandCallsMetric, shell.StatusIdempotent))
	assert.Len(t, metrics.GetDurationRecords(), 3)

	price, found := metrics.LastValue(shell.CurrentPriceMetric)
	require.True(t, found)
	assert.Equal(t, 12.0, price)
}
