package shell

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/clearall"
	"github.com/AntonStoeckl/drone-assembly-go/features/installpart"
	"github.com/AntonStoeckl/drone-assembly-go/features/selectframe"
	"github.com/AntonStoeckl/drone-assembly-go/features/uninstallpart"
	"github.com/AntonStoeckl/drone-assembly-go/history"
	"github.com/AntonStoeckl/drone-assembly-go/reactive"
)

// Origin tells publish where a snapshot comes from.
type Origin int

const (
	// OriginUser marks a snapshot produced by a user action. It is recorded in the history.
	OriginUser Origin = iota
	// OriginHistory marks a snapshot restored by Undo or Redo. It is never recorded again.
	OriginHistory
)

// Snapshot is one history entry. A nil Assembly is the empty assembly.
type Snapshot struct {
	Revision uuid.UUID
	Assembly *core.Frame
}

// Store orchestrates the assembly of one session.
//
// Values read from the cells are snapshots shared with all subscribers and must not be mutated.
type Store struct {
	catalog          *core.Catalog
	history          *history.Log[Snapshot]
	journal          *journal
	now              func() time.Time
	logger           Logger
	metricsCollector MetricsCollector
	initialMaxPrice  core.PriceLimit

	assembly   *reactive.Cell[*core.Frame]
	price      *reactive.Cell[core.PriceFloat64]
	progress   *reactive.Cell[core.Progress]
	canUndo    *reactive.Cell[bool]
	canRedo    *reactive.Cell[bool]
	maxPrice   *reactive.Cell[core.PriceLimit]
	overBudget *reactive.Cell[bool]
	dragItem   *reactive.Cell[*core.CatalogItem]
}

// NewStore creates a Store over a loaded catalog. The session starts with the empty assembly.
func NewStore(catalog *core.Catalog, options ...Option) (*Store, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	s := &Store{
		catalog: catalog,
		now:     time.Now,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	sessionID := uuid.New()
	s.history = history.New(Snapshot{Revision: sessionID})
	s.journal = newJournal(sessionID)

	s.assembly = reactive.NewCell[*core.Frame](nil)
	s.price = reactive.NewCell[core.PriceFloat64](0)
	s.progress = reactive.NewCell(core.Progress{})
	s.canUndo = reactive.NewCell(false)
	s.canRedo = reactive.NewCell(false)
	s.maxPrice = reactive.NewCell(s.initialMaxPrice)
	s.overBudget = reactive.NewCell(false)
	s.dragItem = reactive.NewCell[*core.CatalogItem](nil)

	return s, nil
}

// Assembly is the cell holding the current assembly, nil when no frame is selected.
func (s *Store) Assembly() reactive.Readable[*core.Frame] { return s.assembly }

// Price is the cell holding the price of the current assembly.
func (s *Store) Price() reactive.Readable[core.PriceFloat64] { return s.price }

// Progress is the cell holding the install progress of the current assembly.
func (s *Store) Progress() reactive.Readable[core.Progress] { return s.progress }

// CanUndo is the cell telling whether Undo would change anything.
func (s *Store) CanUndo() reactive.Readable[bool] { return s.canUndo }

// CanRedo is the cell telling whether Redo would change anything.
func (s *Store) CanRedo() reactive.Readable[bool] { return s.canRedo }

// MaxPrice is the cell holding the advisory max price.
func (s *Store) MaxPrice() reactive.Readable[core.PriceLimit] { return s.maxPrice }

// OverBudget is the cell telling whether the current assembly costs more than the max price.
func (s *Store) OverBudget() reactive.Readable[bool] { return s.overBudget }

// DragItem is the cell holding the part being dragged, nil when nothing is dragged.
func (s *Store) DragItem() reactive.Readable[*core.CatalogItem] { return s.dragItem }

// Catalog returns the catalog the Store was created with.
func (s *Store) Catalog() *core.Catalog {
	return s.catalog
}

// Revision returns the id of the current history entry.
func (s *Store) Revision() uuid.UUID {
	return s.history.Current().Revision
}

// Journal returns a copy of all events recorded in this session, oldest first.
func (s *Store) Journal() EventEnvelopes {
	return s.journal.snapshot()
}

// current returns the current snapshot as recorded in the history. It is never handed out.
func (s *Store) current() *core.Frame {
	return s.history.Current().Assembly
}

// SelectFrame starts a new assembly from the frame with the given id.
// Returns an error wrapping core.ErrFrameNotFound if there is no such frame; nothing is published then.
func (s *Store) SelectFrame(frameID core.ItemIDInt) error {
	command := selectframe.BuildCommand(frameID, s.now())

	return s.execute(command.CommandType(), func() core.DecisionResult {
		return selectframe.Decide(s.current(), s.catalog, command)
	})
}

// InstallPart installs the part with the given id on the connection point with the given id.
// Rejected installs return an error and publish nothing; constraint violations unwrap to *core.ConstraintViolation.
func (s *Store) InstallPart(partID core.ItemIDInt, pointID core.PointIDInt) error {
	command := installpart.BuildCommand(partID, pointID, s.now())

	return s.execute(command.CommandType(), func() core.DecisionResult {
		return installpart.Decide(s.current(), s.catalog, command)
	})
}

// UninstallPart removes an installed part, or the whole assembly if id is the frame's.
// Ids that are not installed are ignored.
func (s *Store) UninstallPart(itemID core.ItemIDInt) error {
	command := uninstallpart.BuildCommand(itemID, s.now())

	return s.execute(command.CommandType(), func() core.DecisionResult {
		return uninstallpart.Decide(s.current(), command)
	})
}

// ClearAll publishes the empty assembly regardless of the prior state.
func (s *Store) ClearAll() {
	command := clearall.BuildCommand(s.now())

	_ = s.execute(command.CommandType(), func() core.DecisionResult {
		return clearall.Decide(s.current(), command)
	})
}

// SetMaxPrice replaces the advisory max price. Use core.NoPriceLimit to remove it.
func (s *Store) SetMaxPrice(limit core.PriceLimit) error {
	if amount, set := limit.Amount(); set && amount < 0 {
		return ErrNegativeMaxPrice
	}

	s.maxPrice.Set(limit)
	s.overBudget.Set(limit.Exceeded(s.price.Get()))

	amount, _ := limit.Amount()
	s.logInfo(logMsgMaxPriceChanged, logAttrMaxPrice, amount, logAttrPrice, s.price.Get())

	return nil
}

// Undo restores the previous history entry. It returns false if there is none.
func (s *Store) Undo() bool {
	return s.restore(commandTypeUndo, s.history.CanUndo, s.history.Undo, func(frameID core.ItemIDInt) core.DomainEvent {
		return core.BuildChangeUndone(frameID, s.now())
	})
}

// Redo restores the next history entry. It returns false if there is none.
func (s *Store) Redo() bool {
	return s.restore(commandTypeRedo, s.history.CanRedo, s.history.Redo, func(frameID core.ItemIDInt) core.DomainEvent {
		return core.BuildChangeRedone(frameID, s.now())
	})
}

func (s *Store) restore(
	commandType string,
	can func() bool,
	move func() Snapshot,
	buildEvent func(frameID core.ItemIDInt) core.DomainEvent,
) bool {

	start := time.Now()

	if !can() {
		s.logDebug(logMsgCommandNoop, LogAttrCommandType, commandType)
		s.recordCommandMetrics(commandType, StatusIdempotent, time.Since(start))

		return false
	}

	snapshot := move()
	s.journal.append(buildEvent(snapshot.Assembly.FrameID()))
	s.publish(snapshot.Assembly, OriginHistory)

	s.logInfo(
		logMsgHistoryRestored,
		LogAttrCommandType, commandType,
		logAttrRevision, snapshot.Revision.String(),
		logAttrFrameID, snapshot.Assembly.FrameID(),
		logAttrPrice, s.price.Get(),
	)
	s.recordCommandMetrics(commandType, StatusSuccess, time.Since(start))

	return true
}

// execute runs a decision and applies its outcome: record the event, then publish the snapshot.
func (s *Store) execute(commandType string, decide func() core.DecisionResult) error {
	start := time.Now()
	s.logDebug(logMsgCommandStarted, LogAttrCommandType, commandType)

	result := decide()

	if result.HasEventToRecord() {
		s.journal.append(result.Event)
	}

	if err := result.HasError(); err != nil {
		s.logWarn(logMsgCommandRejected, err, LogAttrCommandType, commandType, logAttrEventType, result.Event.IsEventType())
		s.recordCommandMetrics(commandType, StatusError, time.Since(start))

		return err
	}

	if !result.HasChange() {
		s.logDebug(logMsgCommandNoop, LogAttrCommandType, commandType)
		s.recordCommandMetrics(commandType, StatusIdempotent, time.Since(start))

		return nil
	}

	s.publish(result.Assembly, OriginUser)

	duration := time.Since(start)
	s.logInfo(
		logMsgCommandCommitted,
		LogAttrCommandType, commandType,
		logAttrEventType, result.Event.IsEventType(),
		logAttrFrameID, result.Assembly.FrameID(),
		logAttrPrice, s.price.Get(),
		logAttrDurationMS, toMilliseconds(duration),
	)
	s.recordCommandMetrics(commandType, StatusSuccess, duration)

	return nil
}

// publish makes assembly the current snapshot. Only OriginUser snapshots are recorded in the history.
// The history is updated before any cell emits, so subscribers always see consistent undo/redo flags.
func (s *Store) publish(assembly *core.Frame, origin Origin) {
	if origin == OriginUser {
		s.history.Record(Snapshot{Revision: uuid.New(), Assembly: assembly})
	}

	s.assembly.Set(assembly.Copy())
	s.derive()
}

// derive republishes every value computed from the current snapshot.
// It reads the history cursor, so a publish nested in an assembly handler is never overwritten by the outer one.
func (s *Store) derive() {
	assembly := s.current()
	price := assembly.TotalPrice()

	s.price.Set(price)
	s.progress.Set(assembly.Progress())
	s.canUndo.Set(s.history.CanUndo())
	s.canRedo.Set(s.history.CanRedo())
	s.overBudget.Set(s.maxPrice.Get().Exceeded(price))

	s.recordStateMetrics(price, s.history.Len())
}
