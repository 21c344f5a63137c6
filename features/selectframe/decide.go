package selectframe

import (
	"fmt"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	failureReasonFrameNotFound = "frame does not exist in the catalog"
)

// Catalog is the part of the catalog this feature reads.
type Catalog interface {
	Frame(id core.ItemIDInt) (*core.Frame, bool)
}

// Decide determines the next assembly snapshot when a frame is selected.
//
// Business Rules:
//
//	GIVEN: A frame id
//	WHEN: SelectFrame command is received
//	THEN: FrameSelected event is generated and a fresh copy of the frame is the next snapshot
//	ERROR: "frame does not exist in the catalog" if the id is not a frame
//	IDEMPOTENCY: If the same frame is selected and nothing is installed yet, no event is generated (no-op)
func Decide(current *core.Frame, catalog Catalog, command Command) core.DecisionResult {
	frame, found := catalog.Frame(command.FrameID)
	if !found {
		event := core.BuildSelectingFrameFailed(command.FrameID, failureReasonFrameNotFound, command.OccurredAt)
		return core.ErrorDecision(event, fmt.Errorf("%s: %w: id %d", event.EventType, core.ErrFrameNotFound, command.FrameID))
	}

	if current.FrameID() == frame.ID && current.Progress().Installed == 0 {
		return core.IdempotentDecision() // idempotency - this frame is already selected and untouched
	}

	return core.SuccessDecision(
		frame,
		core.BuildFrameSelected(frame.ID, frame.Name, command.OccurredAt),
	)
}
