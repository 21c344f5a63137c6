package uninstallpart

import (
	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// Decide determines the next assembly snapshot when an item is removed.
//
// Business Rules:
//
//	GIVEN: An assembly and an item id
//	WHEN: UninstallPart command is received
//	THEN: AssemblyCleared event is generated and the empty assembly is the next snapshot, if the id is the frame's
//	THEN: PartUninstalled event is generated and a copy without the part is the next snapshot, otherwise
//	IDEMPOTENCY: If no frame is selected or the id is not installed anywhere, no event is generated (no-op)
func Decide(current *core.Frame, command Command) core.DecisionResult {
	if current.IsEmpty() {
		return core.IdempotentDecision() // idempotency - nothing to remove
	}

	if command.ItemID == current.ID {
		return core.SuccessDecision(
			nil,
			core.BuildAssemblyCleared(current.ID, command.OccurredAt),
		)
	}

	next := current.Copy()
	point, found := next.PointHolding(command.ItemID)
	if !found {
		return core.IdempotentDecision() // idempotency - the part is not installed
	}

	point.Clear()

	return core.SuccessDecision(
		next,
		core.BuildPartUninstalled(next.ID, command.ItemID, point.ID, command.OccurredAt),
	)
}
