package clearall

import (
	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// Decide determines the next assembly snapshot when everything is cleared.
//
// Business Rules:
//
//	GIVEN: Any assembly, including the empty one
//	WHEN: ClearAll command is received
//	THEN: AssemblyCleared event is generated and the empty assembly is the next snapshot
func Decide(current *core.Frame, command Command) core.DecisionResult {
	return core.SuccessDecision(
		nil,
		core.BuildAssemblyCleared(current.FrameID(), command.OccurredAt),
	)
}
