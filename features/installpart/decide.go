package installpart

import (
	"fmt"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	failureReasonPartNotFound = "part does not exist in the catalog"
)

// Catalog is the part of the catalog this feature reads.
type Catalog interface {
	Part(id core.ItemIDInt) (core.CatalogItem, bool)
}

// Decide determines the next assembly snapshot when a part is installed on a connection point.
//
// Business Rules:
//
//	GIVEN: An assembly with a selected frame, a part id and a connection point id
//	WHEN: InstallPart command is received
//	THEN: PartInstalled event is generated and a copy of the frame holding the part is the next snapshot
//	ERROR: "part does not exist in the catalog" if the id is not a part
//	ERROR: no frame selected, incompatible frame size, unknown or mismatching or occupied connection point
//	ERROR: motor-mismatch, motor-limit or single-instance constraint violations
//	IDEMPOTENCY: If the point already holds this part, no event is generated (no-op)
func Decide(current *core.Frame, catalog Catalog, command Command) core.DecisionResult {
	part, found := catalog.Part(command.PartID)
	if !found {
		return fail(command, failureReasonPartNotFound, fmt.Errorf("%w: id %d", core.ErrItemNotFound, command.PartID))
	}

	if point, found := current.Point(command.PointID); found && point.Installed != nil && point.Installed.ID == part.ID {
		return core.IdempotentDecision() // idempotency - the part is already installed right there
	}

	if err := core.CheckPlacement(current, part, command.PointID); err != nil {
		return fail(command, err.Error(), err)
	}

	next := current.Copy()
	point, _ := next.Point(command.PointID)
	if err := point.Install(part); err != nil {
		return fail(command, err.Error(), err)
	}

	return core.SuccessDecision(
		next,
		core.BuildPartInstalled(next.ID, part.ID, point.ID, command.OccurredAt),
	)
}

func fail(command Command, reason string, err error) core.DecisionResult {
	event := core.BuildInstallingPartFailed(command.PartID, command.PointID, reason, command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, err))
}
