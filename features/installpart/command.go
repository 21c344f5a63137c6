package installpart

import (
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	commandType = "InstallPart"
)

// Command represents the intent to install a part on a connection point of the current assembly.
type Command struct {
	PartID     core.ItemIDInt
	PointID    core.PointIDInt
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(partID core.ItemIDInt, pointID core.PointIDInt, occurredAt time.Time) Command {
	return Command{
		PartID:     partID,
		PointID:    pointID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
