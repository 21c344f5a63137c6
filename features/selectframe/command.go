package selectframe

import (
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	commandType = "SelectFrame"
)

// Command represents the intent to start a new assembly from a frame.
type Command struct {
	FrameID    core.ItemIDInt
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(frameID core.ItemIDInt, occurredAt time.Time) Command {
	return Command{
		FrameID:    frameID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
