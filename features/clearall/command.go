package clearall

import (
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	commandType = "ClearAll"
)

// Command represents the intent to discard the current assembly.
type Command struct {
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(occurredAt time.Time) Command {
	return Command{
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
