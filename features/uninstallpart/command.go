package uninstallpart

import (
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	commandType = "UninstallPart"
)

// Command represents the intent to remove an item from the current assembly.
type Command struct {
	ItemID     core.ItemIDInt
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(itemID core.ItemIDInt, occurredAt time.Time) Command {
	return Command{
		ItemID:     itemID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
