package importassembly

import (
	"slices"
	"time"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	commandType = "ImportAssembly"
)

// Entry pairs a catalog item with the connection point it occupies. PositionID 0 marks the frame.
type Entry struct {
	ItemID     core.ItemIDInt
	PositionID core.PointIDInt
}

// IsFrame reports whether the entry names the frame.
func (e Entry) IsFrame() bool {
	return e.PositionID == 0
}

// Command represents the intent to replace the current assembly with an imported one.
type Command struct {
	Entries    []Entry
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(entries []Entry, occurredAt time.Time) Command {
	return Command{
		Entries:    slices.Clone(entries),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
