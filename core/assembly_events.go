package core

import (
	"time"
)

const (
	// AssemblyClearedEventType is the event type identifier.
	AssemblyClearedEventType = "AssemblyCleared"

	// AssemblyImportedEventType is the event type identifier.
	AssemblyImportedEventType = "AssemblyImported"

	// ImportingAssemblyFailedEventType is the event type identifier.
	ImportingAssemblyFailedEventType = "ImportingAssemblyFailed"

	// ChangeUndoneEventType is the event type identifier.
	ChangeUndoneEventType = "ChangeUndone"

	// ChangeRedoneEventType is the event type identifier.
	ChangeRedoneEventType = "ChangeRedone"
)

// AssemblyCleared represents when the whole assembly was discarded.
// FrameID is the frame that was selected before, 0 if there was none.
type AssemblyCleared struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	OccurredAt OccurredAtTS
}

// BuildAssemblyCleared creates a new AssemblyCleared event.
func BuildAssemblyCleared(frameID ItemIDInt, occurredAt time.Time) AssemblyCleared {
	return AssemblyCleared{
		EventType:  AssemblyClearedEventType,
		FrameID:    frameID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AssemblyCleared) IsEventType() string {
	return AssemblyClearedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AssemblyCleared) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e AssemblyCleared) IsErrorEvent() bool {
	return false
}

// AssemblyImported represents when a whole assembly was reconstructed from an import payload.
type AssemblyImported struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	PartCount  int
	OccurredAt OccurredAtTS
}

// BuildAssemblyImported creates a new AssemblyImported event.
func BuildAssemblyImported(frameID ItemIDInt, partCount int, occurredAt time.Time) AssemblyImported {
	return AssemblyImported{
		EventType:  AssemblyImportedEventType,
		FrameID:    frameID,
		PartCount:  partCount,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AssemblyImported) IsEventType() string {
	return AssemblyImportedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AssemblyImported) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e AssemblyImported) IsErrorEvent() bool {
	return false
}

// ImportingAssemblyFailed represents when an import payload was rejected as a whole.
type ImportingAssemblyFailed struct {
	EventType  EventTypeString
	Reason     string
	OccurredAt OccurredAtTS
}

// BuildImportingAssemblyFailed creates a new ImportingAssemblyFailed event.
func BuildImportingAssemblyFailed(reason string, occurredAt time.Time) ImportingAssemblyFailed {
	return ImportingAssemblyFailed{
		EventType:  ImportingAssemblyFailedEventType,
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ImportingAssemblyFailed) IsEventType() string {
	return ImportingAssemblyFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ImportingAssemblyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ImportingAssemblyFailed) IsErrorEvent() bool {
	return true
}

// ChangeUndone represents when the history cursor moved back.
// FrameID is the frame of the restored snapshot, 0 for the empty assembly.
type ChangeUndone struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	OccurredAt OccurredAtTS
}

// BuildChangeUndone creates a new ChangeUndone event.
func BuildChangeUndone(frameID ItemIDInt, occurredAt time.Time) ChangeUndone {
	return ChangeUndone{
		EventType:  ChangeUndoneEventType,
		FrameID:    frameID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ChangeUndone) IsEventType() string {
	return ChangeUndoneEventType
}

// HasOccurredAt returns when this event occurred.
func (e ChangeUndone) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ChangeUndone) IsErrorEvent() bool {
	return false
}

// ChangeRedone represents when the history cursor moved forward.
// FrameID is the frame of the restored snapshot, 0 for the empty assembly.
type ChangeRedone struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	OccurredAt OccurredAtTS
}

// BuildChangeRedone creates a new ChangeRedone event.
func BuildChangeRedone(frameID ItemIDInt, occurredAt time.Time) ChangeRedone {
	return ChangeRedone{
		EventType:  ChangeRedoneEventType,
		FrameID:    frameID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ChangeRedone) IsEventType() string {
	return ChangeRedoneEventType
}

// HasOccurredAt returns when this event occurred.
func (e ChangeRedone) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ChangeRedone) IsErrorEvent() bool {
	return false
}
