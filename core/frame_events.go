package core

import (
	"time"
)

// FrameSelectedEventType is the event type identifier.
const FrameSelectedEventType = "FrameSelected"

// SelectingFrameFailedEventType is the event type identifier.
const SelectingFrameFailedEventType = "SelectingFrameFailed"

// FrameSelected represents when a frame was chosen as the root of a new assembly.
type FrameSelected struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	FrameName  string
	OccurredAt OccurredAtTS
}

// BuildFrameSelected creates a new FrameSelected event.
func BuildFrameSelected(frameID ItemIDInt, frameName string, occurredAt time.Time) FrameSelected {
	return FrameSelected{
		EventType:  FrameSelectedEventType,
		FrameID:    frameID,
		FrameName:  frameName,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e FrameSelected) IsEventType() string {
	return FrameSelectedEventType
}

// HasOccurredAt returns when this event occurred.
func (e FrameSelected) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e FrameSelected) IsErrorEvent() bool {
	return false
}

// SelectingFrameFailed represents when a frame could not be selected.
type SelectingFrameFailed struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	Reason     string
	OccurredAt OccurredAtTS
}

// BuildSelectingFrameFailed creates a new SelectingFrameFailed event.
func BuildSelectingFrameFailed(frameID ItemIDInt, reason string, occurredAt time.Time) SelectingFrameFailed {
	return SelectingFrameFailed{
		EventType:  SelectingFrameFailedEventType,
		FrameID:    frameID,
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e SelectingFrameFailed) IsEventType() string {
	return SelectingFrameFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e SelectingFrameFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e SelectingFrameFailed) IsErrorEvent() bool {
	return true
}
