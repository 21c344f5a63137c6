package core

import (
	"time"
)

// PartInstalledEventType is the event type identifier.
const PartInstalledEventType = "PartInstalled"

// InstallingPartFailedEventType is the event type identifier.
const InstallingPartFailedEventType = "InstallingPartFailed"

// PartUninstalledEventType is the event type identifier.
const PartUninstalledEventType = "PartUninstalled"

// PartInstalled represents when a part was installed on a connection point.
type PartInstalled struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	PartID     ItemIDInt
	PointID    PointIDInt
	OccurredAt OccurredAtTS
}

// BuildPartInstalled creates a new PartInstalled event.
func BuildPartInstalled(frameID ItemIDInt, partID ItemIDInt, pointID PointIDInt, occurredAt time.Time) PartInstalled {
	return PartInstalled{
		EventType:  PartInstalledEventType,
		FrameID:    frameID,
		PartID:     partID,
		PointID:    pointID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PartInstalled) IsEventType() string {
	return PartInstalledEventType
}

// HasOccurredAt returns when this event occurred.
func (e PartInstalled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PartInstalled) IsErrorEvent() bool {
	return false
}

// InstallingPartFailed represents when a part was rejected by a connection point.
type InstallingPartFailed struct {
	EventType  EventTypeString
	PartID     ItemIDInt
	PointID    PointIDInt
	Reason     string
	OccurredAt OccurredAtTS
}

// BuildInstallingPartFailed creates a new InstallingPartFailed event.
func BuildInstallingPartFailed(partID ItemIDInt, pointID PointIDInt, reason string, occurredAt time.Time) InstallingPartFailed {
	return InstallingPartFailed{
		EventType:  InstallingPartFailedEventType,
		PartID:     partID,
		PointID:    pointID,
		Reason:     reason,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e InstallingPartFailed) IsEventType() string {
	return InstallingPartFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e InstallingPartFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e InstallingPartFailed) IsErrorEvent() bool {
	return true
}

// PartUninstalled represents when a part was removed from a connection point.
type PartUninstalled struct {
	EventType  EventTypeString
	FrameID    ItemIDInt
	PartID     ItemIDInt
	PointID    PointIDInt
	OccurredAt OccurredAtTS
}

// BuildPartUninstalled creates a new PartUninstalled event.
func BuildPartUninstalled(frameID ItemIDInt, partID ItemIDInt, pointID PointIDInt, occurredAt time.Time) PartUninstalled {
	return PartUninstalled{
		EventType:  PartUninstalledEventType,
		FrameID:    frameID,
		PartID:     partID,
		PointID:    pointID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PartUninstalled) IsEventType() string {
	return PartUninstalledEventType
}

// HasOccurredAt returns when this event occurred.
func (e PartUninstalled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PartUninstalled) IsErrorEvent() bool {
	return false
}
