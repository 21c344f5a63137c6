package core

import (
	"time"
)

// EventTypeString represents the type of a domain event.
type EventTypeString = string

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents something that happened to the assembly during a session.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event represents a rejected transition.
	IsErrorEvent() bool
}
