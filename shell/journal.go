package shell

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// EventMetadata places an event in the session journal.
//
// CorrelationID is the session id of the Store, shared by every event of the session.
// CausationID is the MessageID of the previous event, or the session id for the first one.
type EventMetadata struct {
	MessageID     uuid.UUID
	CausationID   uuid.UUID
	CorrelationID uuid.UUID
	Sequence      int
}

// EventEnvelope is one journal entry.
type EventEnvelope struct {
	DomainEvent   core.DomainEvent
	EventMetadata EventMetadata
}

// EventEnvelopes is the journal of one session, oldest first.
type EventEnvelopes = []EventEnvelope

// journal is the append-only, in-memory record of the events of one session.
type journal struct {
	sessionID uuid.UUID
	envelopes EventEnvelopes
}

func newJournal(sessionID uuid.UUID) *journal {
	return &journal{sessionID: sessionID}
}

func (j *journal) append(event core.DomainEvent) EventEnvelope {
	causationID := j.sessionID
	if n := len(j.envelopes); n > 0 {
		causationID = j.envelopes[n-1].EventMetadata.MessageID
	}

	envelope := EventEnvelope{
		DomainEvent: event,
		EventMetadata: EventMetadata{
			MessageID:     uuid.New(),
			CausationID:   causationID,
			CorrelationID: j.sessionID,
			Sequence:      len(j.envelopes) + 1,
		},
	}

	j.envelopes = append(j.envelopes, envelope)

	return envelope
}

func (j *journal) snapshot() EventEnvelopes {
	return append(EventEnvelopes(nil), j.envelopes...)
}
