package core

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(assembly, event), or ErrorDecision(event, err).
type DecisionResult struct {
	Outcome  string      // "idempotent", "success", or "error"
	Assembly *Frame      // the next snapshot for success decisions, nil meaning "empty assembly"
	Event    DomainEvent // nil for idempotent decisions
	Err      error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision creates a DecisionResult carrying the next assembly snapshot.
func SuccessDecision(assembly *Frame, event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome:  successOutcome,
		Assembly: assembly,
		Event:    event,
	}
}

// ErrorDecision creates a DecisionResult indicating a rejected transition with a failure event to record.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Event:   event,
		Err:     err,
	}
}

// HasChange returns true if there is a new snapshot to publish.
func (r DecisionResult) HasChange() bool {
	return r.Outcome == successOutcome
}

// HasEventToRecord returns true if there is an event for the session journal.
func (r DecisionResult) HasEventToRecord() bool {
	return r.Outcome != idempotentOutcome && r.Event != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
