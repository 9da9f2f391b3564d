package settlement

import "errors"

var (
	// ErrInvalidSignature rejects a delivery whose signature header is
	// missing or does not verify. Nothing has been written.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrTransientStore wraps ledger or balance failures. The processor is
	// expected to redeliver.
	ErrTransientStore = errors.New("transient store failure")

	errMalformedEvent   = errors.New("malformed event")
	errAwaitingPayment  = errors.New("checkout session not paid yet")
	errAlreadyProcessed = errors.New("session already settled")
)

// Outcome is the terminal result of one webhook delivery.
type Outcome string

const (
	OutcomeSettled          Outcome = "settled"
	OutcomeAlreadyProcessed Outcome = "already_processed"
	OutcomeIgnored          Outcome = "ignored"
	OutcomeMalformed        Outcome = "malformed"
	OutcomeRejected         Outcome = "rejected"
	OutcomeFailed           Outcome = "failed"
)

// Acknowledged reports whether the delivery should be answered with a
// success status so the processor stops redelivering it.
func (o Outcome) Acknowledged() bool {
	switch o {
	case OutcomeSettled, OutcomeAlreadyProcessed, OutcomeIgnored, OutcomeMalformed:
		return true
	default:
		return false
	}
}

// Result describes what a delivery did.
type Result struct {
	Outcome   Outcome
	EventID   string
	EventType string
	SessionID string
	UserID    string
	Amount    int64
	Reason    string
}
