package relay

import "fmt"

// OutcomeStatus is the terminal state of a single attempt to relay a sequence number.
type OutcomeStatus string

const (
	// Submitted means every transaction of the record is present on-chain.
	Submitted OutcomeStatus = "submitted"
	// NotReady means the record has no verification yet; nothing was submitted.
	NotReady OutcomeStatus = "not_ready"
	// Failed means a network, chain or decoding error aborted the attempt.
	Failed OutcomeStatus = "failed"
)

// Outcome is the result of Pipeline.Attempt.
type Outcome struct {
	SeqNumber uint64
	Status    OutcomeStatus
	// Err is set only for Failed outcomes.
	Err error
}

func NewSubmitted(seq uint64) Outcome {
	return Outcome{SeqNumber: seq, Status: Submitted}
}

func NewNotReady(seq uint64) Outcome {
	return Outcome{SeqNumber: seq, Status: NotReady}
}

func NewFailed(seq uint64, err error) Outcome {
	return Outcome{SeqNumber: seq, Status: Failed, Err: err}
}

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("seq_number=%d status=%s error=%s", o.SeqNumber, o.Status, o.Err)
	}
	return fmt.Sprintf("seq_number=%d status=%s", o.SeqNumber, o.Status)
}
