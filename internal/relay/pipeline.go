package relay

import "context"

// Pipeline relays the transactions behind a single sequence number.
type Pipeline interface {
	// Attempt resolves the compute result for seq and submits its commitment and verifications in
	// causal order. Errors are reported through the Outcome and never returned.
	Attempt(ctx context.Context, seq uint64) Outcome
	// SubmitTx submits a single transaction unless the chain already has it.
	SubmitTx(ctx context.Context, tx *Transaction) error
}
