package relay

import "errors"

var (
	// ErrNotFound is returned by the sequencer when nothing exists yet under the requested key.
	ErrNotFound = errors.New("not found")
	// ErrTransport marks network or RPC failures reaching the sequencer or the chain node.
	ErrTransport = errors.New("transport error")
	// ErrChainRejected marks submissions the chain declined: reverted calls, invalid signatures and alike.
	ErrChainRejected = errors.New("chain rejected submission")
	// ErrStorage marks failures of the local persistent store.
	ErrStorage = errors.New("storage error")
	// ErrUnknownBody is returned when a transaction carries a body type the pipeline can't dispatch.
	ErrUnknownBody = errors.New("unknown transaction body")
)
