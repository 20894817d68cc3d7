package relay

// Storage is the relayer's local persistent state: the forward cursor, the retry set and the log of
// failed sequence numbers. Every setter writes a single key atomically.
type Storage interface {
	// GetCursor returns the next sequence number to attempt, 0 if none has been stored yet.
	GetCursor() (uint64, error)
	// SetCursor persists the cursor. Moving it backwards is an error.
	SetCursor(seq uint64) error
	// GetRetrySet returns the stored retry set, empty if none has been stored yet.
	GetRetrySet() (RetrySet, error)
	SetRetrySet(set RetrySet) error

	SetFailedSequence(info FailedSequence) error
	RemoveFailedSequence(seq uint64) error
	GetAllFailedSequences() ([]FailedSequence, error)

	Close() error
}
