package relay

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Sequencer resolves compute results and their transactions from the off-chain sequencer.
type Sequencer interface {
	// GetComputeResult returns the compute result stored under seq. It fails with ErrNotFound if the
	// sequencer has no result for seq yet and with ErrTransport on network failures.
	GetComputeResult(ctx context.Context, seq uint64) (*ComputeResult, error)
	// GetTx resolves a single transaction by its kind prefix and hash.
	GetTx(ctx context.Context, prefix string, hash common.Hash) (*Transaction, error)
	// GetTxs is the batched form of GetTx. Transactions are returned in the order of refs.
	GetTxs(ctx context.Context, refs []TxRef) ([]*Transaction, error)
}
