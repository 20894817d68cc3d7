package relay

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Receipt confirms that a submission has been included on-chain.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// Chain knows how to mirror sequencer transactions into the ComputeManager contract.
// Submit methods block until the submission is mined.
type Chain interface {
	// HasTx reports whether the contract already recorded the sequencer transaction hash.
	HasTx(ctx context.Context, hash common.Hash) (bool, error)
	SubmitComputeCommitment(ctx context.Context, assignmentTxHash, commitmentTxHash, computeRootHash common.Hash, sig Signature) (*Receipt, error)
	SubmitComputeVerification(ctx context.Context, verificationTxHash, assignmentTxHash common.Hash, sig Signature) (*Receipt, error)
}
