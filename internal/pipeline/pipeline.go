package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/metrics"
	"github.com/openrank/compute-relayer/internal/relay"
)

// SubmissionPipeline is the implementation of relay.Pipeline. It resolves a compute result into its
// commitment and verification transactions and mirrors them into the ComputeManager contract.
type SubmissionPipeline struct {
	sequencer relay.Sequencer
	chain     relay.Chain
	logger    *zap.Logger
}

func NewSubmissionPipeline(sequencer relay.Sequencer, chain relay.Chain, logger *zap.Logger) *SubmissionPipeline {
	return &SubmissionPipeline{
		sequencer: sequencer,
		chain:     chain,
		logger:    logger,
	}
}

// Attempt relays the record stored under seq. The commitment goes first, followed by the verifications in
// the order the sequencer returned them. A record without verifications is NotReady and nothing gets
// submitted, so a commitment never lands on-chain without a verification following it.
func (p *SubmissionPipeline) Attempt(ctx context.Context, seq uint64) relay.Outcome {
	result, err := p.sequencer.GetComputeResult(ctx, seq)
	if err != nil {
		if errors.Is(err, relay.ErrNotFound) {
			p.logger.Debug("compute result not found", zap.Uint64("seq_number", seq))
			return relay.NewNotReady(seq)
		}
		return relay.NewFailed(seq, fmt.Errorf("failed to get compute result: %w", err))
	}

	if !result.IsVerified() {
		p.logger.Debug("compute result is not verified yet", zap.Uint64("seq_number", seq))
		return relay.NewNotReady(seq)
	}

	refs := result.SubmissionRefs()
	txs, err := p.sequencer.GetTxs(ctx, refs)
	if err != nil {
		return relay.NewFailed(seq, fmt.Errorf("failed to get transactions: %w", err))
	}
	if len(txs) != len(refs) {
		return relay.NewFailed(seq, fmt.Errorf("%w: requested %d transactions, got %d", relay.ErrTransport, len(refs), len(txs)))
	}

	for i, tx := range txs {
		if tx == nil {
			return relay.NewFailed(seq, fmt.Errorf("%w: transaction %s is missing", relay.ErrNotFound, refs[i]))
		}
		if tx.Hash != refs[i].Hash {
			return relay.NewFailed(seq, fmt.Errorf("%w: requested transaction %s, got %s", relay.ErrTransport, refs[i], tx.Hash))
		}
		if prefix := tx.Kind().Prefix(); prefix != refs[i].Prefix {
			return relay.NewFailed(seq, fmt.Errorf("%w: requested transaction %s, got kind %s", relay.ErrTransport, refs[i], tx.Kind()))
		}
		if err := p.SubmitTx(ctx, tx); err != nil {
			return relay.NewFailed(seq, fmt.Errorf("failed to submit %s: %w", refs[i], err))
		}
	}

	return relay.NewSubmitted(seq)
}

// SubmitTx submits tx unless the contract already has it. Kinds the contract doesn't track are accepted
// without calling the chain.
func (p *SubmissionPipeline) SubmitTx(ctx context.Context, tx *relay.Transaction) error {
	switch body := tx.Body.(type) {
	case *relay.ComputeCommitment:
		return p.submitIfAbsent(ctx, tx, func() (*relay.Receipt, error) {
			return p.chain.SubmitComputeCommitment(ctx, body.AssignmentTxHash, tx.Hash, body.ComputeRootHash, tx.Signature)
		})
	case *relay.ComputeVerification:
		return p.submitIfAbsent(ctx, tx, func() (*relay.Receipt, error) {
			return p.chain.SubmitComputeVerification(ctx, tx.Hash, body.AssignmentTxHash, tx.Signature)
		})
	case *relay.ComputeRequest, *relay.OpaqueBody:
		p.logger.Debug("transaction kind is not tracked on-chain, skipping",
			zap.String("kind", string(tx.Kind())), zap.Stringer("tx_hash", tx.Hash))
		return nil
	default:
		return fmt.Errorf("%w: %T", relay.ErrUnknownBody, tx.Body)
	}
}

func (p *SubmissionPipeline) submitIfAbsent(ctx context.Context, tx *relay.Transaction, submit func() (*relay.Receipt, error)) error {
	kind := string(tx.Kind())

	exists, err := p.chain.HasTx(ctx, tx.Hash)
	if err != nil {
		return fmt.Errorf("failed to check tx existence: %w", err)
	}
	if exists {
		metrics.IncSkippedChainSubmit(kind)
		p.logger.Debug("transaction already submitted",
			zap.String("kind", kind), zap.Stringer("tx_hash", tx.Hash))
		return nil
	}

	receipt, err := submit()
	if err != nil {
		metrics.IncFailedChainSubmit(kind)
		return err
	}
	metrics.IncSuccessChainSubmit(kind)

	p.logger.Info("posted tx on chain",
		zap.String("kind", kind),
		zap.Stringer("tx_hash", tx.Hash),
		zap.Stringer("chain_tx_hash", receipt.TxHash),
		zap.Uint64("block_number", receipt.BlockNumber),
		zap.Uint64("gas_used", receipt.GasUsed))
	return nil
}
