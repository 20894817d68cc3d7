package sequencer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/relay"
)

const (
	methodGetComputeResult = "sequencer_getComputeResult"
	methodGetTx            = "sequencer_getTx"

	// errCodeNotFound is the JSON-RPC error code the sequencer answers with for unknown records.
	errCodeNotFound = -32001
)

// Client is the relay.Sequencer backed by the sequencer's JSON-RPC API.
type Client struct {
	rpc     *rpc.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient dials the sequencer at addr. Every call is bounded by timeout.
func NewClient(ctx context.Context, addr string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	c, err := rpc.DialContext(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial sequencer at %s: %w", addr, err)
	}
	return &Client{rpc: c, timeout: timeout, logger: logger}, nil
}

func (c *Client) GetComputeResult(ctx context.Context, seq uint64) (*relay.ComputeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result *relay.ComputeResult
	if err := c.rpc.CallContext(ctx, &result, methodGetComputeResult, seq); err != nil {
		return nil, classify(methodGetComputeResult, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%s(%d): %w", methodGetComputeResult, seq, relay.ErrNotFound)
	}

	c.logger.Debug("got compute result",
		zap.Uint64("seq_number", seq),
		zap.Int("verifications", len(result.ComputeVerificationTxHashes)))
	return result, nil
}

func (c *Client) GetTx(ctx context.Context, prefix string, hash common.Hash) (*relay.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var tx *relay.Transaction
	if err := c.rpc.CallContext(ctx, &tx, methodGetTx, prefix, hash); err != nil {
		return nil, classify(methodGetTx, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("%s(%s:%s): %w", methodGetTx, prefix, hash, relay.ErrNotFound)
	}
	return tx, nil
}

// GetTxs fetches refs with a single batch request. The result has the same length and order as refs.
func (c *Client) GetTxs(ctx context.Context, refs []relay.TxRef) ([]*relay.Transaction, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	txs := make([]*relay.Transaction, len(refs))
	batch := make([]rpc.BatchElem, len(refs))
	for i, ref := range refs {
		batch[i] = rpc.BatchElem{
			Method: methodGetTx,
			Args:   []interface{}{ref.Prefix, ref.Hash},
			Result: &txs[i],
		}
	}

	if err := c.rpc.BatchCallContext(ctx, batch); err != nil {
		return nil, classify(methodGetTx+" batch", err)
	}
	for i, elem := range batch {
		if elem.Error != nil {
			return nil, fmt.Errorf("failed to get %s: %w", refs[i], classify(methodGetTx, elem.Error))
		}
		if txs[i] == nil {
			return nil, fmt.Errorf("%s(%s): %w", methodGetTx, refs[i], relay.ErrNotFound)
		}
	}

	c.logger.Debug("got transactions", zap.Int("count", len(txs)))
	return txs, nil
}

func (c *Client) Close() {
	c.rpc.Close()
}

// classify maps JSON-RPC failures onto the relay error taxonomy. Only errCodeNotFound means the record
// doesn't exist yet; standard errors like "Method not found" (-32601) point at a misconfigured endpoint.
func classify(method string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		if rpcErr.ErrorCode() == errCodeNotFound {
			return fmt.Errorf("%s: %w: %s", method, relay.ErrNotFound, err)
		}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%s: %w: %s", method, relay.ErrTransport, err)
}
