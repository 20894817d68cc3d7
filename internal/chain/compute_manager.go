package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/relay"
)

// Backend is the part of an Ethereum client the ComputeManager needs. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// ComputeManager is the relay.Chain backed by the ComputeManager contract.
type ComputeManager struct {
	address   common.Address
	contract  *bind.BoundContract
	backend   Backend
	auth      *bind.TransactOpts
	timeout   time.Duration
	retryOpts []retry.Option
	logger    *zap.Logger
}

// NewComputeManager binds the contract at address. auth may be nil for a read-only client.
func NewComputeManager(
	address common.Address,
	backend Backend,
	auth *bind.TransactOpts,
	timeout time.Duration,
	logger *zap.Logger,
) (*ComputeManager, error) {
	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ComputeManager abi: %w", err)
	}

	return &ComputeManager{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		backend:  backend,
		auth:     auth,
		timeout:  timeout,
		retryOpts: []retry.Option{
			retry.Attempts(3),
			retry.Delay(500 * time.Millisecond),
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				return errors.Is(err, relay.ErrTransport)
			}),
		},
		logger: logger,
	}, nil
}

// HasTx is a read-only call, so transport failures are retried a few times before giving up.
func (m *ComputeManager) HasTx(ctx context.Context, hash common.Hash) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var exists bool
	err := retry.Do(func() error {
		var out []interface{}
		if err := m.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodHasTx, [32]byte(hash)); err != nil {
			return classify(methodHasTx, err)
		}
		if len(out) != 1 {
			return fmt.Errorf("%s: %w: unexpected output length %d", methodHasTx, relay.ErrTransport, len(out))
		}
		v, ok := out[0].(bool)
		if !ok {
			return fmt.Errorf("%s: %w: unexpected output type %T", methodHasTx, relay.ErrTransport, out[0])
		}
		exists = v
		return nil
	}, append([]retry.Option{
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			m.logger.Debug("retrying hasTx call", zap.Uint("attempt", n), zap.Error(err))
		}),
	}, m.retryOpts...)...)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (m *ComputeManager) SubmitComputeCommitment(
	ctx context.Context,
	assignmentTxHash, commitmentTxHash, computeRootHash common.Hash,
	sig relay.Signature,
) (*relay.Receipt, error) {
	return m.transact(ctx, methodSubmitComputeCommitment,
		[32]byte(assignmentTxHash), [32]byte(commitmentTxHash), [32]byte(computeRootHash), toContractSignature(sig))
}

func (m *ComputeManager) SubmitComputeVerification(
	ctx context.Context,
	verificationTxHash, assignmentTxHash common.Hash,
	sig relay.Signature,
) (*relay.Receipt, error) {
	return m.transact(ctx, methodSubmitComputeVerification,
		[32]byte(verificationTxHash), [32]byte(assignmentTxHash), toContractSignature(sig))
}

// transact sends the call and waits until it is mined.
func (m *ComputeManager) transact(ctx context.Context, method string, params ...interface{}) (*relay.Receipt, error) {
	if m.auth == nil {
		return nil, fmt.Errorf("%s: no transactor configured", method)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	opts := *m.auth
	opts.Context = ctx

	tx, err := m.contract.Transact(&opts, method, params...)
	if err != nil {
		return nil, classify(method, err)
	}
	m.logger.Debug("sent contract transaction", zap.String("method", method), zap.Stringer("chain_tx_hash", tx.Hash()))

	receipt, err := bind.WaitMined(ctx, m.backend, tx)
	if err != nil {
		return nil, classify(method, err)
	}
	if err := checkReceipt(method, receipt); err != nil {
		return nil, err
	}

	return &relay.Receipt{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

func checkReceipt(method string, receipt *types.Receipt) error {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%s: %w: transaction %s reverted in block %s",
			method, relay.ErrChainRejected, receipt.TxHash, receipt.BlockNumber)
	}
	return nil
}

func toContractSignature(sig relay.Signature) signature {
	return signature{S: sig.S, R: sig.R, RId: sig.RID}
}

// classify maps an ethclient error onto the relay error taxonomy. Reverts detected while estimating gas
// or simulating a call are rejections, everything else is a transport failure.
func classify(method string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%s: %w: %s", method, relay.ErrChainRejected, err)
	}
	return fmt.Errorf("%s: %w: %s", method, relay.ErrTransport, err)
}
