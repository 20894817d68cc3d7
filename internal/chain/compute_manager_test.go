package chain

import (
	"context"
	"errors"
	"math/big"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/relay"
)

func TestABISelectors(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	require.NoError(t, err)

	tests := map[string]string{
		methodHasTx:                     "hasTx(bytes32)",
		methodSubmitComputeCommitment:   "submitComputeCommitment(bytes32,bytes32,bytes32,(bytes32,bytes32,uint8))",
		methodSubmitComputeVerification: "submitComputeVerification(bytes32,bytes32,(bytes32,bytes32,uint8))",
	}
	for name, sig := range tests {
		method, ok := parsed.Methods[name]
		require.True(t, ok, name)
		assert.Equal(t, sig, method.Sig)
		assert.Equal(t, crypto.Keccak256([]byte(sig))[:4], method.ID)
	}
}

func TestPackCommitment(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	require.NoError(t, err)

	sig := toContractSignature(relay.Signature{S: common.HexToHash("0x05"), R: common.HexToHash("0x06"), RID: 1})
	data, err := parsed.Pack(methodSubmitComputeCommitment,
		[32]byte(common.HexToHash("0x0a")), [32]byte(common.HexToHash("0x01")), [32]byte(common.HexToHash("0x0b")), sig)
	require.NoError(t, err)
	// selector + 3 words + static tuple of 3 words
	assert.Len(t, data, 4+6*32)
	assert.Equal(t, byte(1), data[len(data)-1])

	args, err := parsed.Methods[methodSubmitComputeCommitment].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, args, 4)
	assert.Equal(t, [32]byte(common.HexToHash("0x01")), args[1])
}

// fakeEth answers eth_call for hasTx against a fixed set of known hashes, accepts raw transactions and
// mines each of them into a receipt with receiptStatus.
type fakeEth struct {
	known         map[common.Hash]bool
	err           error
	calls         atomic.Int32
	receiptStatus uint64

	mu   sync.Mutex
	sent []*types.Transaction
}

func (f *fakeEth) SendRawTransaction(input hexutil.Bytes) (common.Hash, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(input); err != nil {
		return common.Hash{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return tx.Hash(), nil
}

func (f *fakeEth) GetTransactionReceipt(hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.sent {
		if tx.Hash() == hash {
			return &types.Receipt{
				Type:              types.LegacyTxType,
				Status:            f.receiptStatus,
				CumulativeGasUsed: 52000,
				GasUsed:           52000,
				Logs:              []*types.Log{},
				TxHash:            hash,
				BlockHash:         common.HexToHash("0xb1"),
				BlockNumber:       big.NewInt(7),
			}, nil
		}
	}
	return nil, nil
}

func (f *fakeEth) GetTransactionCount(common.Address, string) (hexutil.Uint64, error) {
	return 0, nil
}

func (f *fakeEth) GetCode(common.Address, string) (hexutil.Bytes, error) {
	return hexutil.Bytes{0x60, 0x80}, nil
}

func (f *fakeEth) sentTxs() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*types.Transaction(nil), f.sent...)
}

func (f *fakeEth) Call(args map[string]interface{}, _ string) (hexutil.Bytes, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}

	input, _ := args["input"].(string)
	if input == "" {
		input, _ = args["data"].(string)
	}
	data, err := hexutil.Decode(input)
	if err != nil {
		return nil, err
	}
	if len(data) != 4+32 {
		return nil, errors.New("bad calldata")
	}

	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	if err != nil {
		return nil, err
	}
	return parsed.Methods[methodHasTx].Outputs.Pack(f.known[common.BytesToHash(data[4:])])
}

func newTestManager(t *testing.T, fake *fakeEth) *ComputeManager {
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", fake))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})

	rpcClient, err := rpc.DialContext(context.Background(), httpServer.URL)
	require.NoError(t, err)
	backend := ethclient.NewClient(rpcClient)
	t.Cleanup(backend.Close)

	manager, err := NewComputeManager(common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		backend, nil, time.Second, zap.NewNop())
	require.NoError(t, err)
	manager.retryOpts = []retry.Option{
		retry.Attempts(3),
		retry.Delay(time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return errors.Is(err, relay.ErrTransport) }),
	}
	return manager
}

func TestHasTx(t *testing.T) {
	known := common.HexToHash("0x01")
	manager := newTestManager(t, &fakeEth{known: map[common.Hash]bool{known: true}})
	ctx := context.Background()

	exists, err := manager.HasTx(ctx, known)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = manager.HasTx(ctx, common.HexToHash("0x02"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHasTxRetriesTransportErrors(t *testing.T) {
	fake := &fakeEth{err: errors.New("upstream unavailable")}
	manager := newTestManager(t, fake)

	_, err := manager.HasTx(context.Background(), common.HexToHash("0x01"))
	require.ErrorIs(t, err, relay.ErrTransport)
	assert.Equal(t, int32(3), fake.calls.Load())
}

func TestHasTxDoesNotRetryReverts(t *testing.T) {
	fake := &fakeEth{err: errors.New("execution reverted")}
	manager := newTestManager(t, fake)

	_, err := manager.HasTx(context.Background(), common.HexToHash("0x01"))
	require.ErrorIs(t, err, relay.ErrChainRejected)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestSubmitWithoutTransactor(t *testing.T) {
	manager := newTestManager(t, &fakeEth{})

	_, err := manager.SubmitComputeVerification(context.Background(),
		common.HexToHash("0x02"), common.HexToHash("0x0a"), relay.Signature{})
	require.Error(t, err)
}

func withTransactor(t *testing.T, manager *ComputeManager) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(31337))
	require.NoError(t, err)
	auth.GasPrice = big.NewInt(1)
	auth.GasLimit = 200000
	auth.Nonce = big.NewInt(0)
	manager.auth = auth
}

func TestSubmitComputeCommitment(t *testing.T) {
	fake := &fakeEth{receiptStatus: types.ReceiptStatusSuccessful}
	manager := newTestManager(t, fake)
	withTransactor(t, manager)

	sig := relay.Signature{S: common.HexToHash("0x05"), R: common.HexToHash("0x06"), RID: 1}
	receipt, err := manager.SubmitComputeCommitment(context.Background(),
		common.HexToHash("0x0a"), common.HexToHash("0x01"), common.HexToHash("0x0b"), sig)
	require.NoError(t, err)

	sent := fake.sentTxs()
	require.Len(t, sent, 1)
	assert.Equal(t, manager.address, *sent[0].To())

	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	require.NoError(t, err)
	expected, err := parsed.Pack(methodSubmitComputeCommitment,
		[32]byte(common.HexToHash("0x0a")), [32]byte(common.HexToHash("0x01")), [32]byte(common.HexToHash("0x0b")),
		toContractSignature(sig))
	require.NoError(t, err)
	assert.Equal(t, expected, sent[0].Data())

	assert.Equal(t, &relay.Receipt{TxHash: sent[0].Hash(), BlockNumber: 7, GasUsed: 52000}, receipt)
}

func TestSubmitComputeVerificationReverted(t *testing.T) {
	fake := &fakeEth{receiptStatus: types.ReceiptStatusFailed}
	manager := newTestManager(t, fake)
	withTransactor(t, manager)

	_, err := manager.SubmitComputeVerification(context.Background(),
		common.HexToHash("0x02"), common.HexToHash("0x0a"), relay.Signature{RID: 1})
	require.ErrorIs(t, err, relay.ErrChainRejected)

	sent := fake.sentTxs()
	require.Len(t, sent, 1)
	parsed, err := abi.JSON(strings.NewReader(computeManagerABI))
	require.NoError(t, err)
	assert.Equal(t, parsed.Methods[methodSubmitComputeVerification].ID, sent[0].Data()[:4])
}

func TestCheckReceipt(t *testing.T) {
	ok := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)}
	require.NoError(t, checkReceipt(methodSubmitComputeCommitment, ok))

	reverted := &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(11)}
	err := checkReceipt(methodSubmitComputeCommitment, reverted)
	require.ErrorIs(t, err, relay.ErrChainRejected)
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify("m", errors.New("dial tcp: connection refused")), relay.ErrTransport)
	assert.ErrorIs(t, classify("m", errors.New("execution reverted: tx already exists")), relay.ErrChainRejected)
	assert.ErrorIs(t, classify("m", context.Canceled), context.Canceled)
}
