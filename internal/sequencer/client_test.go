package sequencer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/relay"
)

type notFoundError struct{}

func (notFoundError) Error() string  { return "record not found" }
func (notFoundError) ErrorCode() int { return errCodeNotFound }

type internalError struct{}

func (internalError) Error() string  { return "database is locked" }
func (internalError) ErrorCode() int { return -32000 }

// fakeSequencer serves the sequencer namespace over JSON-RPC.
type fakeSequencer struct {
	results map[uint64]*relay.ComputeResult
	txs     map[common.Hash]*relay.Transaction
	broken  bool
	calls   atomic.Int32
}

func (f *fakeSequencer) GetComputeResult(seq uint64) (*relay.ComputeResult, error) {
	f.calls.Add(1)
	if f.broken {
		return nil, internalError{}
	}
	result, ok := f.results[seq]
	if !ok {
		return nil, notFoundError{}
	}
	return result, nil
}

func (f *fakeSequencer) GetTx(prefix string, hash common.Hash) (*relay.Transaction, error) {
	f.calls.Add(1)
	tx, ok := f.txs[hash]
	if !ok || tx.Kind().Prefix() != prefix {
		return nil, nil
	}
	return tx, nil
}

func newTestClient(t *testing.T, fake *fakeSequencer) *Client {
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("sequencer", fake))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})

	client, err := NewClient(context.Background(), httpServer.URL, time.Second, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

var (
	commitment = &relay.Transaction{
		Hash: common.HexToHash("0x01"),
		Body: &relay.ComputeCommitment{
			AssignmentTxHash: common.HexToHash("0x0a"),
			ComputeRootHash:  common.HexToHash("0x0b"),
		},
		Signature: relay.Signature{S: common.HexToHash("0x05"), R: common.HexToHash("0x06"), RID: 1},
	}
	verification = &relay.Transaction{
		Hash: common.HexToHash("0x02"),
		Body: &relay.ComputeVerification{AssignmentTxHash: common.HexToHash("0x0a"), VerificationResult: true},
	}
)

func newFake() *fakeSequencer {
	return &fakeSequencer{
		results: map[uint64]*relay.ComputeResult{
			7: {
				SeqNumber:                   7,
				ComputeCommitmentTxHash:     commitment.Hash,
				ComputeVerificationTxHashes: []common.Hash{verification.Hash},
			},
		},
		txs: map[common.Hash]*relay.Transaction{
			commitment.Hash:   commitment,
			verification.Hash: verification,
		},
	}
}

func TestGetComputeResult(t *testing.T) {
	client := newTestClient(t, newFake())

	result, err := client.GetComputeResult(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), result.SeqNumber)
	assert.Equal(t, commitment.Hash, result.ComputeCommitmentTxHash)
	assert.Equal(t, []common.Hash{verification.Hash}, result.ComputeVerificationTxHashes)
}

func TestGetComputeResultNotFound(t *testing.T) {
	client := newTestClient(t, newFake())

	_, err := client.GetComputeResult(context.Background(), 8)
	require.ErrorIs(t, err, relay.ErrNotFound)
}

func TestGetComputeResultServerError(t *testing.T) {
	fake := newFake()
	fake.broken = true
	client := newTestClient(t, fake)

	_, err := client.GetComputeResult(context.Background(), 7)
	require.ErrorIs(t, err, relay.ErrTransport)
	require.NotErrorIs(t, err, relay.ErrNotFound)
}

func TestGetTx(t *testing.T) {
	client := newTestClient(t, newFake())

	tx, err := client.GetTx(context.Background(), "commitment", commitment.Hash)
	require.NoError(t, err)
	assert.Equal(t, commitment.Hash, tx.Hash)
	assert.Equal(t, commitment.Body, tx.Body)
	assert.Equal(t, commitment.Signature, tx.Signature)

	_, err = client.GetTx(context.Background(), "verification", commitment.Hash)
	require.ErrorIs(t, err, relay.ErrNotFound)
}

func TestGetTxsKeepsOrder(t *testing.T) {
	fake := newFake()
	client := newTestClient(t, fake)

	txs, err := client.GetTxs(context.Background(), []relay.TxRef{
		{Prefix: "verification", Hash: verification.Hash},
		{Prefix: "commitment", Hash: commitment.Hash},
	})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, verification.Hash, txs[0].Hash)
	assert.Equal(t, relay.KindComputeVerification, txs[0].Kind())
	assert.Equal(t, commitment.Hash, txs[1].Hash)
	assert.Equal(t, relay.KindComputeCommitment, txs[1].Kind())
}

func TestGetTxsMissing(t *testing.T) {
	client := newTestClient(t, newFake())

	_, err := client.GetTxs(context.Background(), []relay.TxRef{
		{Prefix: "commitment", Hash: commitment.Hash},
		{Prefix: "commitment", Hash: common.HexToHash("0xff")},
	})
	require.ErrorIs(t, err, relay.ErrNotFound)
}

func TestGetTxsEmpty(t *testing.T) {
	fake := newFake()
	client := newTestClient(t, fake)

	txs, err := client.GetTxs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestUnreachableSequencer(t *testing.T) {
	httpServer := httptest.NewServer(nil)
	addr := httpServer.URL
	httpServer.Close()

	client, err := NewClient(context.Background(), addr, time.Second, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetComputeResult(context.Background(), 1)
	require.ErrorIs(t, err, relay.ErrTransport)
}

func TestMethodNotFoundIsTransportError(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": -32601, "message": "Method not found"},
		})
	}))
	defer httpServer.Close()

	client, err := NewClient(context.Background(), httpServer.URL, time.Second, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetComputeResult(context.Background(), 1)
	require.ErrorIs(t, err, relay.ErrTransport)
	require.NotErrorIs(t, err, relay.ErrNotFound)
}
