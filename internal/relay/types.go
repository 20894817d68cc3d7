package relay

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TxKind is the discriminator of a sequencer transaction.
type TxKind string

const (
	KindComputeRequest      TxKind = "ComputeRequest"
	KindComputeAssignment   TxKind = "ComputeAssignment"
	KindComputeScores       TxKind = "ComputeScores"
	KindComputeCommitment   TxKind = "ComputeCommitment"
	KindComputeVerification TxKind = "ComputeVerification"
	KindTrustUpdate         TxKind = "TrustUpdate"
	KindSeedUpdate          TxKind = "SeedUpdate"
	KindProposedBlock       TxKind = "ProposedBlock"
	KindFinalisedBlock      TxKind = "FinalisedBlock"
)

var kindPrefixes = map[TxKind]string{
	KindComputeRequest:      "request",
	KindComputeAssignment:   "assignment",
	KindComputeScores:       "scores",
	KindComputeCommitment:   "commitment",
	KindComputeVerification: "verification",
	KindTrustUpdate:         "trust_update",
	KindSeedUpdate:          "seed_update",
	KindProposedBlock:       "proposed_block",
	KindFinalisedBlock:      "finalised_block",
}

// Prefix returns the logical tag the sequencer uses to look transactions of this kind up.
func (k TxKind) Prefix() string {
	return kindPrefixes[k]
}

// KindFromPrefix is the inverse of TxKind.Prefix.
func KindFromPrefix(prefix string) (TxKind, bool) {
	for kind, p := range kindPrefixes {
		if p == prefix {
			return kind, true
		}
	}
	return "", false
}

// ComputeResult links a sequence number to its commitment and verification transactions.
// Empty ComputeVerificationTxHashes means the compute job has not been verified yet.
type ComputeResult struct {
	SeqNumber                   uint64        `json:"seq_number"`
	ComputeCommitmentTxHash     common.Hash   `json:"compute_commitment_tx_hash"`
	ComputeVerificationTxHashes []common.Hash `json:"compute_verification_tx_hashes"`
	ComputeRequestTxHash        common.Hash   `json:"compute_request_tx_hash"`
}

// IsVerified reports whether at least one verification has been recorded for the result.
func (r *ComputeResult) IsVerified() bool {
	return len(r.ComputeVerificationTxHashes) > 0
}

// SubmissionRefs returns the references to relay for the result: the commitment first, then every
// verification in the order the sequencer returned them.
func (r *ComputeResult) SubmissionRefs() []TxRef {
	refs := make([]TxRef, 0, 1+len(r.ComputeVerificationTxHashes))
	refs = append(refs, TxRef{Prefix: KindComputeCommitment.Prefix(), Hash: r.ComputeCommitmentTxHash})
	for _, h := range r.ComputeVerificationTxHashes {
		refs = append(refs, TxRef{Prefix: KindComputeVerification.Prefix(), Hash: h})
	}
	return refs
}

// TxRef addresses a single sequencer transaction by kind prefix and hash.
type TxRef struct {
	Prefix string
	Hash   common.Hash
}

// ParseTxRef parses the "<prefix>:<hex hash>" form.
func ParseTxRef(s string) (TxRef, error) {
	prefix, hexHash, ok := strings.Cut(s, ":")
	if !ok {
		return TxRef{}, fmt.Errorf("tx reference %q is not in <prefix>:<hash> form", s)
	}
	if _, known := KindFromPrefix(prefix); !known {
		return TxRef{}, fmt.Errorf("unknown tx kind prefix %q", prefix)
	}
	if !strings.HasPrefix(hexHash, "0x") {
		hexHash = "0x" + hexHash
	}
	b, err := hexutil.Decode(hexHash)
	if err != nil {
		return TxRef{}, fmt.Errorf("tx hash %q: %w", hexHash, err)
	}
	if len(b) != common.HashLength {
		return TxRef{}, fmt.Errorf("tx hash %q must be %d bytes long", hexHash, common.HashLength)
	}
	return TxRef{Prefix: prefix, Hash: common.BytesToHash(b)}, nil
}

func (r TxRef) String() string {
	return r.Prefix + ":" + strings.TrimPrefix(r.Hash.Hex(), "0x")
}

// Signature is the recoverable ECDSA signature the sequencer attached to a transaction.
type Signature struct {
	S   common.Hash `json:"s"`
	R   common.Hash `json:"r"`
	RID uint8       `json:"r_id"`
}

// FailedSequence is a record of a sequence number whose last attempt ended with an error.
type FailedSequence struct {
	SeqNumber uint64    `json:"seq_number"`
	Message   string    `json:"message"`
	FailedAt  time.Time `json:"failed_at"`
}
