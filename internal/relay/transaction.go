package relay

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TxBody is the kind-specific payload of a Transaction. The set of implementations is closed:
// every body type lives in this file.
type TxBody interface {
	Kind() TxKind
	isTxBody()
}

// ComputeRequest asks the network to compute scores for a domain. It is never relayed on-chain.
type ComputeRequest struct {
	UserID          common.Hash `json:"user_id"`
	ComputeID       common.Hash `json:"compute_id"`
	SeedTrustUpdate common.Hash `json:"seed_trust_update"`
}

// ComputeCommitment is the computer's commitment to the result of an assigned job.
type ComputeCommitment struct {
	AssignmentTxHash common.Hash   `json:"assignment_tx_hash"`
	ComputeRootHash  common.Hash   `json:"compute_root_hash"`
	ScoresTxHashes   []common.Hash `json:"scores_tx_hashes"`
}

// ComputeVerification is a verifier's verdict on a committed job.
type ComputeVerification struct {
	AssignmentTxHash   common.Hash `json:"assignment_tx_hash"`
	VerificationResult bool        `json:"verification_result"`
}

// OpaqueBody carries the payload of kinds the relayer never inspects.
type OpaqueBody struct {
	TxKind TxKind
	Raw    json.RawMessage
}

func (*ComputeRequest) Kind() TxKind      { return KindComputeRequest }
func (*ComputeCommitment) Kind() TxKind   { return KindComputeCommitment }
func (*ComputeVerification) Kind() TxKind { return KindComputeVerification }
func (b *OpaqueBody) Kind() TxKind        { return b.TxKind }

func (*ComputeRequest) isTxBody()      {}
func (*ComputeCommitment) isTxBody()   {}
func (*ComputeVerification) isTxBody() {}
func (*OpaqueBody) isTxBody()          {}

// Transaction is a signed sequencer transaction.
type Transaction struct {
	Hash      common.Hash
	Body      TxBody
	Signature Signature
}

// Kind returns the discriminator of the transaction body.
func (tx *Transaction) Kind() TxKind {
	if tx.Body == nil {
		return ""
	}
	return tx.Body.Kind()
}

type transactionJSON struct {
	Kind      TxKind          `json:"kind"`
	Hash      common.Hash     `json:"hash"`
	Body      json.RawMessage `json:"body"`
	Signature Signature       `json:"signature"`
}

func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal transaction envelope: %w", err)
	}
	if _, ok := kindPrefixes[raw.Kind]; !ok {
		return fmt.Errorf("unknown transaction kind %q", raw.Kind)
	}

	var body TxBody
	switch raw.Kind {
	case KindComputeRequest:
		body = &ComputeRequest{}
	case KindComputeCommitment:
		body = &ComputeCommitment{}
	case KindComputeVerification:
		body = &ComputeVerification{}
	default:
		body = &OpaqueBody{TxKind: raw.Kind, Raw: raw.Body}
	}
	switch raw.Kind {
	case KindComputeCommitment, KindComputeVerification:
		if len(raw.Body) == 0 || string(raw.Body) == "null" {
			return fmt.Errorf("%s transaction has no body", raw.Kind)
		}
	}
	if _, opaque := body.(*OpaqueBody); !opaque && len(raw.Body) > 0 {
		if err := json.Unmarshal(raw.Body, body); err != nil {
			return fmt.Errorf("failed to unmarshal %s body: %w", raw.Kind, err)
		}
	}

	tx.Hash = raw.Hash
	tx.Body = body
	tx.Signature = raw.Signature
	return nil
}

func (tx Transaction) MarshalJSON() ([]byte, error) {
	var (
		body []byte
		err  error
	)
	if opaque, ok := tx.Body.(*OpaqueBody); ok {
		body = opaque.Raw
	} else {
		body, err = json.Marshal(tx.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s body: %w", tx.Kind(), err)
		}
	}
	return json.Marshal(transactionJSON{
		Kind:      tx.Kind(),
		Hash:      tx.Hash,
		Body:      body,
		Signature: tx.Signature,
	})
}
