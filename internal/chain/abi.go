package chain

// computeManagerABI covers the part of the ComputeManager contract the relayer calls.
const computeManagerABI = `[
	{
		"type": "function",
		"name": "hasTx",
		"stateMutability": "view",
		"inputs": [{"name": "txHash", "type": "bytes32"}],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"type": "function",
		"name": "submitComputeCommitment",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "computeAssignmentTxHash", "type": "bytes32"},
			{"name": "computeCommitmentTxHash", "type": "bytes32"},
			{"name": "computeRootHash", "type": "bytes32"},
			{
				"name": "sig",
				"type": "tuple",
				"components": [
					{"name": "s", "type": "bytes32"},
					{"name": "r", "type": "bytes32"},
					{"name": "r_id", "type": "uint8"}
				]
			}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "submitComputeVerification",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "computeVerificationTxHash", "type": "bytes32"},
			{"name": "computeAssignmentTxHash", "type": "bytes32"},
			{
				"name": "sig",
				"type": "tuple",
				"components": [
					{"name": "s", "type": "bytes32"},
					{"name": "r", "type": "bytes32"},
					{"name": "r_id", "type": "uint8"}
				]
			}
		],
		"outputs": []
	}
]`

const (
	methodHasTx                     = "hasTx"
	methodSubmitComputeCommitment   = "submitComputeCommitment"
	methodSubmitComputeVerification = "submitComputeVerification"
)

// signature is the Go form of the contract's Signature tuple.
type signature struct {
	S   [32]byte
	R   [32]byte
	RId uint8
}
