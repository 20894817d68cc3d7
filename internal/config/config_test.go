package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func TestNewRelayerConfigDefaults(t *testing.T) {
	t.Setenv("RELAYER_CHAIN_CONTRACT_ADDRESS", testContract)

	cfg, err := NewRelayerConfig(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, testContract, cfg.Chain.ContractAddress)
	assert.Equal(t, uint64(31337), cfg.Chain.ChainID)
	assert.Equal(t, 10*time.Second, cfg.TickInterval)
	assert.Equal(t, uint64(10), cfg.BatchSize)
	assert.Equal(t, "http://127.0.0.1:60000", cfg.Sequencer.RPCAddr)
}

func TestNewRelayerConfigOverrides(t *testing.T) {
	t.Setenv("RELAYER_CHAIN_CONTRACT_ADDRESS", testContract)
	t.Setenv("RELAYER_CHAIN_CHAIN_ID", "11155111")
	t.Setenv("RELAYER_TICK_INTERVAL", "3s")
	t.Setenv("RELAYER_BATCH_SIZE", "25")
	t.Setenv("RELAYER_SEQUENCER_RPC_ADDR", "http://sequencer:60000")

	cfg, err := NewRelayerConfig(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), cfg.Chain.ChainID)
	assert.Equal(t, 3*time.Second, cfg.TickInterval)
	assert.Equal(t, uint64(25), cfg.BatchSize)
	assert.Equal(t, "http://sequencer:60000", cfg.Sequencer.RPCAddr)
}

func TestNewRelayerConfigMissingContract(t *testing.T) {
	t.Setenv("RELAYER_CHAIN_CONTRACT_ADDRESS", "")

	_, err := NewRelayerConfig(zap.NewNop())
	require.ErrorIs(t, err, ErrConfig)
}

func TestValidate(t *testing.T) {
	valid := RelayerConfig{
		Chain:        ChainConfig{ChainID: 1, ContractAddress: testContract},
		StoragePath:  "db",
		TickInterval: time.Second,
		BatchSize:    1,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *RelayerConfig)
	}{
		{"BadAddress", func(c *RelayerConfig) { c.Chain.ContractAddress = "not-an-address" }},
		{"ZeroChainID", func(c *RelayerConfig) { c.Chain.ChainID = 0 }},
		{"ZeroInterval", func(c *RelayerConfig) { c.TickInterval = 0 }},
		{"ZeroBatch", func(c *RelayerConfig) { c.BatchSize = 0 }},
		{"EmptyStorage", func(c *RelayerConfig) { c.StoragePath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrConfig)
		})
	}
}

func TestLoadSignerKey(t *testing.T) {
	t.Setenv(SignerKeyEnv, "")
	_, err := LoadSignerKey()
	require.ErrorIs(t, err, ErrCredential)

	t.Setenv(SignerKeyEnv, "zz")
	_, err = LoadSignerKey()
	require.ErrorIs(t, err, ErrCredential)

	t.Setenv(SignerKeyEnv, "0xc87f65ff3f271bf5dc8643484f66b200109caffe4bf98c4cb393dc35740b28c0")
	key, err := LoadSignerKey()
	require.NoError(t, err)
	require.NotNil(t, key)
}
