package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

const (
	EnvPrefix = "RELAYER"
	// SignerKeyEnv holds the hex encoded secp256k1 key the relayer signs chain transactions with.
	SignerKeyEnv = "SC_CLIENT_WALLET_SECRET_KEY"
)

var (
	ErrConfig     = errors.New("invalid config")
	ErrCredential = errors.New("invalid credential")
)

// RelayerConfig describes the relayer's configuration
type RelayerConfig struct {
	Chain          ChainConfig     `envconfig:"CHAIN"`
	Sequencer      SequencerConfig `envconfig:"SEQUENCER"`
	StoragePath    string          `envconfig:"STORAGE_PATH" default:"storage/compute-relayer"`
	TickInterval   time.Duration   `envconfig:"TICK_INTERVAL" default:"10s"`
	BatchSize      uint64          `envconfig:"BATCH_SIZE" default:"10"`
	PrometheusPort uint16          `envconfig:"PROMETHEUS_PORT" default:"9999"`
	WebserverPort  uint16          `envconfig:"WEBSERVER_PORT" default:"10001"`
}

// ChainConfig describes the EVM chain the ComputeManager contract lives on.
type ChainConfig struct {
	RPCAddr         string        `envconfig:"RPC_ADDR" default:"http://127.0.0.1:8545"`
	ChainID         uint64        `envconfig:"CHAIN_ID" default:"31337"`
	ContractAddress string        `envconfig:"CONTRACT_ADDRESS" required:"true"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

type SequencerConfig struct {
	RPCAddr string        `envconfig:"RPC_ADDR" default:"http://127.0.0.1:60000"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// NewRelayerConfig reads the config from RELAYER_* env variables and validates it.
func NewRelayerConfig(logger *zap.Logger) (RelayerConfig, error) {
	var cfg RelayerConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: failed to process env: %s", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Info("loaded relayer config",
		zap.String("chain_rpc_addr", cfg.Chain.RPCAddr),
		zap.Uint64("chain_id", cfg.Chain.ChainID),
		zap.String("contract_address", cfg.Chain.ContractAddress),
		zap.String("sequencer_rpc_addr", cfg.Sequencer.RPCAddr),
		zap.String("storage_path", cfg.StoragePath),
		zap.Duration("tick_interval", cfg.TickInterval),
		zap.Uint64("batch_size", cfg.BatchSize))
	return cfg, nil
}

// Validate checks values envconfig can't check by itself.
func (c RelayerConfig) Validate() error {
	if !common.IsHexAddress(c.Chain.ContractAddress) {
		return fmt.Errorf("%w: contract address %q is not a hex address", ErrConfig, c.Chain.ContractAddress)
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("%w: chain id must be positive", ErrConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrConfig, c.TickInterval)
	}
	if c.BatchSize == 0 {
		return fmt.Errorf("%w: batch size must be positive", ErrConfig)
	}
	if c.StoragePath == "" {
		return fmt.Errorf("%w: storage path is empty", ErrConfig)
	}
	return nil
}

// LoadSignerKey reads the signer key from SC_CLIENT_WALLET_SECRET_KEY.
func LoadSignerKey() (*ecdsa.PrivateKey, error) {
	secret, ok := os.LookupEnv(SignerKeyEnv)
	if !ok || secret == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrCredential, SignerKeyEnv)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(secret, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %s", ErrCredential, SignerKeyEnv, err)
	}
	return key, nil
}
