package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/chain"
	"github.com/openrank/compute-relayer/internal/config"
	"github.com/openrank/compute-relayer/internal/pipeline"
	"github.com/openrank/compute-relayer/internal/relay"
	"github.com/openrank/compute-relayer/internal/sequencer"
)

type DependencyContainer struct {
	ethClient *ethclient.Client
	sequencer *sequencer.Client
	pipeline  *pipeline.SubmissionPipeline
}

// NewDefaultDependencyContainer dials the chain and the sequencer and wires the submission pipeline.
func NewDefaultDependencyContainer(
	ctx context.Context,
	cfg config.RelayerConfig,
	logRegistry *nlogger.Registry,
) (*DependencyContainer, error) {
	logger := logRegistry.Get(AppContext)

	signerKey, err := config.LoadSignerKey()
	if err != nil {
		return nil, err
	}

	ethClient, err := dialChain(ctx, cfg.Chain, logger)
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(signerKey, new(big.Int).SetUint64(cfg.Chain.ChainID))
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("%w: failed to create transactor: %s", config.ErrCredential, err)
	}

	computeManager, err := chain.NewComputeManager(
		common.HexToAddress(cfg.Chain.ContractAddress),
		ethClient,
		auth,
		cfg.Chain.Timeout,
		logRegistry.Get(ChainContext),
	)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("failed to bind ComputeManager: %w", err)
	}

	sequencerClient, err := sequencer.NewClient(ctx, cfg.Sequencer.RPCAddr, cfg.Sequencer.Timeout, logRegistry.Get(SequencerContext))
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	logger.Info("dependencies initialized",
		zap.Stringer("signer", auth.From),
		zap.String("contract_address", cfg.Chain.ContractAddress))

	return &DependencyContainer{
		ethClient: ethClient,
		sequencer: sequencerClient,
		pipeline:  pipeline.NewSubmissionPipeline(sequencerClient, computeManager, logRegistry.Get(PipelineContext)),
	}, nil
}

// dialChain connects to the chain and makes sure it is the one the config points at.
func dialChain(ctx context.Context, cfg config.ChainConfig, logger *zap.Logger) (*ethclient.Client, error) {
	var client *ethclient.Client
	if err := retry.Do(func() error {
		dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		c, err := ethclient.DialContext(dialCtx, cfg.RPCAddr)
		if err != nil {
			return err
		}
		chainID, err := c.ChainID(dialCtx)
		if err != nil {
			c.Close()
			return err
		}
		if chainID.Uint64() != cfg.ChainID {
			c.Close()
			return retry.Unrecoverable(fmt.Errorf("%w: chain at %s has id %s, expected %d",
				config.ErrConfig, cfg.RPCAddr, chainID, cfg.ChainID))
		}
		client = c
		return nil
	}, retry.Context(ctx), rtyAtt, rtyDel, rtyErr, retry.OnRetry(func(n uint, err error) {
		logger.Info("failed to connect to chain", zap.String("rpc_addr", cfg.RPCAddr), zap.Error(err))
	})); err != nil {
		return nil, fmt.Errorf("failed to connect to chain: %w", err)
	}

	return client, nil
}

func (c DependencyContainer) GetSequencer() relay.Sequencer {
	return c.sequencer
}

func (c DependencyContainer) GetPipeline() relay.Pipeline {
	return c.pipeline
}

func (c DependencyContainer) Close() {
	c.sequencer.Close()
	c.ethClient.Close()
}
