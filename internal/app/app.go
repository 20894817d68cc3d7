package app

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/config"
	"github.com/openrank/compute-relayer/internal/relay"
	"github.com/openrank/compute-relayer/internal/storage"
)

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext       = "app"
	RelayerContext   = "relayer"
	PipelineContext  = "pipeline"
	SequencerContext = "sequencer"
	ChainContext     = "chain"
)

// retries configuration for dialing the chain and the sequencer on startup
var (
	rtyAtt = retry.Attempts(uint(5))
	rtyDel = retry.Delay(time.Second * 10)
	rtyErr = retry.LastErrorOnly(true)
)

// LoggerContexts lists every logger context the app components ask the registry for.
func LoggerContexts() []string {
	return []string{AppContext, RelayerContext, PipelineContext, SequencerContext, ChainContext}
}

// NewDefaultRelayer returns a relayer built with cfg.
func NewDefaultRelayer(
	cfg config.RelayerConfig,
	logRegistry *nlogger.Registry,
	storage relay.Storage,
	deps *DependencyContainer,
) *relay.Relayer {
	return relay.NewRelayer(
		cfg,
		deps.GetPipeline(),
		storage,
		logRegistry.Get(RelayerContext),
	)
}

func NewDefaultStorage(cfg config.RelayerConfig, logger *zap.Logger) (relay.Storage, error) {
	leveldbStorage, err := storage.NewLevelDBStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create NewLevelDBStorage: %w", err)
	}

	logger.Info("opened storage", zap.String("path", cfg.StoragePath))
	return leveldbStorage, nil
}
