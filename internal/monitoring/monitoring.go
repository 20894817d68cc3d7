package monitoring

import (
	"net/http"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/metrics"
	"github.com/openrank/compute-relayer/internal/relay"
)

const (
	MonitoringLoggerContext = "monitoring"
	MetricsResource         = "/metrics"
)

// PromWrapper refreshes the storage backed gauges right before every scrape.
type PromWrapper struct {
	promHandler http.Handler
	storage     relay.Storage
	logger      *zap.Logger
}

func NewPromWrapper(logRegistry *nlogger.Registry, storage relay.Storage) PromWrapper {
	return PromWrapper{
		promHandler: promhttp.Handler(),
		storage:     storage,
		logger:      logRegistry.Get(MonitoringLoggerContext),
	}
}

func (p PromWrapper) FillStorageMetrics() {
	if cursor, err := p.storage.GetCursor(); err != nil {
		p.logger.Error("failed to get cursor from storage", zap.Error(err))
	} else {
		metrics.SetCursor(cursor)
	}

	if retrySet, err := p.storage.GetRetrySet(); err != nil {
		p.logger.Error("failed to get retry set from storage", zap.Error(err))
	} else {
		metrics.SetRetrySetSize(len(retrySet))
	}

	if failed, err := p.storage.GetAllFailedSequences(); err != nil {
		p.logger.Error("failed to get failed sequences from storage", zap.Error(err))
	} else {
		metrics.SetFailedSequencesSize(len(failed))
	}
}

func (p PromWrapper) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	p.FillStorageMetrics()
	p.promHandler.ServeHTTP(res, req)
}
