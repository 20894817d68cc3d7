package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/app"
	"github.com/openrank/compute-relayer/internal/config"
	relayerhttp "github.com/openrank/compute-relayer/internal/http"
	"github.com/openrank/compute-relayer/internal/monitoring"
	"github.com/openrank/compute-relayer/internal/relay"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the compute relayer main app",
	Run: func(cmd *cobra.Command, args []string) {
		startRelayer()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func startRelayer() {
	logRegistry, err := nlogger.NewRegistry(
		append(app.LoggerContexts(), mainContext, relayerhttp.ServerContext, monitoring.MonitoringLoggerContext)...,
	)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("compute-relayer starts...", zap.String("version", app.Version), zap.String("commit", app.Commit))

	cfg, err := config.NewRelayerConfig(logger)
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		s := <-sigs
		logger.Info("Received termination signal, gracefully shutting down...",
			zap.String("signal", s.String()))
		cancel()
	}()

	// LevelDB allows a single process per database, so the webserver and the relayer share one handle.
	storage, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}
	defer func(storage relay.Storage) {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}(storage)

	deps, err := app.NewDefaultDependencyContainer(ctx, cfg, logRegistry)
	if err != nil {
		logger.Fatal("failed to initialize dependency container", zap.Error(err))
	}
	defer deps.Close()

	relayer := app.NewDefaultRelayer(cfg, logRegistry, storage, deps)

	metricsMux := http.NewServeMux()
	metricsMux.Handle(monitoring.MetricsResource, monitoring.NewPromWrapper(logRegistry, storage))
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.PrometheusPort), metricsMux)
		if err != nil {
			logger.Fatal("failed to serve metrics", zap.Error(err))
		}
	}()
	logger.Info("metrics handler set up")

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := relayerhttp.Run(ctx, logRegistry, storage, relayer, fmt.Sprintf(":%d", cfg.WebserverPort))
		if err != nil {
			logger.Error("WebServer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := relayer.Run(ctx); err != nil {
			logger.Error("Relayer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	wg.Wait()
}
