package cmd

import (
	"context"
	"fmt"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/spf13/cobra"

	"github.com/openrank/compute-relayer/internal/app"
	"github.com/openrank/compute-relayer/internal/config"
	"github.com/openrank/compute-relayer/internal/relay"
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <prefix:hash>",
	Args:  cobra.ExactArgs(1),
	Short: "Submit a single sequencer transaction to the ComputeManager contract",
	Long: `Fetches the transaction from the sequencer and submits it unless the contract already has it.
Transaction kinds the contract doesn't track are accepted without touching the chain.`,
	Example: "compute_relayer submit commitment:43924aa0eb3f5df644b1d3b7d755190840d44d7b89f1df471280d4f1d957c819",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := relay.ParseTxRef(args[0])
		if err != nil {
			return err
		}

		return withDependencies(cmd.Context(), func(deps *app.DependencyContainer) error {
			tx, err := deps.GetSequencer().GetTx(cmd.Context(), ref.Prefix, ref.Hash)
			if err != nil {
				return fmt.Errorf("failed to get tx %s: %w", ref, err)
			}
			if err := deps.GetPipeline().SubmitTx(cmd.Context(), tx); err != nil {
				return fmt.Errorf("failed to submit tx %s: %w", ref, err)
			}

			fmt.Printf("Tx %s submitted successfully\n", ref)
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(submitCmd)
}

// withDependencies builds the dependency container for one-shot commands and closes it afterwards.
// The command's own logger comes from LOGGER_* env vars, the components log through the registry.
func withDependencies(ctx context.Context, fn func(deps *app.DependencyContainer) error) error {
	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("couldn't initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logRegistry, err := nlogger.NewRegistry(app.LoggerContexts()...)
	if err != nil {
		return fmt.Errorf("couldn't initialize loggers registry: %w", err)
	}

	cfg, err := config.NewRelayerConfig(logger)
	if err != nil {
		return fmt.Errorf("cannot initialize relayer config: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	deps, err := app.NewDefaultDependencyContainer(ctx, cfg, logRegistry)
	if err != nil {
		return fmt.Errorf("failed to initialize dependency container: %w", err)
	}
	defer deps.Close()

	return fn(deps)
}
