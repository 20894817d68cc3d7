package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openrank/compute-relayer/internal/app"
	"github.com/openrank/compute-relayer/internal/relay"
)

// attemptCmd represents the attempt command
var attemptCmd = &cobra.Command{
	Use:   "attempt <seq_number>",
	Args:  cobra.ExactArgs(1),
	Short: "Run the submission pipeline once for a single sequence number",
	Long: `Relays the compute result stored under the sequence number and prints the outcome.
The cursor and the retry set are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse sequence number: %w", err)
		}

		return withDependencies(cmd.Context(), func(deps *app.DependencyContainer) error {
			outcome := deps.GetPipeline().Attempt(cmd.Context(), seq)
			fmt.Println(outcome)
			if outcome.Status == relay.Failed {
				return outcome.Err
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(attemptCmd)
}
