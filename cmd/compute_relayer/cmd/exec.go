package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	relayerhttp "github.com/openrank/compute-relayer/internal/http"
)

// ExecCmd represents the exec command
var ExecCmd = &cobra.Command{
	Use: "exec",
}

func init() {
	ExecCmd.PersistentFlags().StringVarP(&urlRelayer, UrlFlagName, "u", "http://localhost:10001", "server url")
	ExecCmd.AddCommand(retryCmd)
	RootCmd.AddCommand(ExecCmd)
}

// retryCmd represents the retry command
var retryCmd = &cobra.Command{
	Use:   "retry <seq_number>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Put failed sequence numbers back into the retry set of a running relayer",
	RunE: func(cmd *cobra.Command, args []string) error {
		seqNumbers := make([]uint64, 0, len(args))
		for _, arg := range args {
			seq, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse sequence number %q: %w", arg, err)
			}
			seqNumbers = append(seqNumbers, seq)
		}

		client, err := relayerhttp.NewRelayerClient(urlRelayer)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		if err := client.Retry(seqNumbers...); err != nil {
			return fmt.Errorf("failed to requeue sequence numbers: %w", err)
		}

		fmt.Printf("Sequence numbers %v requeued successfully\n", seqNumbers)
		return nil
	},
}
