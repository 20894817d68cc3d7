package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	relayerhttp "github.com/openrank/compute-relayer/internal/http"
)

var urlRelayer string

const (
	UrlFlagName = "url"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use: "query",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&urlRelayer, UrlFlagName, "u", "http://localhost:10001", "server url")
	QueryCmd.AddCommand(stateCmd, failedSequencesCmd)
	RootCmd.AddCommand(QueryCmd)
}

// stateCmd represents the state command
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Query the cursor and the retry set of a running relayer",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := relayerhttp.NewRelayerClient(urlRelayer)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		state, err := client.GetState()
		if err != nil {
			return fmt.Errorf("failed to get state: %w", err)
		}

		return printJSON("State", state)
	},
}

// failedSequencesCmd represents the failed command
var failedSequencesCmd = &cobra.Command{
	Use:   "failed",
	Short: "Query sequence numbers whose last attempt failed",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := relayerhttp.NewRelayerClient(urlRelayer)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		failed, err := client.GetFailedSequences()
		if err != nil {
			return fmt.Errorf("failed to get failed sequences: %w", err)
		}

		return printJSON("Failed sequences", failed)
	},
}

func printJSON(title string, v interface{}) error {
	var response bytes.Buffer
	encoder := json.NewEncoder(&response)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	fmt.Printf("%s:\n%s\n", title, response.String())
	return nil
}
