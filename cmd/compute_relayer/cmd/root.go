package cmd

import (
	"github.com/spf13/cobra"
)

const mainContext = "main"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          "compute_relayer",
	Short:        "Relays verified compute results from the sequencer to the ComputeManager contract",
	SilenceUsage: true,
}
