package main

import (
	"os"

	"github.com/openrank/compute-relayer/cmd/compute_relayer/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
