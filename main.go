package main

import (
	"os"

	"github.com/deepresearch/agentdev/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Failures are already reported by the dispatcher; exit with the
		// code the delegated tool (or the usage check) produced.
		os.Exit(cmd.ExitCode(err))
	}
}
