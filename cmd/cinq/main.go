package main

import (
	"os"

	"github.com/openfga/cinq/cmd"
	"github.com/openfga/cinq/cmd/bench"
	"github.com/openfga/cinq/cmd/generate"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	benchCmd := bench.NewBenchCommand()
	rootCmd.AddCommand(benchCmd)

	generateCmd := generate.NewGenerateCommand()
	rootCmd.AddCommand(generateCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
