// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with CINQ, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CINQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/cinq", "$HOME/.cinq", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "cinq",
		Short: "Benchmark chainable queries over Go sequences",
		Long: `Benchmark chainable queries over Go sequences.

cinq runs filter, projection, ordering and aggregation chains built with the
enumerable package over daily weather observations, and times each one against
the hand-written loop that computes the same result.`,
		SilenceUsage: true,
	}
}
