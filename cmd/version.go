package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfga/cinq/internal/build"
)

// NewVersionCommand returns the command to get the cinq version.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the cinq version",
		Long:  "Return the cinq version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "cinq version %s date %s commit %s\n", build.Version, build.Date, build.Commit)
	return err
}
