// Package generate contains the command that writes a synthetic weather data set.
package generate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfga/cinq/cmd/util"
	"github.com/openfga/cinq/internal/weather"
)

const (
	rowsFlag = "rows"
	seedFlag = "seed"
	outFlag  = "out"
)

func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic weather data set",
		Long:  `The generate command writes a deterministic data set in the Weather Underground CSV layout that the bench command reads with --data.`,
		RunE:  runGenerate,
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()

	flags.Int(rowsFlag, 24000, "the number of days to generate")
	flags.Int64(seedFlag, 1948, "the random seed; the same seed always yields the same data")
	flags.String(outFlag, "", "(required) the file to write")

	// NOTE: if you add a new flag here, update the function below, too

	cmd.PreRun = bindGenerateFlags

	return cmd
}

func bindGenerateFlags(command *cobra.Command, _ []string) {
	flags := command.Flags()

	util.MustBindPFlag("generate."+rowsFlag, flags.Lookup(rowsFlag))
	util.MustBindPFlag("generate."+seedFlag, flags.Lookup(seedFlag))
	util.MustBindPFlag("generate."+outFlag, flags.Lookup(outFlag))
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	rows := viper.GetInt("generate." + rowsFlag)
	seed := viper.GetInt64("generate." + seedFlag)
	out := viper.GetString("generate." + outFlag)

	if out == "" {
		return errors.New("missing output file")
	}
	if rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", rows)
	}

	if err := weather.WriteFile(out, weather.Generate(rows, seed)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", rows, out)
	return nil
}
