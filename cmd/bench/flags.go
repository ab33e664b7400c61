package bench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openfga/cinq/cmd/util"
)

// bindBenchFlagsFunc binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindBenchFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(command *cobra.Command, args []string) {
		util.MustBindPFlag("data", flags.Lookup("data"))
		util.MustBindEnv("data", "CINQ_DATA")

		util.MustBindPFlag("rows", flags.Lookup("rows"))
		util.MustBindEnv("rows", "CINQ_ROWS")

		util.MustBindPFlag("seed", flags.Lookup("seed"))
		util.MustBindEnv("seed", "CINQ_SEED")

		util.MustBindPFlag("scale", flags.Lookup("scale"))
		util.MustBindEnv("scale", "CINQ_SCALE")

		util.MustBindPFlag("filter", flags.Lookup("filter"))
		util.MustBindEnv("filter", "CINQ_FILTER")

		util.MustBindPFlag("metricsOut", flags.Lookup("metrics-out"))
		util.MustBindEnv("metricsOut", "CINQ_METRICS_OUT", "CINQ_METRICSOUT")

		util.MustBindPFlag("log.format", flags.Lookup("log-format"))
		util.MustBindEnv("log.format", "CINQ_LOG_FORMAT")

		util.MustBindPFlag("log.level", flags.Lookup("log-level"))
		util.MustBindEnv("log.level", "CINQ_LOG_LEVEL")
	}
}
