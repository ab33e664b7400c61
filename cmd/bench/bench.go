// Package bench contains the command that times the query benchmark suite.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	benchsuite "github.com/openfga/cinq/internal/bench"
	"github.com/openfga/cinq/internal/weather"
	"github.com/openfga/cinq/pkg/logger"
)

// ErrCasesFailed is returned when at least one benchmark case failed.
var ErrCasesFailed = errors.New("benchmark cases failed")

func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time query chains against hand-written loops",
		Long: `Time query chains against hand-written loops.

The data set is read from a Weather Underground CSV export (--data) or, when
none is given, generated from --rows and --seed.`,
		RunE: run,
		Args: cobra.NoArgs,
	}

	defaultConfig := benchsuite.DefaultConfig()
	flags := cmd.Flags()

	flags.String("data", defaultConfig.Data, "path to a Weather Underground CSV export; synthetic data is generated when empty")

	flags.Int("rows", defaultConfig.Rows, "the number of days of synthetic data to generate when no data file is given")

	flags.Int64("seed", defaultConfig.Seed, "the seed for synthetic data")

	flags.Float64("scale", defaultConfig.Scale, "multiplies the iteration count of every case")

	flags.StringSlice("filter", defaultConfig.Filter, "only run cases whose name contains one of these substrings")

	flags.String("metrics-out", defaultConfig.MetricsOut, "write the run's metrics to this file in the Prometheus text format")

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")

	cmd.PreRun = bindBenchFlagsFunc(flags)

	return cmd
}

// ReadConfig returns the bench configuration from flags, CINQ_* environment
// variables and the 'config.yaml' file, which is loaded from '/etc/cinq',
// '$HOME/.cinq', or the current working directory. If no configuration file is
// present, the default values are returned.
func ReadConfig() (*benchsuite.Config, error) {
	config := benchsuite.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load bench config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bench config: %w", err)
	}

	return config, nil
}

func run(cmd *cobra.Command, _ []string) error {
	config, err := ReadConfig()
	if err != nil {
		return err
	}

	if err := config.Verify(); err != nil {
		return err
	}

	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	runLogger := log.With(zap.String("run_id", ulid.Make().String()))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, config, runLogger, cmd.OutOrStdout())
}

// Run loads the data set described by config, runs the selected cases and
// writes a report to out.
func Run(ctx context.Context, config *benchsuite.Config, log logger.Logger, out io.Writer) error {
	points, err := loadPoints(config, log)
	if err != nil {
		return err
	}

	cases, err := benchsuite.Filter(benchsuite.Suite(points), config.Filter)
	if err != nil {
		return err
	}

	metrics := benchsuite.NewMetrics()
	runner := benchsuite.NewRunner(
		benchsuite.WithLogger(log),
		benchsuite.WithMetrics(metrics),
		benchsuite.WithScale(config.Scale),
	)

	log.Info("running benchmark cases", zap.Int("cases", len(cases)), zap.Int("points", len(points)))
	results := runner.Run(ctx, cases)

	if err := report(out, results); err != nil {
		return err
	}

	if config.MetricsOut != "" {
		if err := metrics.WriteFile(config.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info("wrote metrics", zap.String("path", config.MetricsOut))
	}

	for _, r := range results {
		if r.Err != nil {
			return ErrCasesFailed
		}
	}
	return nil
}

func loadPoints(config *benchsuite.Config, log logger.Logger) ([]weather.Point, error) {
	if config.Data == "" {
		log.Info("generating synthetic weather data", zap.Int("rows", config.Rows), zap.Int64("seed", config.Seed))
		return weather.Generate(config.Rows, config.Seed), nil
	}

	log.Info("loading weather data", zap.String("path", config.Data))
	return weather.Load(config.Data)
}

func report(out io.Writer, results []benchsuite.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tITERATIONS\tTOTAL\tPER ITERATION\tSTDDEV\tSTATUS")
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "failed: " + r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", r.Name, r.Iterations, r.Elapsed, r.PerIteration(), r.StdDev, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	comparisons, err := benchsuite.Compare(results)
	if err != nil {
		return err
	}
	if len(comparisons) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUERY\tQUERY/ITER\tMANUAL/ITER\tOVERHEAD")
	for _, c := range comparisons {
		fmt.Fprintf(w, "%s\t%s\t%s\tx%.2f\n", c.Name, c.Query, c.Manual, c.Overhead())
	}
	return w.Flush()
}
