package bench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	benchsuite "github.com/openfga/cinq/internal/bench"
	"github.com/openfga/cinq/internal/weather"
	"github.com/openfga/cinq/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func smallConfig(t *testing.T) *benchsuite.Config {
	t.Helper()

	config := benchsuite.DefaultConfig()
	config.Rows = 500
	config.Scale = 0.01
	config.Filter = []string{"max()"}
	config.MetricsOut = filepath.Join(t.TempDir(), "metrics.prom")
	return config
}

func TestRunGenerated(t *testing.T) {
	config := smallConfig(t)

	var out bytes.Buffer
	err := Run(context.Background(), config, logger.NewNoopLogger(), &out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "max() highest temp_max in the data set")
	require.Contains(t, out.String(), "max() highest temp_max in the data set"+benchsuite.ManualSuffix)
	require.Contains(t, out.String(), "OVERHEAD")
	require.NotContains(t, out.String(), "min()")

	metrics, err := os.ReadFile(config.MetricsOut)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "cinq_bench_iteration_duration_seconds")
}

func TestRunFromFile(t *testing.T) {
	config := smallConfig(t)
	config.Data = filepath.Join(t.TempDir(), "weather.csv")
	config.MetricsOut = ""
	require.NoError(t, weather.WriteFile(config.Data, weather.Generate(50, 1)))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), config, logger.NewNoopLogger(), &out))
	require.Contains(t, out.String(), "ok")
}

func TestRunErrors(t *testing.T) {
	t.Run("missing_data_file", func(t *testing.T) {
		config := smallConfig(t)
		config.Data = filepath.Join(t.TempDir(), "missing.csv")

		err := Run(context.Background(), config, logger.NewNoopLogger(), &bytes.Buffer{})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no_matching_case", func(t *testing.T) {
		config := smallConfig(t)
		config.Filter = []string{"nothing matches this"}

		err := Run(context.Background(), config, logger.NewNoopLogger(), &bytes.Buffer{})
		require.ErrorIs(t, err, benchsuite.ErrNoCases)
	})

	t.Run("failing_case", func(t *testing.T) {
		// the generated data stops long before 1980, so the average has no input
		config := smallConfig(t)
		config.Filter = []string{"where().average()"}
		config.MetricsOut = ""

		var out bytes.Buffer
		err := Run(context.Background(), config, logger.NewNoopLogger(), &out)
		require.ErrorIs(t, err, ErrCasesFailed)
		require.Contains(t, out.String(), "failed")
	})
}

func TestBenchCommand(t *testing.T) {
	t.Cleanup(viper.Reset)

	metricsOut := filepath.Join(t.TempDir(), "metrics.prom")

	cmd := NewBenchCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--rows", "200",
		"--scale", "0.01",
		"--filter", "min()",
		"--metrics-out", metricsOut,
		"--log-level", "none",
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "min() lowest temp_min in the data set")
	require.FileExists(t, metricsOut)
}

func TestBenchCommandInvalidConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := NewBenchCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-format", "xml"})

	err := cmd.ExecuteContext(context.Background())
	require.ErrorContains(t, err, "log.format")
}

func TestReadConfigFromEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("CINQ_SCALE", "2.5")
	t.Setenv("CINQ_LOG_LEVEL", "debug")

	cmd := NewBenchCommand()
	cmd.PreRun(cmd, nil)

	config, err := ReadConfig()
	require.NoError(t, err)
	require.InDelta(t, 2.5, config.Scale, 1e-9)
	require.Equal(t, "debug", config.Log.Level)
	require.Equal(t, benchsuite.DefaultConfig().Rows, config.Rows)
}
