// Package bench times query chains over weather data against the equivalent
// hand-written loops.
package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/openfga/cinq/pkg/logger"
)

// Case is one timed workload. Run is invoked Iterations times.
type Case struct {
	Name       string
	Iterations int
	Run        func() error
}

// Result is the outcome of running a Case.
type Result struct {
	Name string

	// Iterations is the number of iterations that completed.
	Iterations int
	Elapsed    time.Duration

	// StdDev is the sample standard deviation of the completed iterations.
	// It is zero with fewer than two iterations.
	StdDev time.Duration

	// Err is set when an iteration failed or panicked, or the run was cancelled.
	Err error
}

// PerIteration returns the mean time of a completed iteration.
func (r Result) PerIteration() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

type Runner struct {
	logger  logger.Logger
	metrics *Metrics
	scale   float64
}

type RunnerOption func(*Runner)

func WithLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithScale multiplies every case's iteration count. Each case still runs at least once.
func WithScale(scale float64) RunnerOption {
	return func(r *Runner) {
		r.scale = scale
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:  logger.NewNoopLogger(),
		metrics: NewMetrics(),
		scale:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the cases in order and returns one Result per case. A failing
// case does not stop the run. Once ctx is done, the running case stops and
// the remaining cases report ctx's error.
func (r *Runner) Run(ctx context.Context, cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, r.runCase(ctx, c))
	}
	return results
}

func (r *Runner) iterations(c Case) int {
	return max(1, int(math.Round(float64(c.Iterations)*r.scale)))
}

func (r *Runner) runCase(ctx context.Context, c Case) Result {
	res := Result{Name: c.Name}
	n := r.iterations(c)
	observer := r.metrics.iterationDuration.WithLabelValues(c.Name)
	samples := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}

		var err error
		start := time.Now()
		recovered := panics.Try(func() {
			err = c.Run()
		})
		elapsed := time.Since(start)

		if recovered != nil {
			err = recovered.AsError()
		}
		if err != nil {
			res.Err = fmt.Errorf("iteration %d: %w", i, err)
			break
		}

		res.Elapsed += elapsed
		res.Iterations++
		samples = append(samples, elapsed.Seconds())
		observer.Observe(elapsed.Seconds())
	}

	if len(samples) > 1 {
		res.StdDev = time.Duration(stat.StdDev(samples, nil) * float64(time.Second))
	}

	if res.Err != nil {
		r.metrics.caseFailures.WithLabelValues(c.Name).Inc()
		r.logger.Error("benchmark case failed",
			zap.String("case", c.Name),
			zap.Int("completed", res.Iterations),
			zap.Error(res.Err),
		)
		return res
	}

	r.logger.Info("benchmark case finished",
		zap.String("case", c.Name),
		zap.Int("iterations", res.Iterations),
		zap.Duration("elapsed", res.Elapsed),
		zap.Duration("per_iteration", res.PerIteration()),
		zap.Duration("stddev", res.StdDev),
	)
	return res
}
