package bench

import (
	"errors"
	"strings"
	"time"

	"github.com/openfga/cinq/pkg/enumerable"
)

// Comparison pairs a query case with its hand-written counterpart.
type Comparison struct {
	Name   string
	Query  time.Duration
	Manual time.Duration
}

// Overhead returns how many times slower the query was than the loop.
func (c Comparison) Overhead() float64 {
	if c.Manual == 0 {
		return 0
	}
	return float64(c.Query) / float64(c.Manual)
}

// Compare matches every successful query result with its successful manual
// result, comparing mean iteration times. Unpaired results are left out.
func Compare(results []Result) ([]Comparison, error) {
	succeeded := enumerable.FromSlice(results).Where(func(r Result) bool {
		return r.Err == nil && r.Iterations > 0
	})
	manuals := succeeded.Clone().Where(isManual)

	queries, err := succeeded.Where(func(r Result) bool { return !isManual(r) }).ToSlice()
	if err != nil {
		return nil, err
	}

	comparisons := make([]Comparison, 0, len(queries))
	for _, q := range queries {
		m, err := manuals.FirstMatch(func(r Result) bool {
			return r.Name == q.Name+ManualSuffix
		})
		if errors.Is(err, enumerable.ErrNoMatch) {
			continue
		}
		if err != nil {
			return nil, err
		}

		comparisons = append(comparisons, Comparison{
			Name:   q.Name,
			Query:  q.PerIteration(),
			Manual: m.PerIteration(),
		})
	}
	return comparisons, nil
}

func isManual(r Result) bool {
	return strings.HasSuffix(r.Name, ManualSuffix)
}
