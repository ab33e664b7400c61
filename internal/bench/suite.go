package bench

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/openfga/cinq/internal/weather"
	"github.com/openfga/cinq/pkg/enumerable"
)

// ManualSuffix marks the hand-written counterpart of a query case.
const ManualSuffix = " - manual"

// sink keeps results reachable so the work is not optimized away.
var sink any

// Suite returns the benchmark cases over points. Every query chain is
// followed by the plain loop computing the same result.
func Suite(points []weather.Point) []Case {
	var cases []Case
	add := func(name string, iterations int, query, manual func() error) {
		cases = append(cases,
			Case{Name: name, Iterations: iterations, Run: query},
			Case{Name: name + ManualSuffix, Iterations: iterations, Run: manual},
		)
	}

	add("where() by temperature", 200,
		func() error {
			hot, err := enumerable.FromSlice(points).
				Where(func(p weather.Point) bool { return p.TempMax > 90 }).
				ToSlice()
			sink = hot
			return err
		},
		func() error {
			var hot []weather.Point
			for _, p := range points {
				if p.TempMax > 90 {
					hot = append(hot, p)
				}
			}
			sink = hot
			return nil
		},
	)

	add("select() mapping weather point to cloud cover", 200,
		func() error {
			cover, err := enumerable.Select(enumerable.FromSlice(points), func(p weather.Point) int {
				return p.CloudCover
			}).ToSlice()
			sink = cover
			return err
		},
		func() error {
			cover := make([]int, 0, len(points))
			for _, p := range points {
				cover = append(cover, p.CloudCover)
			}
			sink = cover
			return nil
		},
	)

	add("where().average() average cloud cover between 1980 and 2000", 50,
		func() error {
			avg, err := enumerable.AverageBy(
				enumerable.FromSlice(points).Where(between1980And2000),
				func(p weather.Point) int { return p.CloudCover },
			)
			sink = avg
			return err
		},
		func() error {
			var matched []weather.Point
			for _, p := range points {
				if between1980And2000(p) {
					matched = append(matched, p)
				}
			}
			if len(matched) == 0 {
				return enumerable.ErrEmptySequence
			}
			sum := 0
			for _, p := range matched {
				sum += p.CloudCover
			}
			sink = float64(sum) / float64(len(matched))
			return nil
		},
	)

	add("max() highest temp_max in the data set", 1000,
		func() error {
			hottest, err := enumerable.MaxBy(enumerable.FromSlice(points), func(p weather.Point) int {
				return p.TempMax
			})
			sink = hottest
			return err
		},
		func() error {
			if len(points) == 0 {
				return enumerable.ErrEmptySequence
			}
			hottest := math.MinInt
			for _, p := range points {
				hottest = max(hottest, p.TempMax)
			}
			sink = hottest
			return nil
		},
	)

	add("min() lowest temp_min in the data set", 1000,
		func() error {
			coldest, err := enumerable.MinBy(enumerable.FromSlice(points), func(p weather.Point) int {
				return p.TempMin
			})
			sink = coldest
			return err
		},
		func() error {
			if len(points) == 0 {
				return enumerable.ErrEmptySequence
			}
			coldest := math.MaxInt
			for _, p := range points {
				coldest = min(coldest, p.TempMin)
			}
			sink = coldest
			return nil
		},
	)

	add("where().select() temp_min of the days it snowed", 200,
		func() error {
			temps, err := enumerable.Select(
				enumerable.FromSlice(points).Where(func(p weather.Point) bool { return p.Snow }),
				func(p weather.Point) int { return p.TempMin },
			).ToSlice()
			sink = temps
			return err
		},
		func() error {
			var snowed []weather.Point
			for _, p := range points {
				if p.Snow {
					snowed = append(snowed, p)
				}
			}
			temps := make([]int, 0, len(snowed))
			for _, p := range snowed {
				temps = append(temps, p.TempMin)
			}
			sink = temps
			return nil
		},
	)

	add("where().order_by().take().select() 5 coldest rainy days", 10,
		func() error {
			temps, err := ColdestRainyDays(points, 5)
			sink = temps
			return err
		},
		func() error {
			var rainy []weather.Point
			for _, p := range points {
				if p.Rain {
					rainy = append(rainy, p)
				}
			}
			slices.SortStableFunc(rainy, func(a, b weather.Point) int { return a.TempMin - b.TempMin })

			temps := make([]int, 0, 5)
			for i := 0; i < len(rainy) && i < 5; i++ {
				temps = append(temps, rainy[i].TempMin)
			}
			sink = temps
			return nil
		},
	)

	return cases
}

// ColdestRainyDays returns the minimum temperatures of the n coldest days
// with rain, coldest first.
func ColdestRainyDays(points []weather.Point, n int) ([]int, error) {
	return enumerable.Select(
		enumerable.FromSlice(points).
			Where(func(p weather.Point) bool { return p.Rain }).
			OrderBy(enumerable.By(func(p weather.Point) int { return p.TempMin })).
			Take(n),
		func(p weather.Point) int { return p.TempMin },
	).ToSlice()
}

func between1980And2000(p weather.Point) bool {
	y := p.Date.Year()
	return 1980 < y && y < 2000
}

// ErrNoCases is returned by Filter when no case matches.
var ErrNoCases = errors.New("no benchmark case matches the filter")

// Filter keeps the cases whose name contains any of patterns. No patterns
// keeps every case.
func Filter(cases []Case, patterns []string) ([]Case, error) {
	if len(patterns) == 0 {
		return cases, nil
	}

	matched := enumerable.FromSlice(cases).Where(func(c Case) bool {
		return slices.ContainsFunc(patterns, func(p string) bool {
			return strings.Contains(c.Name, p)
		})
	})

	if empty, err := matched.Empty(); err != nil || empty {
		return nil, errors.Join(ErrNoCases, err)
	}
	return matched.ToSlice()
}
