package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openfga/cinq/internal/weather"
)

func TestSuiteRuns(t *testing.T) {
	cases := Suite(weather.Generate(20000, 3))
	require.Len(t, cases, 14)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			require.Positive(t, c.Iterations)
			require.NoError(t, c.Run())
		})
	}
}

func TestSuitePairsQueryWithManual(t *testing.T) {
	cases := Suite(nil)
	for i := 0; i < len(cases); i += 2 {
		require.False(t, strings.HasSuffix(cases[i].Name, ManualSuffix))
		require.Equal(t, cases[i].Name+ManualSuffix, cases[i+1].Name)
		require.Equal(t, cases[i].Iterations, cases[i+1].Iterations)
	}
}

func TestSuiteOnEmptyData(t *testing.T) {
	results := NewRunner(WithScale(0.001)).Run(context.Background(), Suite(nil))

	failed := map[string]bool{}
	for _, r := range results {
		failed[r.Name] = r.Err != nil
	}
	require.True(t, failed["max() highest temp_max in the data set"])
	require.True(t, failed["max() highest temp_max in the data set"+ManualSuffix])
	require.True(t, failed["where().average() average cloud cover between 1980 and 2000"])
	require.False(t, failed["where() by temperature"])
}

func TestColdestRainyDays(t *testing.T) {
	day := func(tempMin int, rain bool) weather.Point {
		return weather.Point{TempMin: tempMin, Rain: rain}
	}
	points := []weather.Point{day(40, true), day(10, false), day(35, true), day(50, true), day(20, true)}

	got, err := ColdestRainyDays(points, 3)
	require.NoError(t, err)
	require.Equal(t, []int{20, 35, 40}, got)

	got, err = ColdestRainyDays(points, 10)
	require.NoError(t, err)
	require.Equal(t, []int{20, 35, 40, 50}, got)
}

func TestFilter(t *testing.T) {
	cases := Suite(nil)

	all, err := Filter(cases, nil)
	require.NoError(t, err)
	require.Len(t, all, len(cases))

	maxCases, err := Filter(cases, []string{"max()", "min()"})
	require.NoError(t, err)
	require.Len(t, maxCases, 4)

	_, err = Filter(cases, []string{"nothing like this"})
	require.ErrorIs(t, err, ErrNoCases)
}

func TestCompare(t *testing.T) {
	results := []Result{
		{Name: "a", Iterations: 2, Elapsed: 40 * time.Millisecond},
		{Name: "a" + ManualSuffix, Iterations: 2, Elapsed: 20 * time.Millisecond},
		{Name: "b", Iterations: 1, Elapsed: time.Millisecond},
		{Name: "c", Iterations: 1, Elapsed: time.Millisecond},
		{Name: "c" + ManualSuffix, Err: context.Canceled},
	}

	comparisons, err := Compare(results)
	require.NoError(t, err)
	require.Equal(t, []Comparison{{Name: "a", Query: 20 * time.Millisecond, Manual: 10 * time.Millisecond}}, comparisons)
	require.InDelta(t, 2.0, comparisons[0].Overhead(), 1e-9)
	require.Zero(t, Comparison{}.Overhead())
}
