package enumerable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []int
	}{
		{name: "zero", n: 0, expected: []int{}},
		{name: "prefix", n: 2, expected: []int{5, 6}},
		{name: "exact", n: 4, expected: []int{5, 6, 1, 3}},
		{name: "beyond_length", n: 10, expected: []int{5, 6, 1, 3}},
		{name: "max_int", n: math.MaxInt, expected: []int{5, 6, 1, 3}},
	}

	for _, test := range tests {
		for name, from := range sources(5, 6, 1, 3) {
			t.Run(test.name+"_"+name, func(t *testing.T) {
				e := from().Take(test.n)
				require.False(t, e.Materialized())

				n, err := e.Count()
				require.NoError(t, err)
				require.Equal(t, min(test.n, 4), n)

				got, err := e.ToSlice()
				require.NoError(t, err)
				require.Equal(t, test.expected, got)
			})

			t.Run(test.name+"_"+name+"_owned", func(t *testing.T) {
				got, err := from().Reverse().Reverse().Take(test.n).ToSlice()
				require.NoError(t, err)
				require.Equal(t, test.expected, got)
			})
		}
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []int
	}{
		{name: "zero", n: 0, expected: []int{5, 6, 1, 3}},
		{name: "prefix", n: 1, expected: []int{6, 1, 3}},
		{name: "exact", n: 4, expected: []int{}},
		{name: "beyond_length", n: 7, expected: []int{}},
		{name: "max_int", n: math.MaxInt, expected: []int{}},
	}

	for _, test := range tests {
		for name, from := range sources(5, 6, 1, 3) {
			t.Run(test.name+"_"+name, func(t *testing.T) {
				e := from().Skip(test.n)
				require.False(t, e.Materialized())

				got, err := e.ToSlice()
				require.NoError(t, err)
				require.Equal(t, test.expected, got)
			})

			t.Run(test.name+"_"+name+"_owned", func(t *testing.T) {
				got, err := from().Reverse().Reverse().Skip(test.n).ToSlice()
				require.NoError(t, err)
				require.Equal(t, test.expected, got)
			})
		}
	}
}

func TestTakeSkipRejectNegative(t *testing.T) {
	for name, from := range sources(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			_, err := from().Take(-1).ToSlice()
			require.ErrorIs(t, err, ErrInvalidArgument)

			_, err = from().Skip(-1).ToSlice()
			require.ErrorIs(t, err, ErrInvalidArgument)

			_, err = from().Take(math.MinInt).Count()
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSkipThenTakeWindow(t *testing.T) {
	for name, from := range sources(0, 1, 2, 3, 4, 5, 6, 7, 8, 9) {
		t.Run(name, func(t *testing.T) {
			e := from().Skip(2).Take(5).Skip(1).Take(10)

			n, err := e.Count()
			require.NoError(t, err)
			require.Equal(t, 4, n)

			last, err := e.Last()
			require.NoError(t, err)
			require.Equal(t, 6, last)

			got, err := e.ToSlice()
			require.NoError(t, err)
			require.Equal(t, []int{3, 4, 5, 6}, got)
		})
	}
}

func TestTakeSkipRoundTrip(t *testing.T) {
	xs := []int{8, 3, 3, 0, -1, 12}
	for k := 0; k <= len(xs); k++ {
		head, err := FromSlice(xs).Take(k).ToSlice()
		require.NoError(t, err)

		tail, err := FromSlice(xs).Skip(k).ToSlice()
		require.NoError(t, err)

		require.Equal(t, xs, append(head, tail...))
	}
}
