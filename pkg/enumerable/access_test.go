package enumerable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func isEven(x int) bool { return x%2 == 0 }

func TestFirstLast(t *testing.T) {
	for name, from := range sources(3, 4, 5, 6, 7) {
		t.Run(name, func(t *testing.T) {
			e := from()

			v, err := e.First()
			require.NoError(t, err)
			require.Equal(t, 3, v)

			v, err = e.FirstMatch(isEven)
			require.NoError(t, err)
			require.Equal(t, 4, v)

			v, err = e.Last()
			require.NoError(t, err)
			require.Equal(t, 7, v)

			v, err = e.LastMatch(isEven)
			require.NoError(t, err)
			require.Equal(t, 6, v)

			require.False(t, e.Materialized())
		})
	}
}

func TestFirstLastNoMatch(t *testing.T) {
	for name, from := range sources(1, 3, 5) {
		t.Run(name, func(t *testing.T) {
			_, err := from().FirstMatch(isEven)
			require.ErrorIs(t, err, ErrNoMatch)

			_, err = from().LastMatch(isEven)
			require.ErrorIs(t, err, ErrNoMatch)

			_, err = from().Reverse().LastMatch(isEven)
			require.ErrorIs(t, err, ErrNoMatch)
		})
	}
}

func TestLastMatchOnlyFirstElementMatches(t *testing.T) {
	for name, from := range sources(2, 1, 3) {
		t.Run(name, func(t *testing.T) {
			v, err := from().LastMatch(isEven)
			require.NoError(t, err)
			require.Equal(t, 2, v)

			v, err = from().Skip(1).LastMatch(func(x int) bool { return x == 1 })
			require.NoError(t, err)
			require.Equal(t, 1, v)

			_, err = from().Skip(1).LastMatch(isEven)
			require.ErrorIs(t, err, ErrNoMatch)
		})
	}
}

func TestSingle(t *testing.T) {
	for name, from := range sources("cat", "dog", "goat", "pig") {
		t.Run(name, func(t *testing.T) {
			v, err := from().SingleMatch(func(s string) bool { return len(s) == 4 })
			require.NoError(t, err)
			require.Equal(t, "goat", v)

			_, err = from().SingleMatch(func(s string) bool { return len(s) == 3 })
			require.ErrorIs(t, err, ErrMultipleMatches)

			_, err = from().SingleMatch(func(s string) bool { return len(s) == 5 })
			require.ErrorIs(t, err, ErrNoMatch)
		})
	}

	_, err := FromSlice([]string{"cat", "dog"}).Single()
	require.ErrorIs(t, err, ErrMultipleMatches)

	v, err := FromSlice([]string{"cat"}).Single()
	require.NoError(t, err)
	require.Equal(t, "cat", v)
}

func TestSingleMatchScansPastFirstMatch(t *testing.T) {
	calls := 0
	_, err := FromSlice([]int{2, 1, 3, 5, 4}).SingleMatch(func(x int) bool {
		calls++
		return isEven(x)
	})
	require.ErrorIs(t, err, ErrMultipleMatches)
	require.Equal(t, 5, calls)
}

func TestElementAt(t *testing.T) {
	for name, from := range sources(10, 20, 30) {
		t.Run(name, func(t *testing.T) {
			tests := []struct {
				index     int
				expected  int
				expectErr bool
			}{
				{index: 0, expected: 10},
				{index: 2, expected: 30},
				{index: 3, expectErr: true},
				{index: -1, expectErr: true},
			}
			for _, test := range tests {
				v, err := from().ElementAt(test.index)
				if test.expectErr {
					require.ErrorIs(t, err, ErrOutOfRange)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, test.expected, v)
			}

			v, err := from().Skip(1).ElementAt(1)
			require.NoError(t, err)
			require.Equal(t, 30, v)

			_, err = from().Take(1).ElementAt(1)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestContains(t *testing.T) {
	for name, from := range sources("a", "b", "c") {
		t.Run(name, func(t *testing.T) {
			ok, err := Contains(from(), "b")
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = Contains(from(), "z")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestEmptyAnyAll(t *testing.T) {
	for name, from := range sources(2, 4, 5) {
		t.Run(name, func(t *testing.T) {
			empty, err := from().Empty()
			require.NoError(t, err)
			require.False(t, empty)

			ok, err := from().Any()
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = from().AnyMatch(func(x int) bool { return x > 4 })
			require.NoError(t, err)
			require.True(t, ok)

			all, err := from().All(isEven)
			require.NoError(t, err)
			require.False(t, all)

			all, err = from().Take(2).All(isEven)
			require.NoError(t, err)
			require.True(t, all)

			empty, err = from().Skip(3).Empty()
			require.NoError(t, err)
			require.True(t, empty)
		})
	}

	for name, from := range sources[int]() {
		t.Run("empty_"+name, func(t *testing.T) {
			all, err := from().All(isEven)
			require.NoError(t, err)
			require.True(t, all)

			ok, err := from().AnyMatch(isEven)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestAnyMatchShortCircuits(t *testing.T) {
	calls := 0
	ok, err := FromSlice([]int{1, 2, 3, 4}).AnyMatch(func(x int) bool {
		calls++
		return isEven(x)
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, calls)

	calls = 0
	ok, err = FromSlice([]int{2, 3, 4}).All(func(x int) bool {
		calls++
		return isEven(x)
	})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 2, calls)
}

func TestEmptySequenceErrors(t *testing.T) {
	for name, from := range sources[int]() {
		t.Run(name, func(t *testing.T) {
			_, err := Max(from())
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = Min(from())
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = Sum(from())
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = Average(from())
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = from().First()
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = from().Last()
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = from().Single()
			require.ErrorIs(t, err, ErrEmptySequence)

			_, err = from().ElementAt(0)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}
