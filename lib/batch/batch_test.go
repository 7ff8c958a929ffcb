package batch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyPreservesOrder(t *testing.T) {
	result, err := Apply([]int{3, 1, 2}, func(n int) (int, error) {
		return n * 10, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{30, 10, 20}, result.Items())
}

func TestApplyAbortsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	_, err := Apply([]int{1, 2, 3, 4}, func(n int) (int, error) {
		calls++
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}

func TestApplyContinueOnError(t *testing.T) {
	result, err := Apply([]int{1, 2, 3, 4}, func(n int) (int, error) {
		if n%2 == 0 {
			return 0, errors.New("even")
		}
		return n, nil
	}, ContinueOnError())
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, result.Items())
}

func TestApply2ProductOrder(t *testing.T) {
	var seen []string
	result, err := Apply2([]string{"a", "b"}, []int{1, 2, 3}, func(s string, n int) (string, error) {
		pair := fmt.Sprintf("%s%d", s, n)
		seen = append(seen, pair)
		return pair, nil
	})
	require.NoError(t, err)

	want := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	require.Equal(t, want, seen)
	require.Equal(t, want, result.Items())
}

func TestCollectFlattensOneLevel(t *testing.T) {
	result, err := Collect([]int{1, 2, 3}, func(n int) ([]int, error) {
		out := make([]int, n)
		for i := range out {
			out[i] = n
		}
		return out, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2, 3, 3, 3}, result.Items())
}

func TestCollect2(t *testing.T) {
	result, err := Collect2([]int{1, 2}, []string{"x", "y"}, func(n int, s string) ([]string, error) {
		return []string{fmt.Sprintf("%d%s", n, s)}, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1x", "1y", "2x", "2y"}, result.Items())
}

func TestResultAccessors(t *testing.T) {
	r := Of([]int{5, 6, 7})
	require.Equal(t, 3, r.Len())
	require.Equal(t, 6, r.At(1))

	first, err := r.First()
	require.NoError(t, err)
	require.Equal(t, 5, first)

	_, err = Of([]int(nil)).First()
	require.ErrorIs(t, err, ErrEmpty)

	var sum int
	r.ForEach(func(n int) { sum += n })
	require.Equal(t, 18, sum)

	odd := r.Filter(func(n int) bool { return n%2 == 1 })
	require.Equal(t, []int{5, 7}, odd.Items())
}

func TestMap(t *testing.T) {
	doubled := Map(Of([]int{1, 2}), func(n int) string {
		return fmt.Sprintf("%d", n*2)
	})
	require.Equal(t, []string{"2", "4"}, doubled.Items())
}

func TestMaxByFirstOnTie(t *testing.T) {
	type item struct {
		id    string
		value float64
	}
	items := []item{
		{"a", 2},
		{"b", 5},
		{"c", 5},
		{"d", 1},
	}

	max, err := MaxBy(items, func(i item) float64 { return i.value })
	require.NoError(t, err)
	require.Equal(t, "b", max.id)

	min, err := MinBy(items, func(i item) float64 { return i.value })
	require.NoError(t, err)
	require.Equal(t, "d", min.id)
}

func TestMinByFirstOnTie(t *testing.T) {
	min, err := MinBy([]int{4, 1, 1, 9}, func(n int) float64 { return float64(n) })
	require.NoError(t, err)
	require.Equal(t, 1, min)
}

func TestExtremaEmpty(t *testing.T) {
	_, err := MaxBy(nil, func(int) float64 { return 0 })
	require.ErrorIs(t, err, ErrEmpty)

	_, err = MinBy(nil, func(int) float64 { return 0 })
	require.ErrorIs(t, err, ErrEmpty)

	_, err = MeanBy(nil, func(int) float64 { return 0 })
	require.ErrorIs(t, err, ErrEmpty)
}

func TestMeanBy(t *testing.T) {
	mean, err := MeanBy([]int{1, 2, 3, 4}, func(n int) float64 { return float64(n) })
	require.NoError(t, err)
	require.InDelta(t, 2.5, mean, 1e-9)
}
