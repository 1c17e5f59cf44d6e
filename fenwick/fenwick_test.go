package fenwick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveRange(vals []int64, l, r int) int64 {
	var sum int64
	for i := l; i <= r; i++ {
		sum += vals[i]
	}
	return sum
}

func TestBIT_UpdateQueryRange(t *testing.T) {
	vals := []int64{3, -1, 4, 1, 5, 9, 2, 6}
	b := New[int64](len(vals))
	for i, v := range vals {
		b.Update(i, v)
	}

	for i := range vals {
		for j := i; j < len(vals); j++ {
			require.Equal(t, naiveRange(vals, i, j), b.Range(i, j))
		}
	}
}

func TestBIT_SetOverwritesSinglePoint(t *testing.T) {
	b := New[int64](5)
	for i := 0; i < 5; i++ {
		b.Update(i, int64(i+1))
	}

	b.Set(2, 100)
	require.Equal(t, int64(100), b.Get(2))
	require.Equal(t, int64(1), b.Get(0))
	require.Equal(t, int64(2), b.Get(1))
	require.Equal(t, int64(4), b.Get(3))
	require.Equal(t, int64(5), b.Get(4))
}

func TestBIT_Clear(t *testing.T) {
	b := New[int64](4)
	b.Update(0, 10)
	b.Update(3, 20)
	b.Clear()

	for i := 0; i < 4; i++ {
		require.Equal(t, int64(0), b.Get(i))
	}
}

func TestScenario_FenwickLowerBound(t *testing.T) {
	b := New[int64](5)
	for i, v := range []int64{1, 2, 3, 4, 5} {
		b.Update(i, v)
	}

	idx, ok := b.LowerBound(6)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = b.LowerBound(100)
	require.False(t, ok)
}

func TestBIT_GrowPreservesPrefixSums(t *testing.T) {
	b := New[int64](3)
	b.Update(0, 1)
	b.Update(1, 2)
	b.Update(2, 3)

	b.Grow(6)
	b.Update(5, 10)

	require.Equal(t, int64(6), b.Query(2))
	require.Equal(t, int64(16), b.Query(5))
}

func TestBIT_GrowPromotesSmallToFull(t *testing.T) {
	b := New[int64](4, WithSmallCap(8))
	for i := 0; i < 4; i++ {
		b.Update(i, int64(i+1))
	}

	b.Grow(20)
	_, isSmall := b.t.(*smallBIT[int64])
	require.False(t, isSmall)

	for i := 0; i < 4; i++ {
		require.Equal(t, int64(i+1), b.Get(i))
	}

	b.Update(19, 42)
	require.Equal(t, int64(42), b.Get(19))
	require.Equal(t, int64(10)+42, b.Query(19))
}

func TestBIT_FloatAccumulation(t *testing.T) {
	b := New[float64](3)
	b.Update(0, 1.5)
	b.Update(1, 2.25)
	b.Update(2, 0.25)

	require.InDelta(t, 4.0, b.Query(2), 1e-9)
	require.InDelta(t, 2.25, b.Get(1), 1e-9)
}
