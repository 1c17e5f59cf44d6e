package segtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenario_MinTreeBuildAndQuery(t *testing.T) {
	vals := []int64{5, 2, 8, 1, 9}
	tr := New[int64](len(vals), OpMin, math.MaxInt64)
	for i, v := range vals {
		tr.Update(i, v)
	}

	require.Equal(t, int64(1), tr.Query(0, 4))
	require.Equal(t, int64(2), tr.Query(0, 2))
	require.Equal(t, int64(1), tr.Query(2, 4))
}

func TestSumTree_PointUpdateAndRangeApply(t *testing.T) {
	vals := []int64{1, 2, 3, 4, 5}
	tr := New[int64](len(vals), OpSum, 0)
	for i, v := range vals {
		tr.Update(i, v)
	}
	require.Equal(t, int64(15), tr.Query(0, 4))

	tr.RangeApply(1, 3, 10) // sum is additive: adds 10 to indices 1..3
	require.Equal(t, int64(45), tr.Query(0, 4))
	require.Equal(t, int64(12), tr.Get(1))
}

func TestMaxTree_RangeApplyIsAssigning(t *testing.T) {
	vals := []int64{1, 2, 3, 4, 5}
	tr := New[int64](len(vals), OpMax, math.MinInt64)
	for i, v := range vals {
		tr.Update(i, v)
	}

	tr.RangeApply(0, 2, 100) // max is assigning: sets indices 0..2 to 100
	require.Equal(t, int64(100), tr.Get(0))
	require.Equal(t, int64(100), tr.Get(2))
	require.Equal(t, int64(4), tr.Get(3))
	require.Equal(t, int64(100), tr.Query(0, 4))
}

func TestSegTree_GrowPreservesLeaves(t *testing.T) {
	tr := New[int64](3, OpSum, 0)
	tr.Update(0, 1)
	tr.Update(1, 2)
	tr.Update(2, 3)

	tr.Grow(6)
	tr.Update(5, 100)

	require.Equal(t, int64(6), tr.Query(0, 2))
	require.Equal(t, int64(106), tr.Query(0, 5))
}

func TestSegTree_GrowPromotesSmallToFull(t *testing.T) {
	tr := New[int64](4, OpSum, 0, WithSmallCap(8))
	for i := 0; i < 4; i++ {
		tr.Update(i, int64(i+1))
	}

	tr.Grow(20)
	_, isSmall := tr.t.(*smallTier[int64])
	require.False(t, isSmall)

	require.Equal(t, int64(10), tr.Query(0, 3))
	tr.Update(19, 7)
	require.Equal(t, int64(17), tr.Query(0, 19))
}

func TestSegTree_Clear(t *testing.T) {
	tr := New[int64](4, OpSum, 0)
	tr.Update(0, 5)
	tr.Update(3, 9)
	tr.Clear()

	require.Equal(t, int64(0), tr.Query(0, 3))
}
