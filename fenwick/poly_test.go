package fenwick

import (
	"testing"

	"github.com/arloliu/varind/cell"
	"github.com/stretchr/testify/require"
)

func TestScenario_PolyTreeMixedTypePromotion(t *testing.T) {
	p := NewPolyTree(4)
	require.NoError(t, p.Update(0, cell.Int64(5)))
	require.NoError(t, p.Update(0, cell.Float64(0.5)))

	v, err := p.Get(0)
	require.NoError(t, err)
	require.Equal(t, cell.TagFloat64, v.Tag())
	require.InDelta(t, 5.5, v.AsFloat64(), 1e-12)
}

func TestPolyTree_RangeAcrossMixedTypes(t *testing.T) {
	p := NewPolyTree(3)
	require.NoError(t, p.Update(0, cell.Int64(2)))
	require.NoError(t, p.Update(1, cell.Uint64(3)))
	require.NoError(t, p.Update(2, cell.Float32(1.5)))

	sum, err := p.Range(0, 2)
	require.NoError(t, err)
	require.InDelta(t, 6.5, sum.AsFloat64Value(), 1e-6)
}

func TestPolyTree_GrowPreservesValues(t *testing.T) {
	p := NewPolyTree(2)
	require.NoError(t, p.Update(0, cell.Int64(10)))
	require.NoError(t, p.Update(1, cell.Int64(20)))

	require.NoError(t, p.Grow(5))
	require.NoError(t, p.Update(4, cell.Int64(1)))

	v, err := p.Get(0)
	require.NoError(t, err)
	require.Equal(t, int64(10), v.AsInt64())

	sum, err := p.Query(4)
	require.NoError(t, err)
	require.Equal(t, int64(31), sum.AsInt64())
}
