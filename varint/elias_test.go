package varint

import (
	"testing"

	ibits "github.com/arloliu/varind/internal/bits"
	"github.com/stretchr/testify/require"
)

func TestEliasGamma_RoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 7, 8, 255, 256, 1 << 30, 1 << 60}

	for _, v := range values {
		w := ibits.NewWriter()
		require.NoError(t, PutEliasGamma(w, v))
		require.Equal(t, EliasGammaBits(v), w.Len())

		r := ibits.NewReader(w.Bytes())
		require.Equal(t, v, GetEliasGamma(r))
	}
}

func TestEliasDelta_RoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 7, 8, 255, 256, 1 << 30, 1 << 60}

	for _, v := range values {
		w := ibits.NewWriter()
		require.NoError(t, PutEliasDelta(w, v))
		require.Equal(t, EliasDeltaBits(v), w.Len())

		r := ibits.NewReader(w.Bytes())
		require.Equal(t, v, GetEliasDelta(r))
	}
}

func TestElias_ZeroIsInvalid(t *testing.T) {
	w := ibits.NewWriter()
	require.Error(t, PutEliasGamma(w, 0))
	require.Error(t, PutEliasDelta(w, 0))
}

func TestEliasGammaArray_RoundTrip(t *testing.T) {
	values := []uint64{1, 5, 1024, 3, 1 << 40}

	w := ibits.NewWriter()
	stats, err := PutEliasGammaArray(w, values)
	require.NoError(t, err)
	require.Equal(t, len(values), stats.Count)

	r := ibits.NewReader(w.Bytes())
	got := GetEliasGammaArray(r, stats.Count)
	require.Equal(t, values, got)
}

func TestEliasDeltaArray_RoundTrip(t *testing.T) {
	values := []uint64{1, 5, 1024, 3, 1 << 40}

	w := ibits.NewWriter()
	stats, err := PutEliasDeltaArray(w, values)
	require.NoError(t, err)
	require.Equal(t, len(values), stats.Count)

	r := ibits.NewReader(w.Bytes())
	got := GetEliasDeltaArray(r, stats.Count)
	require.Equal(t, values, got)
}

func TestEliasGamma_WorstCaseBound(t *testing.T) {
	// Worst case: ceil(count*127/8) bytes, hit by large values near 2^63.
	count := 10
	values := make([]uint64, count)
	for i := range values {
		values[i] = 1<<63 - 1
	}

	w := ibits.NewWriter()
	stats, err := PutEliasGammaArray(w, values)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.EncodedSize, (count*127+7)/8)
}

func TestEliasDelta_WorstCaseBound(t *testing.T) {
	count := 10
	values := make([]uint64, count)
	for i := range values {
		values[i] = 1<<63 - 1
	}

	w := ibits.NewWriter()
	stats, err := PutEliasDeltaArray(w, values)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.EncodedSize, (count*76+7)/8)
}
