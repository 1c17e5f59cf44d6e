package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChained_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 35, 1<<64 - 1}
	buf := make([]byte, 10)

	for _, v := range values {
		n := PutChained(buf, v)
		require.Equal(t, ChainedLen(v), n)

		got, consumed := GetChained(buf[:n])
		require.Equal(t, n, consumed)
		require.Equal(t, v, got)
	}
}

func TestZigZag_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)))
	}
}

func TestChainedSigned_RoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -64, 64, math.MinInt64, math.MaxInt64}
	buf := make([]byte, 10)

	for _, v := range values {
		n := PutChainedSigned(buf, v)
		got, consumed := GetChainedSigned(buf[:n])
		require.Equal(t, n, consumed)
		require.Equal(t, v, got)
	}
}
