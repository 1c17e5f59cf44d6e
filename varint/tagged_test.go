package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagged_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 63, 64, 127, 128, 16383, 16384,
		1 << 20, 1 << 24, 1 << 31, 1 << 40, 1 << 55,
		1<<64 - 1,
	}

	buf := make([]byte, 9)
	for _, v := range values {
		n := PutTagged(buf, v)
		require.Equal(t, TaggedWidth(v), n)
		require.Equal(t, n, TaggedLen(buf[0]))

		got, consumed := GetTagged(buf)
		require.Equal(t, n, consumed)
		require.Equal(t, v, got)
	}
}

func TestTagged_WidthBoundaries(t *testing.T) {
	cases := []struct {
		v uint64
		w int
	}{
		{0, 1},
		{1<<7 - 1, 1},
		{1 << 7, 2},
		{1<<14 - 1, 2},
		{1 << 14, 3},
		{1 << 21, 4},
	}

	for _, c := range cases {
		require.Equal(t, c.w, TaggedWidth(c.v), "v=%d", c.v)
	}
}

func TestTagged_SortOrderPreserving(t *testing.T) {
	// Encodings of increasing values must also compare greater byte-wise.
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 24, 1 << 40, 1<<64 - 1}

	var prev []byte
	for _, v := range values {
		buf := make([]byte, 9)
		n := PutTagged(buf, v)
		enc := buf[:n]

		if prev != nil {
			require.True(t, lessBytes(prev, enc), "encoding of %d should sort before next value", v)
		}
		prev = enc
	}
}

func TestTagged_ScenarioOrdering(t *testing.T) {
	// Mirrors the documented ordering scenario: tagged(1) < tagged(128) <
	// tagged(16384) < tagged(1<<24), both bytewise and numerically.
	vals := []uint64{1, 128, 16384, 1 << 24}
	encs := make([][]byte, len(vals))
	for i, v := range vals {
		buf := make([]byte, 9)
		n := PutTagged(buf, v)
		encs[i] = buf[:n]
	}

	for i := 1; i < len(encs); i++ {
		require.True(t, lessBytes(encs[i-1], encs[i]))
		require.Greater(t, vals[i], vals[i-1])
	}
}

func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
