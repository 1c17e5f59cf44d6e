package varint

import (
	"testing"

	"github.com/arloliu/varind/endian"
	"github.com/stretchr/testify/require"
)

func TestGroup_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []uint64{0, 255, 256, 1 << 20, 1<<64 - 1, 1, 2, 3}

	widths := make([]int, len(values))
	for i, v := range values {
		widths[i] = MinExternalWidth(v)
	}
	buf := make([]byte, GroupLen(widths))

	n := PutGroup(buf, values, engine)
	require.Equal(t, len(buf), n)

	require.Equal(t, len(values), GetGroupCount(buf))
	got := GetGroup(buf, engine)
	require.Equal(t, values, got)
}

func TestGroup_RandomFieldAccess(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	values := []uint64{42, 1 << 40, 7}
	widths := make([]int, len(values))
	for i, v := range values {
		widths[i] = MinExternalWidth(v)
	}
	buf := make([]byte, GroupLen(widths))
	PutGroup(buf, values, engine)

	n := GetGroupCount(buf)
	for i, want := range values {
		require.Equal(t, want, GetGroupField(buf, n, i, engine))
	}
}
