package databox

import (
	"testing"

	"github.com/arloliu/varind/cell"
	"github.com/stretchr/testify/require"
)

func TestDatabox_UintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 1 << 20, 1<<64 - 1}
	for _, v := range values {
		enc := Encode(cell.Uint64(v))
		got := Decode(enc)
		require.Equal(t, cell.TagUint64, got.Tag())
		require.Equal(t, v, got.AsUint64())
	}
}

func TestDatabox_IntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, -255, 1000, -1000, -1 << 40}
	for _, v := range values {
		enc := Encode(cell.Int64(v))
		got := Decode(enc)
		if v >= 0 {
			require.Equal(t, cell.TagUint64, got.Tag())
			require.Equal(t, uint64(v), got.AsUint64())
		} else {
			require.Equal(t, cell.TagInt64, got.Tag())
			require.Equal(t, v, got.AsInt64())
		}
	}
}

func TestDatabox_FloatDowngradesToHalf(t *testing.T) {
	enc := Encode(cell.Float32(1.5))
	require.Equal(t, byte(TagReal16), enc[0])

	got := Decode(enc)
	require.Equal(t, cell.TagFloat32, got.Tag())
	require.Equal(t, float32(1.5), got.AsFloat32())
}

func TestDatabox_FloatNeedsFullPrecision(t *testing.T) {
	f := float32(1.0000001192092896) // smallest float32 step above 1, not half-representable
	enc := Encode(cell.Float32(f))
	require.Equal(t, byte(TagReal32), enc[0])

	got := Decode(enc)
	require.Equal(t, f, got.AsFloat32())
}

func TestDatabox_DoubleDowngradesToFloat(t *testing.T) {
	enc := Encode(cell.Float64(1.5))
	require.Equal(t, byte(TagReal16), enc[0])

	got := Decode(enc)
	require.Equal(t, cell.TagFloat32, got.Tag())
	require.InDelta(t, 1.5, float64(got.AsFloat32()), 1e-9)
}

func TestDatabox_DoubleNeedsFullPrecision(t *testing.T) {
	d := 1.0 / 3.0
	enc := Encode(cell.Float64(d))
	require.Equal(t, byte(TagReal64), enc[0])

	got := Decode(enc)
	require.Equal(t, cell.TagFloat64, got.Tag())
	require.Equal(t, d, got.AsFloat64())
}

func TestDatabox_BoolAndNull(t *testing.T) {
	require.True(t, Decode(Encode(cell.Bool(true))).AsBool())
	require.False(t, Decode(Encode(cell.Bool(false))).AsBool())
	require.Equal(t, cell.TagNull, Decode(Encode(cell.Null())).Tag())
}

func TestDatabox_Bytes(t *testing.T) {
	payload := []byte("hello")
	got := Decode(Encode(cell.Bytes(payload)))
	require.Equal(t, payload, got.AsBytes())
}
