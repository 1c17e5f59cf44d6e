package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRC4Source_DeterministicGivenSameSeed(t *testing.T) {
	a := NewRC4Source([]byte("seed-value"))
	b := NewRC4Source([]byte("seed-value"))

	bufA := make([]byte, 32)
	bufB := make([]byte, 32)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)

	require.Equal(t, bufA, bufB)
}

func TestRC4Source_DifferentSeedsDiverge(t *testing.T) {
	a := NewRC4Source([]byte("seed-one"))
	b := NewRC4Source([]byte("seed-two"))

	bufA := make([]byte, 32)
	bufB := make([]byte, 32)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)

	require.NotEqual(t, bufA, bufB)
}

func TestRC4Source_StirChangesFutureOutput(t *testing.T) {
	a := NewRC4Source([]byte("seed"))
	before := make([]byte, 16)
	_, _ = a.Read(before)

	b := NewRC4Source([]byte("seed"))
	b.Stir()
	after := make([]byte, 16)
	_, _ = b.Read(after)

	require.NotEqual(t, before, after)
}
