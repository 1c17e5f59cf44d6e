package varint

import (
	"math/bits"

	ibits "github.com/arloliu/varind/internal/bits"

	"github.com/arloliu/varind/errs"
)

// Elias γ and δ are prefix-free universal codes for positive integers,
// undefined for zero. Both are bit-addressed: callers write into and read
// from an internal/bits buffer rather than a byte slice directly.

// EliasStats summarizes an array encode: how many values were written, the
// exact bit length of the encoding, and the byte length after padding.
type EliasStats struct {
	Count       int
	TotalBits   int
	EncodedSize int // bytes, rounded up from TotalBits
}

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n uint64) int { return bits.Len64(n) - 1 }

// EliasGammaBits returns the bit length of n's gamma code.
func EliasGammaBits(n uint64) int {
	k := log2Floor(n)
	return 2*k + 1
}

// PutEliasGamma writes n's gamma code: floor(log2 n) zero bits, then n in
// binary (k+1 bits, leading 1 included).
func PutEliasGamma(w *ibits.Writer, n uint64) error {
	if n == 0 {
		return errs.ErrInvalidInput
	}

	k := log2Floor(n)
	w.PutBits(0, k)
	w.PutBits(n, k+1)

	return nil
}

// GetEliasGamma reads one gamma-coded value.
func GetEliasGamma(r *ibits.Reader) uint64 {
	k := 0
	for r.GetBits(1) == 0 {
		k++
	}

	if k == 0 {
		return 1
	}

	rest := r.GetBits(k)
	return (uint64(1) << uint(k)) | rest
}

// EliasDeltaBits returns the bit length of n's delta code.
func EliasDeltaBits(n uint64) int {
	k := log2Floor(n)
	return EliasGammaBits(uint64(k+1)) + k
}

// PutEliasDelta writes n's delta code: the gamma code of (k+1) where
// k=floor(log2 n), followed by the low k bits of n.
func PutEliasDelta(w *ibits.Writer, n uint64) error {
	if n == 0 {
		return errs.ErrInvalidInput
	}

	k := log2Floor(n)
	if err := PutEliasGamma(w, uint64(k+1)); err != nil {
		return err
	}
	if k > 0 {
		w.PutBits(n, k)
	}

	return nil
}

// GetEliasDelta reads one delta-coded value.
func GetEliasDelta(r *ibits.Reader) uint64 {
	kPlus1 := GetEliasGamma(r)
	k := int(kPlus1) - 1
	if k == 0 {
		return 1
	}

	rest := r.GetBits(k)
	return (uint64(1) << uint(k)) | rest
}

// PutEliasGammaArray writes values back-to-back as gamma codes and reports
// the resulting size.
func PutEliasGammaArray(w *ibits.Writer, values []uint64) (EliasStats, error) {
	start := w.Len()
	for _, v := range values {
		if err := PutEliasGamma(w, v); err != nil {
			return EliasStats{}, err
		}
	}

	total := w.Len() - start
	return EliasStats{Count: len(values), TotalBits: total, EncodedSize: (total + 7) / 8}, nil
}

// GetEliasGammaArray greedily decodes gamma-coded values until count is
// reached or the reader runs out of bits.
func GetEliasGammaArray(r *ibits.Reader, count int) []uint64 {
	out := make([]uint64, 0, count)
	for i := 0; i < count && r.HasMore(1); i++ {
		out = append(out, GetEliasGamma(r))
	}
	return out
}

// PutEliasDeltaArray writes values back-to-back as delta codes and reports
// the resulting size.
func PutEliasDeltaArray(w *ibits.Writer, values []uint64) (EliasStats, error) {
	start := w.Len()
	for _, v := range values {
		if err := PutEliasDelta(w, v); err != nil {
			return EliasStats{}, err
		}
	}

	total := w.Len() - start
	return EliasStats{Count: len(values), TotalBits: total, EncodedSize: (total + 7) / 8}, nil
}

// GetEliasDeltaArray greedily decodes delta-coded values until count is
// reached or the reader runs out of bits.
func GetEliasDeltaArray(r *ibits.Reader, count int) []uint64 {
	out := make([]uint64, 0, count)
	for i := 0; i < count && r.HasMore(1); i++ {
		out = append(out, GetEliasDelta(r))
	}
	return out
}
