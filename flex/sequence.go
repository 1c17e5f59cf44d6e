// Package flex implements the byte-packed sequence container and its
// multi-block list ("multilist") variant: fixed-format entries packed into
// a pooled byte buffer, tracked by a lightweight offset index so head/tail/
// next/prev never rescan the packed form.
package flex

import (
	"github.com/arloliu/varind/cell"
	"github.com/arloliu/varind/databox"
	"github.com/arloliu/varind/internal/pool"
)

// Sequence is a byte-packed, ordered run of databox-encoded cells.
//
// The search phase of InsertSorted is O(log n), using the cached middle
// hint below; because entries are packed into one contiguous buffer,
// physically making room for a new entry still costs O(n) bytes of
// copying in the worst case — the tradeoff chosen for locality of dense
// packed storage over a pointer-linked structure. See DESIGN.md.
type Sequence struct {
	buf     *pool.Buffer
	offsets []uint32 // offsets[i] = start of entry i; len==count

	// midHint caches the index found by the last InsertSorted binary
	// search, seeding the next search near the same neighborhood for
	// sequences with locality of insertion (e.g. mostly-increasing keys).
	// Invalidated (reset to -1) on any structural mutation.
	midHint int
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{buf: pool.GetCodecBuffer(), midHint: -1}
}

// Len returns the number of entries.
func (s *Sequence) Len() int { return len(s.offsets) }

// Size returns the total packed byte size.
func (s *Sequence) Size() int { return s.buf.Len() }

func (s *Sequence) entryBounds(i int) (start, end int) {
	start = int(s.offsets[i])
	if i+1 < len(s.offsets) {
		end = int(s.offsets[i+1])
	} else {
		end = s.buf.Len()
	}
	return
}

// At decodes the entry at index i.
func (s *Sequence) At(i int) cell.Cell {
	start, end := s.entryBounds(i)
	return databox.Decode(s.buf.Bytes()[start:end])
}

// Head returns the first entry, or (Void, false) if empty.
func (s *Sequence) Head() (cell.Cell, bool) {
	if len(s.offsets) == 0 {
		return cell.Void(), false
	}
	return s.At(0), true
}

// Tail returns the last entry, or (Void, false) if empty.
func (s *Sequence) Tail() (cell.Cell, bool) {
	if len(s.offsets) == 0 {
		return cell.Void(), false
	}
	return s.At(len(s.offsets) - 1), true
}

// Next returns i+1, or -1 if i is the last index.
func (s *Sequence) Next(i int) int {
	if i+1 >= len(s.offsets) {
		return -1
	}
	return i + 1
}

// Prev returns i-1, or -1 if i is the first index.
func (s *Sequence) Prev(i int) int {
	if i <= 0 {
		return -1
	}
	return i - 1
}

// Append adds c to the end of the sequence.
func (s *Sequence) Append(c cell.Cell) {
	enc := databox.Encode(c)
	s.offsets = append(s.offsets, uint32(s.buf.Len()))
	s.buf.MustWrite(enc)
	s.midHint = -1
}

// InsertSorted inserts c keeping the sequence in ascending numeric order
// (via cell.Compare) and returns the index it was inserted at.
func (s *Sequence) InsertSorted(c cell.Cell) int {
	idx := s.searchInsertionPoint(c)
	s.insertAt(idx, c)
	s.midHint = idx
	return idx
}

func (s *Sequence) searchInsertionPoint(c cell.Cell) int {
	lo, hi := 0, len(s.offsets)

	if s.midHint >= 0 && s.midHint < len(s.offsets) {
		if cmp, err := cell.Compare(s.At(s.midHint), c); err == nil && cmp <= 0 {
			lo = s.midHint
		} else if err == nil {
			hi = s.midHint
		}
	}

	for lo < hi {
		mid := (lo + hi) / 2
		cmp, err := cell.Compare(s.At(mid), c)
		if err != nil || cmp > 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

func (s *Sequence) insertAt(idx int, c cell.Cell) {
	enc := databox.Encode(c)

	var at int
	if idx < len(s.offsets) {
		at, _ = s.entryBounds(idx)
	} else {
		at = s.buf.Len()
	}

	tail := append([]byte(nil), s.buf.Bytes()[at:]...)
	s.buf.SetLength(at)
	s.buf.MustWrite(enc)
	s.buf.MustWrite(tail)

	newOffsets := make([]uint32, 0, len(s.offsets)+1)
	newOffsets = append(newOffsets, s.offsets[:idx]...)
	newOffsets = append(newOffsets, uint32(at))
	shift := uint32(len(enc))
	for _, off := range s.offsets[idx:] {
		newOffsets = append(newOffsets, off+shift)
	}
	s.offsets = newOffsets
}

// Merge returns a new sequence containing the ascending merge of s and
// other, assuming both are already sorted ascending.
func (s *Sequence) Merge(other *Sequence) *Sequence {
	out := NewSequence()
	i, j := 0, 0

	for i < s.Len() && j < other.Len() {
		a, b := s.At(i), other.At(j)
		cmp, err := cell.Compare(a, b)
		if err != nil || cmp <= 0 {
			out.Append(a)
			i++
		} else {
			out.Append(b)
			j++
		}
	}
	for ; i < s.Len(); i++ {
		out.Append(s.At(i))
	}
	for ; j < other.Len(); j++ {
		out.Append(other.At(j))
	}

	return out
}

// Release returns the sequence's backing buffer to the pool. The sequence
// must not be used afterward.
func (s *Sequence) Release() {
	pool.PutCodecBuffer(s.buf)
	s.buf = nil
	s.offsets = nil
}
