package flex

import (
	"testing"

	"github.com/arloliu/varind/cell"
	"github.com/stretchr/testify/require"
)

func TestSequence_AppendAndHeadTail(t *testing.T) {
	s := NewSequence()
	defer s.Release()

	s.Append(cell.Int64(1))
	s.Append(cell.Int64(2))
	s.Append(cell.Int64(3))

	head, ok := s.Head()
	require.True(t, ok)
	require.Equal(t, int64(1), head.AsInt64())

	tail, ok := s.Tail()
	require.True(t, ok)
	require.Equal(t, int64(3), tail.AsInt64())

	require.Equal(t, 3, s.Len())
}

func TestSequence_EmptyHeadTail(t *testing.T) {
	s := NewSequence()
	defer s.Release()

	_, ok := s.Head()
	require.False(t, ok)
	_, ok = s.Tail()
	require.False(t, ok)
}

func TestSequence_NextPrev(t *testing.T) {
	s := NewSequence()
	defer s.Release()

	for i := 0; i < 5; i++ {
		s.Append(cell.Int64(int64(i)))
	}

	require.Equal(t, 1, s.Next(0))
	require.Equal(t, -1, s.Next(4))
	require.Equal(t, 3, s.Prev(4))
	require.Equal(t, -1, s.Prev(0))
}

func TestSequence_InsertSorted(t *testing.T) {
	s := NewSequence()
	defer s.Release()

	values := []int64{5, 1, 9, 3, 7}
	for _, v := range values {
		s.InsertSorted(cell.Int64(v))
	}

	var got []int64
	for i := 0; i < s.Len(); i++ {
		got = append(got, s.At(i).AsInt64())
	}

	require.Equal(t, []int64{1, 3, 5, 7, 9}, got)
}

func TestSequence_Merge(t *testing.T) {
	a := NewSequence()
	defer a.Release()
	b := NewSequence()
	defer b.Release()

	for _, v := range []int64{1, 3, 5} {
		a.Append(cell.Int64(v))
	}
	for _, v := range []int64{2, 4, 6} {
		b.Append(cell.Int64(v))
	}

	merged := a.Merge(b)
	defer merged.Release()

	var got []int64
	for i := 0; i < merged.Len(); i++ {
		got = append(got, merged.At(i).AsInt64())
	}
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, got)
}
