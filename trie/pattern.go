package trie

import "github.com/arloliu/varind/errs"

// MaxPatternLength bounds a raw pattern string before segmentation.
const MaxPatternLength = 512

// MaxSegments bounds the number of dot-separated segments in a pattern.
const MaxSegments = 64

// SegmentKind identifies what a pattern segment matches.
type SegmentKind uint8

const (
	SegmentLiteral SegmentKind = iota
	SegmentStar                // matches exactly one segment
	SegmentHash                // matches zero or more segments
)

// isPatternByte reports whether b is allowed anywhere in a raw pattern:
// alphanumerics, '.', '*', '#', '_', '-'. A hand-rolled scanner, not
// regexp — validation runs on every insert/subscribe and the character
// set is tiny.
func isPatternByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '.' || b == '*' || b == '#' || b == '_' || b == '-':
		return true
	default:
		return false
	}
}

// segmentKind classifies a single already-split segment.
func segmentKind(s string) SegmentKind {
	switch s {
	case "*":
		return SegmentStar
	case "#":
		return SegmentHash
	default:
		return SegmentLiteral
	}
}

// splitSegments validates pattern and splits it on '.'.
func splitSegments(pattern string) ([]string, error) {
	if len(pattern) == 0 {
		return nil, errs.ErrInvalidPattern
	}
	if len(pattern) > MaxPatternLength {
		return nil, errs.ErrPatternTooLong
	}

	for i := 0; i < len(pattern); i++ {
		if !isPatternByte(pattern[i]) {
			return nil, errs.ErrInvalidPattern
		}
	}

	segments := make([]string, 0, 8)
	start := 0
	for i := 0; i <= len(pattern); i++ {
		if i == len(pattern) || pattern[i] == '.' {
			if i == start {
				return nil, errs.ErrInvalidPattern // empty segment, e.g. "a..b"
			}
			segments = append(segments, pattern[start:i])
			start = i + 1
		}
	}

	if len(segments) > MaxSegments {
		return nil, errs.ErrTooManySegments
	}

	return segments, nil
}
