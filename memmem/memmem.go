// Package memmem implements substring search over arbitrary byte buffers:
// a one-shot Find/RFind pair and a reusable Finder that amortizes needle
// preprocessing across many haystacks.
//
// The search loop combines a SIMD-accelerated byte-set scan (from
// internal/scan) used as a prefilter for a rare "probe" byte in the
// needle, with a Two-Way string-matching verification step that gives the
// whole search an O(|haystack| + |needle|) worst case regardless of how
// the prefilter's candidates pan out.
package memmem

import "github.com/fastmem/memchr/internal/scan"

// Finder is a precomputed substring searcher for one needle. Construction
// is O(len(needle)); once built, a Finder is immutable and may be shared
// across goroutines and reused across any number of haystacks without
// coordination.
type Finder struct {
	needle    []byte
	needleRev []byte
	fwd       factorization
	rev       factorization
}

// NewFinder preprocesses needle for repeated searching. Construction never
// fails, including for an empty needle.
func NewFinder(needle []byte) *Finder {
	f := &Finder{needle: append([]byte(nil), needle...)}
	if len(f.needle) >= 2 {
		f.fwd = computeFactorization(f.needle)
		f.needleRev = reversed(f.needle)
		f.rev = computeFactorization(f.needleRev)
	}
	return f
}

// Find returns the offset of the first occurrence of the Finder's needle
// in haystack, or -1. An empty needle matches at offset 0.
func (f *Finder) Find(haystack []byte) int {
	switch len(f.needle) {
	case 0:
		return 0
	case 1:
		return scan.Forward(haystack, f.needle[0])
	default:
		return rawFind(haystack, f.needle, f.fwd)
	}
}

// RFind returns the offset of the last occurrence of the Finder's needle
// in haystack, or -1. An empty needle matches at offset len(haystack).
//
// RFind is implemented by running the same Two-Way search against a
// reversed copy of haystack and a precomputed reversed-needle
// factorization, then mapping the result back; unlike Find, it allocates
// an O(len(haystack)) scratch buffer per call.
func (f *Finder) RFind(haystack []byte) int {
	m := len(f.needle)
	n := len(haystack)
	switch m {
	case 0:
		return n
	case 1:
		return scan.Reverse(haystack, f.needle[0])
	default:
		if n < m {
			return -1
		}
		revH := reversed(haystack)
		p := rawFind(revH, f.needleRev, f.rev)
		if p < 0 {
			return -1
		}
		return n - m - p
	}
}

// Find returns the offset of the first occurrence of needle in haystack,
// or -1. An empty needle matches at offset 0.
func Find(haystack, needle []byte) int {
	return NewFinder(needle).Find(haystack)
}

// RFind returns the offset of the last occurrence of needle in haystack,
// or -1. An empty needle matches at offset len(haystack).
func RFind(haystack, needle []byte) int {
	return NewFinder(needle).RFind(haystack)
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
