// Package scan implements the byte-set scan skeleton shared by memchr's
// forward and reverse, 1/2/3-needle searches: scalar prologue, unaligned
// initial probe, aligned unrolled main loop, aligned tail loop, and a
// final overlapping unaligned tail probe.
//
// Forward and reverse are mirror images of the same skeleton; this package
// implements both so the root package's Memchr*/Memrchr* functions are
// thin wrappers that only supply the needle bytes.
package scan

import (
	"unsafe"

	"github.com/fastmem/memchr/internal/cpufeature"
	"github.com/fastmem/memchr/internal/vector"
)

const w = vector.Width

// baseUnroll returns the unroll factor (number of vectors per main-loop
// iteration) for a scan over numNeedles needle bytes: 4 for a single
// needle, 2 for two or three, doubled when the process detected AVX2.
// The factor is therefore at most 8, the size of the fixed mask buffers in
// Forward and Reverse.
func baseUnroll(numNeedles int) int {
	u := 4
	if numNeedles > 1 {
		u = 2
	}
	if cpufeature.Current() == cpufeature.StrategyAVX2 {
		u *= 2
	}
	return u
}

// alignForward returns how many bytes to advance a cursor sitting at the
// start of haystack so it lands on the next vector-width-aligned address,
// deliberately re-examining up to w-1 already-scanned bytes.
func alignForward(haystack []byte) int {
	addr := uintptr(unsafe.Pointer(&haystack[0]))
	return w - int(addr&uintptr(w-1))
}

// eqAny computes the lane-wise equality of v against every needle splat and
// ORs the results into one combined mask, returning both the combined mask
// and the per-needle masks (so a hit can be resolved without recomputing).
func eqAny(v vector.V, needles []vector.V, masks []vector.V) vector.V {
	var combined vector.V
	for i, n := range needles {
		masks[i] = vector.Eq(n, v)
		combined = vector.Or(combined, masks[i])
	}
	return combined
}

// resolveForward returns the offset of the lowest matching lane across the
// given per-needle masks, relative to the start of the vector they came
// from.
func resolveForward(masks []vector.V) int {
	var combined vector.V
	for _, m := range masks {
		combined = vector.Or(combined, m)
	}
	return vector.LowestSetBit(vector.Bits(combined))
}

// resolveReverse is resolveForward's mirror: highest matching lane.
func resolveReverse(masks []vector.V) int {
	var combined vector.V
	for _, m := range masks {
		combined = vector.Or(combined, m)
	}
	return vector.HighestSetBit(vector.Bits(combined))
}

func scalarForward(haystack []byte, needles []byte) int {
	for i, b := range haystack {
		for _, n := range needles {
			if b == n {
				return i
			}
		}
	}
	return -1
}

func scalarReverse(haystack []byte, needles []byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		for _, n := range needles {
			if haystack[i] == n {
				return i
			}
		}
	}
	return -1
}

// Forward returns the offset of the first byte in haystack equal to any of
// needles (1 to 3 bytes), or -1. It implements the six-state skeleton:
// Prologue -> InitialProbe -> Aligned -> Unrolled* -> Tail* -> FinalProbe
// -> Done.
func Forward(haystack []byte, needles ...byte) int {
	n := len(haystack)
	if n < w {
		return scalarForward(haystack, needles)
	}

	splats := make([]vector.V, len(needles))
	for i, b := range needles {
		splats[i] = vector.Splat(b)
	}
	var masks [8]vector.V
	buf := masks[:len(needles)]

	// InitialProbe: an unaligned load at the very start.
	if combined := eqAny(vector.LoadUnaligned(haystack[0:w]), splats, buf); vector.Any(combined) {
		return resolveForward(buf)
	}

	// Aligned: advance to the next vector-aligned address. This
	// deliberately re-examines some bytes InitialProbe already covered.
	cursor := alignForward(haystack)

	// Unrolled*: U vectors per iteration, tested as one OR before
	// resolving which vector (if any) actually hit.
	unroll := baseUnroll(len(needles))
	block := unroll * w
	var vmasks [8][8]vector.V // [vector-in-block][needle]
	for cursor+block <= n {
		var combined vector.V
		for v := 0; v < unroll; v++ {
			off := cursor + v*w
			c := eqAny(vector.LoadUnaligned(haystack[off:off+w]), splats, vmasks[v][:len(needles)])
			combined = vector.Or(combined, c)
		}
		if vector.Any(combined) {
			at := cursor
			for v := 0; v < unroll; v++ {
				if m := vmasks[v][:len(needles)]; anyOf(m) {
					return at + resolveForward(m)
				}
				at += w
			}
		}
		cursor += block
	}

	// Tail*: one vector at a time, still aligned.
	for cursor+w <= n {
		if combined := eqAny(vector.LoadUnaligned(haystack[cursor:cursor+w]), splats, buf); vector.Any(combined) {
			return cursor + resolveForward(buf)
		}
		cursor += w
	}

	// FinalProbe: an unaligned window ending exactly at the haystack end,
	// overlapping the previous block on purpose.
	if cursor < n {
		tail := n - w
		if combined := eqAny(vector.LoadUnaligned(haystack[tail:tail+w]), splats, buf); vector.Any(combined) {
			return tail + resolveForward(buf)
		}
	}
	return -1
}

// Reverse returns the offset of the last byte in haystack equal to any of
// needles (1 to 3 bytes), or -1. Mirror image of Forward.
func Reverse(haystack []byte, needles ...byte) int {
	n := len(haystack)
	if n < w {
		return scalarReverse(haystack, needles)
	}

	splats := make([]vector.V, len(needles))
	for i, b := range needles {
		splats[i] = vector.Splat(b)
	}
	var masks [8]vector.V
	buf := masks[:len(needles)]

	// InitialProbe: an unaligned load at the very end.
	if combined := eqAny(vector.LoadUnaligned(haystack[n-w:n]), splats, buf); vector.Any(combined) {
		return n - w + resolveReverse(buf)
	}

	// Aligned: retreat to the previous vector-aligned address, mirroring
	// alignForward's "step by w even when already aligned" rule so the
	// same deliberate re-examination of bytes happens in both directions.
	addr := uintptr(unsafe.Pointer(&haystack[0]))
	step := int((addr + uintptr(n)) & uintptr(w-1))
	if step == 0 {
		step = w
	}
	end := n - step

	unroll := baseUnroll(len(needles))
	block := unroll * w
	var vmasks [8][8]vector.V
	for end >= block {
		base := end - block
		var combined vector.V
		for v := 0; v < unroll; v++ {
			off := base + v*w
			c := eqAny(vector.LoadUnaligned(haystack[off:off+w]), splats, vmasks[v][:len(needles)])
			combined = vector.Or(combined, c)
		}
		if vector.Any(combined) {
			at := base + (unroll-1)*w
			for v := unroll - 1; v >= 0; v-- {
				if m := vmasks[v][:len(needles)]; anyOf(m) {
					return at + resolveReverse(m)
				}
				at -= w
			}
		}
		end = base
	}

	for end >= w {
		base := end - w
		if combined := eqAny(vector.LoadUnaligned(haystack[base:base+w]), splats, buf); vector.Any(combined) {
			return base + resolveReverse(buf)
		}
		end = base
	}

	if end > 0 {
		if combined := eqAny(vector.LoadUnaligned(haystack[0:w]), splats, buf); vector.Any(combined) {
			return resolveReverse(buf)
		}
	}
	return -1
}

func anyOf(masks []vector.V) bool {
	for _, m := range masks {
		if vector.Any(m) {
			return true
		}
	}
	return false
}
