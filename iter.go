package memchr

import "github.com/fastmem/memchr/internal/scan"

// ByteIter is a lazy sequence of all positions in a haystack whose byte is
// a member of a 1-, 2-, or 3-byte needle set, produced in either forward
// or reverse order. Consecutive values from a forward ByteIter are
// strictly increasing; a reverse ByteIter produces the same set of
// positions in the opposite order.
type ByteIter struct {
	haystack []byte
	needles  [3]byte
	n        int
	reverse  bool
	pos      int // forward: next start offset
	end      int // reverse: exclusive upper bound
	done     bool
}

func newByteIter(haystack []byte, reverse bool, needles ...byte) *ByteIter {
	it := &ByteIter{haystack: haystack, n: len(needles), reverse: reverse, end: len(haystack)}
	copy(it.needles[:], needles)
	return it
}

// Next returns the next match position and true, or (0, false) once
// exhausted.
func (it *ByteIter) Next() (int, bool) {
	if it.done {
		return 0, false
	}
	needles := it.needles[:it.n]
	if it.reverse {
		if it.end == 0 {
			it.done = true
			return 0, false
		}
		p := scan.Reverse(it.haystack[:it.end], needles...)
		if p < 0 {
			it.done = true
			return 0, false
		}
		it.end = p
		return p, true
	}

	if it.pos >= len(it.haystack) {
		it.done = true
		return 0, false
	}
	p := scan.Forward(it.haystack[it.pos:], needles...)
	if p < 0 {
		it.done = true
		return 0, false
	}
	abs := it.pos + p
	it.pos = abs + 1
	return abs, true
}

// MemchrIter returns a lazy, strictly increasing sequence of every offset
// in haystack equal to n1.
func MemchrIter(haystack []byte, n1 byte) *ByteIter {
	return newByteIter(haystack, false, n1)
}

// Memchr2Iter is MemchrIter for two needle bytes.
func Memchr2Iter(haystack []byte, n1, n2 byte) *ByteIter {
	return newByteIter(haystack, false, n1, n2)
}

// Memchr3Iter is MemchrIter for three needle bytes.
func Memchr3Iter(haystack []byte, n1, n2, n3 byte) *ByteIter {
	return newByteIter(haystack, false, n1, n2, n3)
}

// MemrchrIter returns a lazy, strictly decreasing sequence of every offset
// in haystack equal to n1, the reversal of MemchrIter's sequence.
func MemrchrIter(haystack []byte, n1 byte) *ByteIter {
	return newByteIter(haystack, true, n1)
}

// Memrchr2Iter is MemrchrIter for two needle bytes.
func Memrchr2Iter(haystack []byte, n1, n2 byte) *ByteIter {
	return newByteIter(haystack, true, n1, n2)
}

// Memrchr3Iter is MemrchrIter for three needle bytes.
func Memrchr3Iter(haystack []byte, n1, n2, n3 byte) *ByteIter {
	return newByteIter(haystack, true, n1, n2, n3)
}
