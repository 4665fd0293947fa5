/*
Package memchr provides heavily optimized routines for byte-level search
primitives.

# Overview

The top-level package provides routines for searching for 1, 2, or 3 bytes
in the forward or reverse direction. When searching for more than one byte,
a position is considered a match if the byte at that position equals any
of the needle bytes. The [memmem] sub-package provides forward and reverse
substring search routines for needles of arbitrary length.

In all cases, routines operate on []byte without regard to encoding. This
is exactly what you want when searching either UTF-8 text or arbitrary
binary data.

# Example: finding a single byte

	haystack := []byte("foo bar baz quuz")
	pos := memchr.Memchr(haystack, 'z')
	// pos == 10

# Example: matching one of three possible bytes, in reverse

	haystack := []byte("xyzaxyzbxyzc")
	it := memchr.Memrchr3Iter(haystack, 'a', 'b', 'c')
	pos, _ := it.Next() // 11
	pos, _ = it.Next()  // 7
	pos, _ = it.Next()  // 3

# Example: iterating over substring matches

	haystack := []byte("foo bar foo baz foo")
	it := memmem.NewFindIter(haystack, []byte("foo"))
	pos, _ := it.Next() // 0
	pos, _ = it.Next()  // 8
	pos, _ = it.Next()  // 16

# Why this package exists

A one-line implementation of memchr is trivial:

	func memchr(needle byte, haystack []byte) int {
		for i, b := range haystack {
			if b == needle {
				return i
			}
		}
		return -1
	}

The routines in this package exist purely for throughput: on large
haystacks the byte-set scans here process many bytes per loop iteration
instead of one, and the substring searcher combines a prefilter over a
rare needle byte with a Two-Way verification step so worst-case behavior
stays linear regardless of how adversarial the input is.
*/
package memchr
