package memchr

import "github.com/fastmem/memchr/internal/scan"

// Memchr returns the index of the first occurrence of n1 in haystack, or
// -1 if it does not occur.
//
// This is operationally the same as bytes.IndexByte, but runs the
// vector-accelerated scan in internal/scan instead of a byte-by-byte loop,
// which pays off on haystacks of more than a few dozen bytes.
//
// Example:
//
//	memchr.Memchr([]byte("foo bar baz quuz"), 'z') // 10
func Memchr(haystack []byte, n1 byte) int {
	return scan.Forward(haystack, n1)
}

// Memchr2 returns the index of the first occurrence of n1 or n2 in
// haystack (whichever comes first), or -1 if neither occurs.
//
// Example:
//
//	memchr.Memchr2([]byte("the quick brown fox"), 'k', 'q') // 4
func Memchr2(haystack []byte, n1, n2 byte) int {
	return scan.Forward(haystack, n1, n2)
}

// Memchr3 returns the index of the first occurrence of n1, n2, or n3 in
// haystack (whichever comes first), or -1 if none occur.
//
// Example:
//
//	memchr.Memchr3([]byte("the quick brown fox"), 'k', 'q', 'e') // 2
func Memchr3(haystack []byte, n1, n2, n3 byte) int {
	return scan.Forward(haystack, n1, n2, n3)
}
