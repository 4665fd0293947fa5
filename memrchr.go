package memchr

import "github.com/fastmem/memchr/internal/scan"

// Memrchr returns the index of the last occurrence of n1 in haystack, or
// -1 if it does not occur.
//
// Example:
//
//	memchr.Memrchr([]byte("the quick brown fox"), 'o') // 17
func Memrchr(haystack []byte, n1 byte) int {
	return scan.Reverse(haystack, n1)
}

// Memrchr2 returns the index of the last occurrence of n1 or n2 in
// haystack (whichever occurs later), or -1 if neither occurs.
func Memrchr2(haystack []byte, n1, n2 byte) int {
	return scan.Reverse(haystack, n1, n2)
}

// Memrchr3 returns the index of the last occurrence of n1, n2, or n3 in
// haystack (whichever occurs later), or -1 if none occur.
func Memrchr3(haystack []byte, n1, n2, n3 byte) int {
	return scan.Reverse(haystack, n1, n2, n3)
}
