package memchr

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemrchrAgreesWithStdlib(t *testing.T) {
	haystack := []byte("the quick brown fox")
	if got, want := Memrchr(haystack, 'o'), bytes.LastIndexByte(haystack, 'o'); got != want {
		t.Errorf("Memrchr = %d, want %d", got, want)
	}
	if got := Memrchr(haystack, 'Q'); got != -1 {
		t.Errorf("Memrchr(absent) = %d, want -1", got)
	}
}

func TestMemrchr2And3(t *testing.T) {
	haystack := []byte("xyzaxyzbxyzc")
	if got, want := Memrchr2(haystack, 'a', 'b'), 7; got != want {
		t.Errorf("Memrchr2 = %d, want %d", got, want)
	}
	if got, want := Memrchr3(haystack, 'a', 'b', 'c'), 11; got != want {
		t.Errorf("Memrchr3 = %d, want %d", got, want)
	}
}

func TestMemrchrIterFindsAllOccurrencesInReverseOrder(t *testing.T) {
	haystack := []byte("xyzaxyzbxyzc")
	it := Memrchr3Iter(haystack, 'a', 'b', 'c')
	var got []int
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	if diff := cmp.Diff([]int{11, 7, 3}, got); diff != "" {
		t.Errorf("Memrchr3Iter mismatch (-want +got):\n%s", diff)
	}
}

func TestMemrchrIterIsReversalOfMemchrIter(t *testing.T) {
	haystack := []byte("mississippi")
	fwd := MemchrIter(haystack, 's')
	var forward []int
	for {
		p, ok := fwd.Next()
		if !ok {
			break
		}
		forward = append(forward, p)
	}

	rev := MemrchrIter(haystack, 's')
	var reverse []int
	for {
		p, ok := rev.Next()
		if !ok {
			break
		}
		reverse = append(reverse, p)
	}

	reversedForward := make([]int, len(forward))
	for i, p := range forward {
		reversedForward[len(forward)-1-i] = p
	}
	if diff := cmp.Diff(reversedForward, reverse); diff != "" {
		t.Errorf("MemrchrIter mismatch (-want +got):\n%s", diff)
	}
}
