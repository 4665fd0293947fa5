package scan

import (
	"bytes"
	"testing"
)

func scalarIndexAny(haystack []byte, needles ...byte) int {
	for i, b := range haystack {
		for _, n := range needles {
			if b == n {
				return i
			}
		}
	}
	return -1
}

func scalarLastIndexAny(haystack []byte, needles ...byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		for _, n := range needles {
			if haystack[i] == n {
				return i
			}
		}
	}
	return -1
}

func TestForwardAgreesWithScalar(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	for _, b := range haystack {
		want := bytes.IndexByte(haystack, b)
		if got := Forward(haystack, b); got != want {
			t.Errorf("Forward(%q) = %d, want %d", b, got, want)
		}
	}
	if got := Forward(haystack, 'Z'); got != -1 {
		t.Errorf("Forward(not present) = %d, want -1", got)
	}
}

func TestForwardTwoAndThreeNeedles(t *testing.T) {
	haystack := []byte("the quick brown fox")
	if got, want := Forward(haystack, 'k', 'q'), 4; got != want {
		t.Errorf("Forward(k,q) = %d, want %d", got, want)
	}
	if got, want := Forward(haystack, 'k', 'q', 'e'), 2; got != want {
		t.Errorf("Forward(k,q,e) = %d, want %d", got, want)
	}
}

func TestReverseAgreesWithScalar(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	for _, b := range haystack {
		want := scalarLastIndexAny(haystack, b)
		if got := Reverse(haystack, b); got != want {
			t.Errorf("Reverse(%q) = %d, want %d", b, got, want)
		}
	}
}

func TestReverseThreeNeedles(t *testing.T) {
	haystack := []byte("xyzaxyzbxyzc")
	want := []int{11, 7, 3}
	var got []int
	bound := len(haystack)
	for {
		p := Reverse(haystack[:bound], 'a', 'b', 'c')
		if p < 0 {
			break
		}
		got = append(got, p)
		bound = p
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDuplicateNeedlesCollapseToSingle(t *testing.T) {
	haystack := []byte("the quick brown fox")
	single := Forward(haystack, 'o')
	dup2 := Forward(haystack, 'o', 'o')
	dup3 := Forward(haystack, 'o', 'o', 'o')
	if single != dup2 || single != dup3 {
		t.Fatalf("single=%d dup2=%d dup3=%d, want all equal", single, dup2, dup3)
	}
}

// TestBoundaryCrossing plants a needle at every offset below the vector
// width and at the last byte
// for haystack lengths that straddle vector-width boundaries, per the
// "boundary crossing" property.
func TestBoundaryCrossing(t *testing.T) {
	const w = 16
	lengths := []int{w - 1, w, w + 1, 2*w - 1, 2 * w, 4*w - 1, 4 * w, 4*w + 1}
	for _, length := range lengths {
		for delta := 0; delta < w && delta < length; delta++ {
			haystack := make([]byte, length)
			for i := range haystack {
				haystack[i] = 'a'
			}
			haystack[delta] = 'z'
			if got := Forward(haystack, 'z'); got != delta {
				t.Errorf("len=%d delta=%d: Forward = %d, want %d", length, delta, got, delta)
			}
			if got := Reverse(haystack, 'z'); got != delta {
				t.Errorf("len=%d delta=%d: Reverse = %d, want %d", length, delta, got, delta)
			}

			haystack2 := make([]byte, length)
			for i := range haystack2 {
				haystack2[i] = 'a'
			}
			haystack2[length-1] = 'z'
			if got := Forward(haystack2, 'z'); got != length-1 {
				t.Errorf("len=%d last byte: Forward = %d, want %d", length, got, length-1)
			}
			if got := Reverse(haystack2, 'z'); got != length-1 {
				t.Errorf("len=%d last byte: Reverse = %d, want %d", length, got, length-1)
			}
		}
	}
}

func TestShortHaystacks(t *testing.T) {
	for n := 0; n < 20; n++ {
		haystack := bytes.Repeat([]byte{'a'}, n)
		if n > 0 {
			haystack[n/2] = 'b'
		}
		want := bytes.IndexByte(haystack, 'b')
		if got := Forward(haystack, 'b'); got != want {
			t.Errorf("n=%d: Forward = %d, want %d", n, got, want)
		}
		wantR := bytes.LastIndexByte(haystack, 'b')
		if got := Reverse(haystack, 'b'); got != wantR {
			t.Errorf("n=%d: Reverse = %d, want %d", n, got, wantR)
		}
	}
}

func TestEmptyHaystack(t *testing.T) {
	if got := Forward(nil, 'a'); got != -1 {
		t.Errorf("Forward(nil) = %d, want -1", got)
	}
	if got := Reverse(nil, 'a'); got != -1 {
		t.Errorf("Reverse(nil) = %d, want -1", got)
	}
}
