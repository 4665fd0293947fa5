package memmem

import "github.com/fastmem/memchr/internal/scan"

// factorization holds the preprocessed constants Two-Way verification and
// the SIMD prefilter need for one needle orientation: a critical
// factorization (crit, period), the "is this needle genuinely periodic"
// memo used to bound re-comparison, and the two prefilter probe positions.
//
// Two independent factorizations are computed per Finder: one for the
// needle as given (forward search) and one for the reversed needle
// (reverse search), since Two-Way's critical factorization is direction
// sensitive.
type factorization struct {
	crit     int
	period   int
	mem0     int
	periodic bool
	p1, p2   int
}

// computeFactorization runs the standard critical-factorization
// precomputation (maximal suffix in both lexicographic orders, larger
// critical index wins) and derives the shift constants Two-Way's
// verification loop needs. needle must have length >= 2.
func computeFactorization(needle []byte) factorization {
	msPos, periodPos := maximalSuffix(needle, true)
	msNeg, periodNeg := maximalSuffix(needle, false)

	var ms, period int
	if msNeg+1 > msPos+1 {
		ms, period = msNeg, periodNeg
	} else {
		ms, period = msPos, periodPos
	}

	crit := ms + 1
	m := len(needle)

	var periodic bool
	var mem0 int
	if crit+period <= m && equalBytes(needle[:crit], needle[period:period+crit]) {
		periodic = true
		mem0 = m - period
	} else {
		periodic = false
		period = maxInt(crit, m-crit) + 1
		mem0 = 0
	}

	p1, p2 := selectProbes(needle)

	return factorization{
		crit:     crit,
		period:   period,
		mem0:     mem0,
		periodic: periodic,
		p1:       p1,
		p2:       p2,
	}
}

// maximalSuffix computes a maximal suffix of needle under one of the two
// lexicographic orientations the critical factorization theorem requires.
// greaterOrder selects which comparison ("x > y" vs "x < y") breaks ties
// when extending the candidate suffix; calling this twice (once per order)
// and keeping whichever run advanced its candidate index furthest yields
// the standard critical factorization (Crochemore-Perrin).
func maximalSuffix(needle []byte, greaterOrder bool) (ms, period int) {
	i, j, k, p := -1, 0, 1, 1
	n := len(needle)
	for j+k < n {
		a, b := needle[i+k], needle[j+k]
		switch {
		case a == b:
			if k == p {
				j += p
				k = 1
			} else {
				k++
			}
		case (greaterOrder && a > b) || (!greaterOrder && a < b):
			j += k
			k = 1
			p = j - i
		default:
			i = j
			j++
			k = 1
			p = 1
		}
	}
	return i, p
}

// verify checks whether needle matches haystack at candidate position c,
// given the current memoized prefix boundary mem from a prior failed
// candidate at this same alignment. On success it returns (true, _, _). On
// failure it returns the number of bytes the search cursor must advance
// and the memo to carry into the next candidate.
func verify(haystack, needle []byte, fz factorization, c, mem int) (matched bool, shift, newMem int) {
	m := len(needle)

	k := fz.crit
	if mem > k {
		k = mem
	}
	for k < m && needle[k] == haystack[c+k] {
		k++
	}
	if k < m {
		return false, k - fz.crit + 1, 0
	}

	k = fz.crit
	for k > mem && needle[k-1] == haystack[c+k-1] {
		k--
	}
	if k <= mem {
		return true, 0, 0
	}
	return false, fz.period, fz.mem0
}

// rawFind runs the full search loop: SIMD prefilter on the first probe
// byte, a second-byte check at the second probe, then Two-Way
// verification and its shift rules on a hit. needle must have length >= 2
// and fz must be needle's own factorization.
//
// mem is only trusted across consecutive candidates exactly period bytes
// apart; the prefilter can jump the cursor past that distance, at which
// point the memoized prefix boundary no longer describes haystack at the
// new candidate and must be discarded.
func rawFind(haystack, needle []byte, fz factorization) int {
	m := len(needle)
	n := len(haystack)
	if n < m {
		return -1
	}

	i := 0
	mem := 0
	memPos := -1
	for {
		if i+fz.p1 >= n {
			return -1
		}
		j := scan.Forward(haystack[i+fz.p1:], needle[fz.p1])
		if j < 0 {
			return -1
		}
		j += i + fz.p1
		c := j - fz.p1
		if c+m > n {
			return -1
		}

		if haystack[c+fz.p2] != needle[fz.p2] {
			i = c + 1
			mem = 0
			continue
		}

		useMem := 0
		if c == memPos {
			useMem = mem
		}
		matched, shift, newMem := verify(haystack, needle, fz, c, useMem)
		if matched {
			return c
		}
		i = c + shift
		mem = newMem
		memPos = c + shift
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
