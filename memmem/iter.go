package memmem

// FindIter produces all non-overlapping forward occurrences of a needle in
// a haystack, in increasing order.
type FindIter struct {
	haystack []byte
	needle   []byte
	finder   *Finder
	pos      int
	next     int
	empty    bool
	done     bool
}

// NewFindIter returns an iterator over every non-overlapping occurrence of
// needle in haystack. For an empty needle it enumerates 0, 1, ..., len(H).
func NewFindIter(haystack, needle []byte) *FindIter {
	return &FindIter{
		haystack: haystack,
		needle:   needle,
		finder:   NewFinder(needle),
		empty:    len(needle) == 0,
	}
}

// Next returns the next match offset and true, or (0, false) once
// exhausted.
func (it *FindIter) Next() (int, bool) {
	if it.empty {
		if it.next > len(it.haystack) {
			return 0, false
		}
		p := it.next
		it.next++
		return p, true
	}
	if it.done || it.pos > len(it.haystack) {
		return 0, false
	}
	p := it.finder.Find(it.haystack[it.pos:])
	if p < 0 {
		it.done = true
		return 0, false
	}
	abs := it.pos + p
	step := len(it.needle)
	if step < 1 {
		step = 1
	}
	it.pos = abs + step
	return abs, true
}

// RFindIter produces all non-overlapping reverse occurrences of a needle
// in a haystack, in decreasing order, the reversal of FindIter's sequence.
//
// Unlike a one-shot RFind call, the iterator reverses haystack exactly
// once at construction (for needles of length >= 2) rather than on every
// step, since re-reversing the shrinking prefix on each Next would make a
// full iteration O(n^2).
type RFindIter struct {
	haystack []byte
	revAll   []byte // reversed(haystack), built once at construction when needle length >= 2
	needle   []byte
	finder   *Finder
	bound    int
	next     int
	empty    bool
	done     bool
}

// NewRFindIter returns an iterator over every non-overlapping occurrence
// of needle in haystack, starting from the end. For an empty needle it
// enumerates len(H), len(H)-1, ..., 0.
func NewRFindIter(haystack, needle []byte) *RFindIter {
	it := &RFindIter{
		haystack: haystack,
		needle:   needle,
		finder:   NewFinder(needle),
		bound:    len(haystack),
		next:     len(haystack),
		empty:    len(needle) == 0,
	}
	if len(needle) >= 2 {
		it.revAll = reversed(haystack)
	}
	return it
}

// Next returns the next match offset (scanning from the end) and true, or
// (0, false) once exhausted.
func (it *RFindIter) Next() (int, bool) {
	if it.empty {
		if it.next < 0 {
			return 0, false
		}
		p := it.next
		it.next--
		return p, true
	}
	if it.done || it.bound < len(it.needle) {
		return 0, false
	}

	m := len(it.needle)
	if m < 2 {
		p := it.finder.RFind(it.haystack[:it.bound])
		if p < 0 {
			it.done = true
			return 0, false
		}
		it.bound = p
		return p, true
	}

	// reversed(haystack[:bound]) is the suffix of the one-time-computed
	// full reversal starting at len(haystack)-bound, so no new buffer is
	// allocated or populated per step.
	revPrefix := it.revAll[len(it.haystack)-it.bound:]
	p := rawFind(revPrefix, it.finder.needleRev, it.finder.rev)
	if p < 0 {
		it.done = true
		return 0, false
	}
	abs := it.bound - m - p
	it.bound = abs
	return abs, true
}
