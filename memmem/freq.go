package memmem

// byteFrequency holds empirical byte frequency ranks used to pick good
// prefilter probe bytes out of a needle: lower rank means rarer, and
// rarer bytes make better SIMD prefilter anchors because they produce
// fewer false-positive candidates.
//
// The table is a fixed background distribution over Latin-ASCII text and
// source code, biased so control bytes and high bytes (rare in text, common
// in binary boundaries) rank low.
var byteFrequency = [256]byte{
	// 0x00-0x0F: control characters, generally rare in text.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	// 0x10-0x1F: more control characters.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: space and punctuation.
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: digits and more punctuation.
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F: '@' and uppercase A-O.
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F: uppercase P-Z and brackets.
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F: backtick and lowercase a-o.
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F: lowercase p-z and braces.
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: extended/UTF-8 continuation bytes, rare in text.
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// selectProbes picks two indices p1 <= p2 into needle (len(needle) >= 2)
// for the SIMD prefilter, biasing toward the rarest bytes seen. p1 and p2
// are always distinct positions even if the needle repeats a byte value,
// satisfying the Finder invariant that p1 < p2 whenever m >= 2.
func selectProbes(needle []byte) (p1, p2 int) {
	idx1, idx2 := 0, 1
	b1, b2 := needle[0], needle[1]
	if byteFrequency[b2] < byteFrequency[b1] {
		idx1, idx2 = idx2, idx1
		b1, b2 = b2, b1
	}
	for i := 2; i < len(needle); i++ {
		b := needle[i]
		rank := byteFrequency[b]
		switch {
		case rank < byteFrequency[b1]:
			idx2, b2 = idx1, b1
			idx1, b1 = i, b
		case rank < byteFrequency[b2]:
			idx2, b2 = i, b
		}
	}
	if idx1 <= idx2 {
		return idx1, idx2
	}
	return idx2, idx1
}
