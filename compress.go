package lcp

import "math/bits"

// compress is the deterministic coin-tossing (DCT) step: it rewrites right
// in place as "how does right first differ from left", so the next level's
// parser can compare cores by plain integer magnitude. left is read-only.
//
// The comparison strategy branches on whether left is a level-1 core.
func compress(left *Core, right *Core) {
	if left.IsLevel1() {
		compressLevel1(left, right)
	} else {
		compressUpperLevel(left, right)
	}
	// the compressed core now logically covers left's span too.
	right.Start = left.Start
}

// compressLevel1 implements the five-way structural comparison run when the
// left neighbour is a raw-symbol core: last-symbol codes, then second-last,
// then middle-run counts, then first-symbol codes, then (if all equal) a
// stable sentinel proportional to right's own length.
func compressLevel1(left, right *Core) {
	l3 := left.BitRep & 3
	l2 := (left.BitRep >> 2) & 3
	lMid := (left.BitRep &^ level1Flag) >> 6
	l1 := (left.BitRep >> 4) & 3

	r3 := right.BitRep & 3
	r2 := (right.BitRep >> 2) & 3
	rMid := (right.BitRep &^ level1Flag) >> 6
	r1 := (right.BitRep >> 4) & 3

	switch {
	case l3 != r3:
		if (l3 & 1) != (r3 & 1) {
			right.BitRep = r3 & 1
		} else {
			right.BitRep = 2 + ((r3 >> 1) & 1)
		}
		right.BitSize = 2

	case l2 != r2:
		if (l2 & 1) != (r2 & 1) {
			right.BitRep = 4 + (r2 & 1)
		} else {
			right.BitRep = 6 + ((r2 >> 1) & 1)
		}
		right.BitSize = uint32(bits.Len64(right.BitRep))

	case lMid != rMid:
		if lMid < rMid {
			// compare left's first-symbol code against right's second-last
			if (l1 & 1) != (r2 & 1) {
				right.BitRep = 4*(lMid+1) + (r2 & 1)
			} else {
				right.BitRep = 2*(2*(lMid+1)+1) + ((r2 >> 1) & 1)
			}
		} else {
			// compare left's second-last code against right's first-symbol
			if (l2 & 1) != (r1 & 1) {
				right.BitRep = 4*(rMid+1) + (r1 & 1)
			} else {
				right.BitRep = 2*(2*(rMid+1)+1) + ((r1 >> 1) & 1)
			}
		}
		right.BitSize = uint32(bits.Len64(right.BitRep))

	case l1 != r1:
		if (l1 & 1) != (r1 & 1) {
			right.BitRep = 4*(lMid+1) + (r1 & 1)
		} else {
			right.BitRep = 2*(2*(lMid+1)+1) + ((r1 >> 1) & 1)
		}
		right.BitSize = uint32(bits.Len64(right.BitRep))

	default:
		right.BitRep = 2 * uint64(right.BitSize)
		right.BitSize = uint32(bits.Len64(right.BitRep))
	}
}

// compressUpperLevel implements the bitwise trailing-difference comparison
// run when the left neighbour is itself already a DCT-compressed core:
// find the lowest-order bit at which left and right differ, clamp it to
// the smaller of the two bit sizes, and encode the index plus the parity
// of right's bit at that index.
func compressUpperLevel(left, right *Core) {
	var firstDiff uint32
	if left.BitRep != right.BitRep {
		firstDiff = uint32(bits.TrailingZeros64(left.BitRep ^ right.BitRep))
	} else {
		firstDiff = right.BitSize
	}
	if m := min(left.BitSize, right.BitSize); firstDiff > m {
		firstDiff = m
	}

	right.BitRep = 2*uint64(firstDiff) + ((right.BitRep >> firstDiff) & 1)
	if right.BitRep == 0 {
		right.BitSize = 2
	} else {
		right.BitSize = uint32(bits.Len64(right.BitRep))
	}
	if right.BitSize < 2 {
		right.BitSize = 2
	}
}
