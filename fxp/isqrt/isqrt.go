// Package isqrt computes fixed-point square roots with a non-restoring
// digit recurrence. Results are bit exact and deterministic; nothing is
// allocated and no floating point is involved.
package isqrt

// Fixed returns sqrt(v * 2^-fpExp) in the same Q format as v.
//
// fpExp must be even, which for a 32-bit value also makes the number of
// integer bits even; an odd integer-bit count returns 0 as the
// documented degenerate result. The recurrence consumes two radicand
// bits per step from the most significant pair downward, then rounds the
// final bit up when the remainder exceeds the root.
func Fixed(v uint32, fpExp uint) uint32 {
	if (32-fpExp)%2 != 0 {
		return 0
	}

	// A root in Q(fpExp) is sqrt(v * 2^fpExp), so widen the radicand
	// by the fractional bit count before extracting digits.
	x := uint64(v) << fpExp

	var root uint64
	bit := uint64(1) << 62
	for bit > x {
		bit >>= 2
	}

	for bit != 0 {
		if x >= root+bit {
			x -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}

	// Round up when the remainder is past the midpoint between root
	// and root+1: (root + 1/2)^2 = root^2 + root + 1/4.
	if x > root {
		root++
	}

	return uint32(root)
}
