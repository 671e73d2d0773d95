// Package bitint provides bit-level integer primitives shared by the
// fixed-point packages: leading-zero counts and power-of-two rounding.
//
// All functions are allocation-free and constant time.
package bitint

import "math/bits"

// LeadingZeros returns the number of zero bits before the first set bit
// of x. LeadingZeros(0) is 32.
func LeadingZeros(x uint32) int {
	return bits.LeadingZeros32(x)
}

// CeilPow2 returns the smallest power of two >= x for x in [1, 1<<31].
// CeilPow2(0) returns 0.
func CeilPow2(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (32 - bits.LeadingZeros32(x-1))
}

// FloorPow2 returns the largest power of two <= x for x >= 1.
// FloorPow2(0) returns 0.
func FloorPow2(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (31 - bits.LeadingZeros32(x))
}
