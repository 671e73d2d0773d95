// Package intlog provides integer and fixed-point logarithms built on the
// leading-zero count: an exact base-10 floor log, an arbitrary-base floor
// log, and a Q16.15 base-2 log via table lookup and interpolation.
package intlog

import "github.com/cwbudde/algo-fixed/fxp/bitint"

// log10Est maps a leading-zero count to an estimated base-10 log. The
// estimate is exact or one too high; Log10 corrects it with a single
// power-of-ten comparison.
var log10Est = [33]int8{
	9, 9, 9, // clz 0 - 2    (2^32-1 .. 2^29)
	8, 8, 8, // clz 3 - 5    (2^29-1 .. 2^26)
	7, 7, 7, // clz 6 - 8    (2^26-1 .. 2^23)
	6, 6, 6, 6, // clz 9 - 12   (2^23-1 .. 2^19)
	5, 5, 5, // clz 13 - 15  (2^19-1 .. 65536)
	4, 4, 4, // clz 16 - 18  (65535 .. 8192)
	3, 3, 3, 3, // clz 19 - 22  (8191 .. 512)
	2, 2, 2, // clz 23 - 25  (511 .. 64)
	1, 1, 1, // clz 26 - 28  (63 .. 8)
	0, 0, 0, 0, // clz 29 - 32  (7 .. 0)
}

var pow10 = [10]uint32{
	1, 10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000,
}

// Log10 returns floor(log10(n)) for n >= 1. It is exact for every 32-bit
// input. n = 0 is out of domain and returns 0.
func Log10(n uint32) int {
	log := int(log10Est[bitint.LeadingZeros(n)])
	if n < pow10[log] {
		log--
	}

	if log < 0 {
		return 0
	}

	return log
}

// Log returns floor(log_base(n)) for n >= 1 and base >= 2 by repeated
// division.
func Log(n, base uint32) int {
	log := 0
	for n >= base {
		n /= base
		log++
	}

	return log
}

// log2Frac holds log2(1 + k/64) in Q0.15 for k = 0..64. The final entry is
// exactly 1.0 (32768) so interpolation against index+1 stays in range.
var log2Frac = [65]uint16{
	0, 733, 1455, 2166, 2866, 3556, 4236, 4907,
	5568, 6220, 6863, 7498, 8124, 8742, 9352, 9954,
	10549, 11136, 11716, 12289, 12855, 13415, 13968, 14514,
	15055, 15589, 16117, 16639, 17156, 17667, 18173, 18673,
	19168, 19658, 20143, 20623, 21098, 21568, 22034, 22495,
	22952, 23404, 23852, 24296, 24736, 25172, 25604, 26031,
	26455, 26876, 27292, 27705, 28114, 28520, 28922, 29321,
	29717, 30109, 30498, 30884, 31267, 31647, 32024, 32397,
	32768,
}

// Log2 returns log2(n * 2^-fpExp) in Q16.15 signed fixed point.
//
// The integer part comes from the leading-zero count. The mantissa is
// normalised so its top bit is bit 31; the next 6 bits select an entry of
// the log2(1 + k/64) table and the following 15 bits linearly interpolate
// toward the adjacent entry. n = 0 is out of domain and returns the
// exponent correction alone.
func Log2(n uint32, fpExp uint) int32 {
	clz := bitint.LeadingZeros(n)
	norm := n << uint(clz)

	ix := (norm >> 25) & 0x3F
	t := int32((norm >> 10) & 0x7FFF)

	lo := int32(log2Frac[ix])
	hi := int32(log2Frac[ix+1])
	frac := lo + ((t * (hi - lo)) >> 15)

	return ((31-int32(clz))-int32(fpExp))<<15 + frac
}
