package base10

// siPrefixes maps prefix exponents -18..18 (step 3) to their symbols.
// The middle slot is the "times one" prefix and renders as nothing.
var siPrefixes = [13]rune{'a', 'f', 'p', 'n', 'µ', 'm', 0, 'k', 'M', 'G', 'T', 'P', 'E'}

// binPrefixes are the binary magnitude prefixes for successive powers of
// 1024.
var binPrefixes = [6]rune{'k', 'M', 'G', 'T', 'P', 'E'}

// SI scales value * 10^valueExp to the largest magnitude prefix that
// keeps it in [1, 1000), returning the scaled value at the caller's
// fixed-point scale fpScale together with the prefix symbol. The end
// prefixes clamp instead of overflowing, so magnitudes outside the table
// simply fall below 1 or above 1000 under 'a' or 'E'. The prefix is 0
// when no prefix applies.
//
// With pow2 set and valueExp zero, binary prefixes are used instead and
// the magnitude kept in [1, 1024).
//
// Rounding to the caller's scale is to nearest, ties away from zero.
// The sign of value is preserved.
func SI(value int64, valueExp int, fpScale int64, pow2 bool) (scaled int64, prefix rune) {
	if value == 0 {
		return 0, 0
	}

	if pow2 && valueExp == 0 {
		return binarySI(value, fpScale)
	}

	// Work in whole prefix steps.
	for valueExp%3 != 0 {
		value *= 10
		valueExp--
	}

	mag := value
	if mag < 0 {
		mag = -mag
	}

	exp := ilog10i64(mag) + valueExp

	pe := exp / 3
	if exp < 0 && exp%3 != 0 {
		pe--
	}
	pe *= 3

	if pe > 18 {
		pe = 18
	} else if pe < -18 {
		pe = -18
	}

	num := value * fpScale
	shift := valueExp - pe
	if shift >= 0 {
		return num * pow10[shift], siPrefixes[(pe+18)/3]
	}

	return divRound(num, pow10[-shift]), siPrefixes[(pe+18)/3]
}

func binarySI(value, fpScale int64) (int64, rune) {
	mag := value
	if mag < 0 {
		mag = -mag
	}

	k := 0
	for mag >= 1024 && k < len(binPrefixes) {
		mag >>= 10
		k++
	}

	num := value * fpScale
	if k == 0 {
		return num, 0
	}

	return divRound(num, int64(1)<<(10*k)), binPrefixes[k-1]
}

// ilog10i64 returns floor(log10(n)) for n >= 1 by repeated division; the
// pre-scaled working value can exceed the 32-bit domain of intlog.Log10.
func ilog10i64(n int64) int {
	log := 0
	for n >= 10 {
		n /= 10
		log++
	}

	return log
}
