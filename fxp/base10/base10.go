package base10

import "github.com/cwbudde/algo-fixed/fxp/intlog"

// pow10 covers every exponent the int64 working range can produce.
var pow10 = [19]int64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000,
}

// Parts is the base-10 decomposition of a fixed-point value: an integer
// part and a fractional part holding exactly Digits base-10 digits.
// Frac's magnitude is always below 10^Digits and its sign matches the
// sign of the overall value (a zero fraction carries no sign).
type Parts struct {
	Integer int64
	Frac    int64
	Digits  int
}

// Split decomposes value/fpScale into integer and base-10 fractional
// parts. The fraction is scaled to just enough digits to cover the
// scale's resolution: one digit for scales up to 10, two up to 100, and
// so on, without gaining a spurious digit when fpScale is itself a power
// of ten. The fraction is rounded to nearest, ties away from zero.
//
// Scales of 1 or less mean the value is already integral: the fraction
// is 0 with zero digits. Exact for scales up to 10^9.
func Split(value, fpScale int64) Parts {
	if fpScale <= 1 {
		return Parts{Integer: value}
	}

	digits := intlog.Log10(uint32(fpScale-1)) + 1
	scaleB10 := pow10[digits]

	integer := value / fpScale
	frac := divRound((value-integer*fpScale)*scaleB10, fpScale)

	// scaleB10 >= fpScale, so the rounded fraction cannot reach
	// scaleB10 and no carry into the integer part is possible here.
	return Parts{Integer: integer, Frac: frac, Digits: digits}
}

// Adjust re-rounds p to exactly places fractional digits, ties away from
// zero. A carry out of the fraction increments the integer part away
// from zero and zeroes the fraction. places equal to p.Digits returns p
// unchanged; places below zero is the "keep full precision" sentinel and
// also returns p unchanged. Growing the digit count pads the fraction
// with trailing zeros.
func Adjust(p Parts, places int) Parts {
	if places < 0 || places == p.Digits {
		return p
	}

	if places > p.Digits {
		return Parts{
			Integer: p.Integer,
			Frac:    p.Frac * pow10[places-p.Digits],
			Digits:  places,
		}
	}

	neg := p.Frac < 0
	frac := p.Frac
	if neg {
		frac = -frac
	}

	div := pow10[p.Digits-places]
	frac = (frac + div/2) / div

	integer := p.Integer
	if frac >= pow10[places] {
		// Rounding carried all the way out of the fraction.
		if neg || integer < 0 {
			integer--
		} else {
			integer++
		}
		frac = 0
	}

	if neg {
		frac = -frac
	}

	return Parts{Integer: integer, Frac: frac, Digits: places}
}

// Rescale converts value/fpScale to a single base-10 scaled integer and
// its exponent, such that scaled * 10^exp equals value/fpScale rounded
// to places fractional digits (ties away from zero). A negative places
// keeps the full precision chosen by [Split].
func Rescale(value, fpScale int64, places int) (scaled int64, exp int) {
	p := Split(value, fpScale)
	if places >= 0 && places != p.Digits {
		p = Adjust(p, places)
	}

	return p.Integer*pow10[p.Digits] + p.Frac, -p.Digits
}

// divRound divides num by div (> 0), rounding to nearest with ties away
// from zero.
func divRound(num, div int64) int64 {
	q := num / div
	rem := num - q*div
	if rem < 0 {
		rem = -rem
	}

	if 2*rem >= div {
		if num < 0 {
			return q - 1
		}
		return q + 1
	}

	return q
}
