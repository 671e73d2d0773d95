package curve

import "github.com/cwbudde/algo-fixed/fxp/isqrt"

// convergeTol is the acceptance window for BezierSearchT in Q1.15
// units. The direct evaluation formula does not converge exactly at the
// extreme ends of the parameter domain, so an exact-match search would
// fail there.
const convergeTol = 5

// QuadraticSolve returns the positive root of a*t^2 + b*t + (c-x) = 0
// as a Q0.16 parameter, for coefficients in Q1.15 taken from a curve
// component (b is expected non-negative). The root (det-b)/(2a) is
// computed with the discriminant in scaled fixed point and its square
// root via [isqrt.Fixed], then clamped to [0, 65535].
//
// A negative discriminant means no real root and returns 0. A zero
// leading coefficient degenerates to the linear root -(c-x)/b, or 0
// when b is also zero.
func QuadraticSolve(a, b, c, x int32) uint16 {
	cc := int64(c) - int64(x)

	if a == 0 {
		if b == 0 {
			return 0
		}
		return clampT((-cc << 16) / int64(b))
	}

	disc := int64(b)*int64(b) - 4*int64(a)*cc // Q2.30
	if disc < 0 {
		return 0
	}

	det := int64(isqrt.Fixed(uint32(disc>>6), 24)) // Q8.24

	return clampT(((det - int64(b)<<9) << 6) / int64(a))
}

// BezierSolveT inverts the X component of a quadratic Bezier
// algebraically: it builds the quadratic coefficients for the component
// through x0, x1, x2 and solves for the parameter where the curve
// reaches x. Precision degrades near the curve endpoints; use
// [BezierSearchT] when that matters.
func BezierSolveT(x0, x1, x2, x int16) uint16 {
	a := int32(x0) - 2*int32(x1) + int32(x2)
	b := 2 * (int32(x1) - int32(x0))

	return QuadraticSolve(a, b, int32(x0), int32(x))
}

// BezierSearchT inverts the X component of a quadratic Bezier by binary
// search over the parameter domain. The X component must be monotonic
// in t. Any sample within convergeTol of the target is accepted; if the
// search exhausts without one, the low bound is returned as the designed
// fallback.
func BezierSearchT(p0, p1, p2 Point, x int16) uint16 {
	low, high := int32(0), int32(65535)

	for low <= high {
		mid := low + (high-low)/2

		sample := QuadraticEval(p0.X, p1.X, p2.X, uint16(mid))
		delta := int32(x) - int32(sample)

		switch {
		case delta < -convergeTol:
			high = mid - 1
		case delta > convergeTol:
			low = mid + 1
		default:
			return uint16(mid)
		}
	}

	if low > 65535 {
		low = 65535
	}

	return uint16(low)
}

func clampT(t int64) uint16 {
	if t < 0 {
		return 0
	}
	if t > 65535 {
		return 65535
	}

	return uint16(t)
}
