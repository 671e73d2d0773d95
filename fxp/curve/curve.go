package curve

// Point is a 2D coordinate with signed Q1.15 components.
type Point struct {
	X, Y int16
}

// Lerp linearly interpolates between the Q1.15 scalars a0 and a1 using
// the Q0.16 interpolant t.
func Lerp(a0, a1 int16, t uint16) int16 {
	d := int64(a1) - int64(a0)
	return int16(int64(a0) + (int64(t)*d)>>16)
}

// LerpPoint linearly interpolates between two points componentwise.
func LerpPoint(p0, p1 Point, t uint16) Point {
	return Point{
		X: Lerp(p0.X, p1.X, t),
		Y: Lerp(p0.Y, p1.Y, t),
	}
}

// QuadraticEval evaluates one scalar component of a quadratic Bezier
// with control values a, b, c at parameter t, using the expanded
// polynomial a + 2t(b-a) + t^2(a-2b+c).
func QuadraticEval(a, b, c int16, t uint16) int16 {
	tt := int64(t)
	t2 := (tt * tt) >> 16 // Q0.16

	v := int64(a)
	v += (2 * tt * (int64(b) - int64(a))) >> 16
	v += (t2 * (int64(a) - 2*int64(b) + int64(c))) >> 16

	// Truncation can push a hull-edge result one or two counts past
	// the Q1.15 range; clamp instead of wrapping.
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}

	return int16(v)
}

// QuadraticBezier evaluates the quadratic Bezier with control points
// p0, p1, p2 at parameter t.
func QuadraticBezier(p0, p1, p2 Point, t uint16) Point {
	return Point{
		X: QuadraticEval(p0.X, p1.X, p2.X, t),
		Y: QuadraticEval(p0.Y, p1.Y, p2.Y, t),
	}
}
