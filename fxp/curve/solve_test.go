package curve

import (
	"testing"

	"github.com/cwbudde/algo-fixed/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestQuadraticSolve_NegativeDiscriminant(t *testing.T) {
	// t^2 + 1 = 0 has no real root: domain policy is 0.
	if got := QuadraticSolve(32767, 0, 32767, 0); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestQuadraticSolve_Linear(t *testing.T) {
	// Degenerate a: 1.0*t - 0.5 = 0 at t = 0.5.
	if got := QuadraticSolve(0, 32768, -16384, 0); got != 32768 {
		t.Errorf("got %d, want 32768", got)
	}
	if got := QuadraticSolve(0, 0, 123, 0); got != 0 {
		t.Errorf("fully degenerate: got %d, want 0", got)
	}
}

func TestQuadraticSolve_Clamped(t *testing.T) {
	// Root far above the parameter domain clamps to the top.
	if got := QuadraticSolve(0, 32768, -98304, 0); got != 65535 {
		t.Errorf("high clamp: got %d, want 65535", got)
	}
	if got := QuadraticSolve(0, 32768, 16384, 0); got != 0 {
		t.Errorf("low clamp: got %d, want 0", got)
	}
}

func TestBezierSolveT_Midpoint(t *testing.T) {
	// The symmetric monotonic curve crosses x=0 at t=0.5.
	got := BezierSolveT(-32768, 0, 32767, 0)
	require.EqualValues(t, 32768, got)
}

func TestBezierSearchT_Midpoint(t *testing.T) {
	p0 := Point{X: -32768, Y: -32768}
	p1 := Point{X: 0, Y: 16384}
	p2 := Point{X: 32767, Y: 32767}

	got := BezierSearchT(p0, p1, p2, 0)
	require.EqualValues(t, 32767, got)
}

func TestBezierInversion_Agreement(t *testing.T) {
	p0 := Point{X: -32768, Y: -32768}
	p1 := Point{X: 0, Y: 16384}
	p2 := Point{X: 32767, Y: 32767}

	// Both inversions evaluated back onto the curve land near the
	// target. The algebraic form carries extra rounding error when the
	// quadratic term is tiny, so the window is wider than the search
	// tolerance.
	for _, x := range []int16{-30000, -20000, -10000, 0, 10000, 16384, 25000, 30000} {
		ts := BezierSolveT(p0.X, p1.X, p2.X, x)
		tb := BezierSearchT(p0, p1, p2, x)

		xs := QuadraticEval(p0.X, p1.X, p2.X, ts)
		xb := QuadraticEval(p0.X, p1.X, p2.X, tb)

		if !testutil.WithinQ15(xs, x, 80) {
			t.Errorf("solve x=%d: t=%d lands at %d", x, ts, xs)
		}
		if !testutil.WithinQ15(xb, x, 6) {
			t.Errorf("search x=%d: t=%d lands at %d", x, tb, xb)
		}
		if testutil.AbsDiff(int64(ts), int64(tb)) > 64 {
			t.Errorf("x=%d: solve t=%d and search t=%d disagree", x, ts, tb)
		}
	}
}

func TestBezierInversion_CurvedAgreement(t *testing.T) {
	// A curve with a real quadratic term: both inversions agree
	// tightly away from the endpoints.
	x0, x1, x2 := int16(-32768), int16(-16384), int16(32767)
	p0 := Point{X: x0}
	p1 := Point{X: x1}
	p2 := Point{X: x2}

	for _, x := range []int16{-20000, -10000, 0, 10000, 20000} {
		ts := BezierSolveT(x0, x1, x2, x)
		tb := BezierSearchT(p0, p1, p2, x)

		if testutil.AbsDiff(int64(ts), int64(tb)) > 8 {
			t.Errorf("x=%d: solve t=%d, search t=%d", x, ts, tb)
		}
	}
}

func TestBezierSearchT_RoundTrip(t *testing.T) {
	p0 := Point{X: -32768}
	p1 := Point{X: -8000}
	p2 := Point{X: 32767}

	for tt := uint32(0); tt <= 65535; tt += 1111 {
		x := QuadraticEval(p0.X, p1.X, p2.X, uint16(tt))
		back := BezierSearchT(p0, p1, p2, x)
		xb := QuadraticEval(p0.X, p1.X, p2.X, back)

		if !testutil.WithinQ15(xb, x, 6) {
			t.Errorf("t=%d: x=%d searches back to t=%d at x=%d", tt, x, back, xb)
		}
	}
}

func TestBezierSearchT_Fallback(t *testing.T) {
	// Target beyond the curve's range exhausts the search and returns
	// the clamped low bound.
	p0 := Point{X: -16384}
	p1 := Point{X: 0}
	p2 := Point{X: 16384}

	if got := BezierSearchT(p0, p1, p2, 32000); got != 65535 {
		t.Errorf("above range: got %d, want 65535", got)
	}
	if got := BezierSearchT(p0, p1, p2, -32000); got != 0 {
		t.Errorf("below range: got %d, want 0", got)
	}
}

func BenchmarkBezierSolveT(b *testing.B) {
	b.ReportAllocs()
	var sink uint16
	for i := 0; i < b.N; i++ {
		sink += BezierSolveT(-32768, 0, 32767, int16(i))
	}
	_ = sink
}

func BenchmarkBezierSearchT(b *testing.B) {
	b.ReportAllocs()
	p0 := Point{X: -32768}
	p1 := Point{X: 0}
	p2 := Point{X: 32767}

	var sink uint16
	for i := 0; i < b.N; i++ {
		sink += BezierSearchT(p0, p1, p2, int16(i))
	}
	_ = sink
}
