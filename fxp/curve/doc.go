// Package curve evaluates and inverts quadratic Bezier curves in Q1.15
// fixed point with a Q0.16 parameter.
//
// Scalars and [Point] components are signed Q1.15 covering [-1, 1); the
// curve parameter t is unsigned Q0.16 covering [0, 1). Evaluation uses
// the direct polynomial form rather than repeated De Casteljau
// interpolation; the two are mathematically equivalent and the direct
// form is cheaper.
//
// Two inversions are available for monotonic X components:
// [BezierSolveT] inverts algebraically through the quadratic formula and
// loses precision near the curve endpoints, while [BezierSearchT]
// binary-searches the parameter domain and accepts any sample within ±5
// Q1.15 units of the target.
package curve
