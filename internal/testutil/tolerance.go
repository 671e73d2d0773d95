// Package testutil provides integer tolerance helpers for the
// fixed-point test suites.
package testutil

import "testing"

// AbsDiff returns |a - b| without overflow for int64 inputs of the
// magnitudes used in the toolkit.
func AbsDiff(a, b int64) int64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// RequireWithin fails t when got and want differ by more than tol.
func RequireWithin(t *testing.T, got, want, tol int64) {
	t.Helper()
	if d := AbsDiff(got, want); d > tol {
		t.Fatalf("got %d, want %d (diff %d > tol %d)", got, want, d, tol)
	}
}

// WithinQ15 reports whether two Q1.15 values differ by at most tol
// counts.
func WithinQ15(a, b int16, tol int64) bool {
	return AbsDiff(int64(a), int64(b)) <= tol
}
