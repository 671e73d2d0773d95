// Package round converts fixed-point values with an arbitrary integer
// scale to the nearest integer.
package round

// Uint converts the unsigned fixed-point value v/scale to the nearest
// integer, rounding halves up. scale must be >= 1.
func Uint(v, scale uint32) uint32 {
	return (v + scale/2) / scale
}

// Int converts the signed fixed-point value v/scale to the nearest
// integer, rounding halves away from zero. scale must be >= 1.
func Int(v, scale int32) int32 {
	if v < 0 {
		return (v - scale/2) / scale
	}

	return (v + scale/2) / scale
}
