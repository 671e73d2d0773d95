// Package base10 rescales fixed-point values with an arbitrary integer
// scale into base-10 form for magnitude display.
//
//   - [Split] decomposes value/scale into an integer part and a base-10
//     fraction with exactly enough digits for the scale's resolution.
//   - [Adjust] re-rounds an existing decomposition to a new number of
//     fractional digits.
//   - [Rescale] composes the two into a single scaled integer plus a
//     base-10 exponent.
//   - [SI] converts a value to the best metric (or binary) magnitude
//     prefix at a caller-chosen fixed-point scale.
//
// All rounding is to nearest with ties away from zero. The package never
// formats anything; callers render the returned integer/exponent pairs
// themselves.
package base10
