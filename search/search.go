// Package search provides nearest-match binary search over sorted
// slices.
//
// Unlike sort.Search, the comparison callback returns the signed
// *magnitude* of difference between the key and a candidate element, by
// whatever measure the caller chooses. That extra information lets the
// search return a best-effort nearest index when no element matches
// exactly, and lets [NearestAbove] and [NearestBelow] coerce the result
// onto the wanted side of the key.
//
// All functions require a non-empty slice sorted in the order implied by
// diff; behavior on an empty slice is undefined and must be guarded by
// the caller.
package search

// Nearest returns the index of the element nearest to key. diff returns
// a negative value when key orders below elem, positive when above, and
// zero on an exact match; its magnitude is the distance between the two.
//
// When key falls between two elements, the closer one wins; at an exact
// midpoint the upper index wins. Keys outside the slice clamp to the
// first or last index.
func Nearest[E, K any](key K, items []E, diff func(key K, elem E) int) int {
	low, high := 0, len(items)-1

	for low <= high {
		mid := low + (high-low)/2

		delta := diff(key, items[mid])
		switch {
		case delta < 0:
			high = mid - 1
		case delta > 0:
			low = mid + 1
		default:
			return mid
		}
	}

	// low is now one above high and key lies between them.
	if low >= len(items) {
		return len(items) - 1
	}
	if high < 0 {
		return 0
	}

	highDelta := -diff(key, items[low]) // items[low] - key
	lowDelta := diff(key, items[high])  // key - items[high]
	if lowDelta < highDelta {
		return high
	}

	return low
}

// NearestAbove returns the index of the element nearest to key that
// orders at or above it, except when key is beyond the last element, in
// which case the last index is returned.
func NearestAbove[E, K any](key K, items []E, diff func(key K, elem E) int) int {
	ix := Nearest(key, items, diff)

	if ix < len(items)-1 && diff(key, items[ix]) > 0 {
		ix++
	}

	return ix
}

// NearestBelow returns the index of the element nearest to key that
// orders at or below it, except when key is below the first element, in
// which case index 0 is returned.
func NearestBelow[E, K any](key K, items []E, diff func(key K, elem E) int) int {
	ix := Nearest(key, items, diff)

	if ix > 0 && diff(key, items[ix]) < 0 {
		ix--
	}

	return ix
}
