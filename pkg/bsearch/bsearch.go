// Package bsearch implements an iterative binary search that reports how many
// probes it took and, on a miss, the element just below where x would be.
package bsearch

import "cmp"

// Search looks for x in the sorted slice arr. It returns the number of loop
// iterations performed and the value at the last examined boundary: arr[mid]
// when x is found, otherwise arr[high] after the bounds cross. When high has
// moved below zero (x is smaller than every element, or arr is empty) ok is
// false and value is the zero value.
func Search[T cmp.Ordered](arr []T, x T) (iterations int, value T, ok bool) {
	low, high := 0, len(arr)-1
	for low <= high {
		iterations++
		mid := (low + high) / 2
		switch {
		case arr[mid] < x:
			low = mid + 1
		case arr[mid] > x:
			high = mid - 1
		default:
			return iterations, arr[mid], true
		}
	}
	if high >= 0 {
		return iterations, arr[high], true
	}
	return iterations, value, false
}
