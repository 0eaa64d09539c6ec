package search

// NotFound is returned by Binary when the target is absent.
const NotFound = -1

// Binary returns an index of target in the non-decreasing slice sorted, or
// NotFound. When target occurs several times any one of its indices may be
// returned; use LowerBound for the first.
func Binary(sorted []int, target int) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // no overflow for huge lo+hi
		switch v := sorted[mid]; {
		case v == target:
			return mid
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// LowerBound returns the first index i with sorted[i] >= target, or
// len(sorted) when every element is smaller.
func LowerBound(sorted []int, target int) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if sorted[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
