package twosum

import "sort"

// ThreeSum returns every distinct value triple {a, b, c} from nums with
// a + b + c == 0. Each triple is ascending and the result is sorted
// lexicographically. nums is not modified.
//
// A copy of nums is sorted, then for each anchor the remaining suffix is
// scanned with the FindPairSorted two-pointer walk, skipping repeated
// values so no triple is reported twice.
//
// Complexity: O(n²) time, O(n) memory for the copy.
func ThreeSum(nums []int) [][3]int {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	out := make([][3]int, 0)
	n := len(sorted)
	for a := 0; a < n-2; a++ {
		if a > 0 && sorted[a] == sorted[a-1] {
			continue // same anchor value already handled
		}
		if sorted[a] > 0 {
			break
		}
		left, right := a+1, n-1
		for left < right {
			sum := sorted[a] + sorted[left] + sorted[right]
			switch {
			case sum < 0:
				left++
			case sum > 0:
				right--
			default:
				out = append(out, [3]int{sorted[a], sorted[left], sorted[right]})
				left++
				right--
				for left < right && sorted[left] == sorted[left-1] {
					left++
				}
				for left < right && sorted[right] == sorted[right+1] {
					right--
				}
			}
		}
	}

	return out
}
