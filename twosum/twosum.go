package twosum

import "fmt"

// FindPair returns the first pair of positions [i, j] (i < j) with
// nums[i] + nums[j] == target, or an empty slice when no such pair exists.
//
// Algorithm:
//  1. Walk j = 0..n-1.
//  2. complement = target - nums[j].
//  3. If complement was seen at index i, return [i, j].
//  4. Otherwise remember j for nums[j] (subject to the duplicate policy).
//
// The lookup in step 3 happens before the insert in step 4.
//
// An invalid Option is ignored and the default policy is used; call
// FindPairE to have it reported instead.
//
// Complexity: O(n) time, O(n) memory.
func FindPair(nums []int, target int, opts ...Option) []int {
	o := buildOptions(opts)
	if o.err != nil {
		o = DefaultOptions()
	}

	return findPair(nums, target, o.Policy)
}

// FindPairE is FindPair with option validation.
// It returns ErrOptionViolation (wrapped) when an Option is invalid.
func FindPairE(nums []int, target int, opts ...Option) ([]int, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, fmt.Errorf("FindPairE: %w", o.err)
	}

	return findPair(nums, target, o.Policy), nil
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func findPair(nums []int, target int, policy DuplicatePolicy) []int {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, ok := seen[target-v]; ok {
			return []int{i, j}
		}
		if policy == KeepFirst {
			if _, dup := seen[v]; dup {
				continue
			}
		}
		seen[v] = j
	}

	return []int{}
}

// FindPairSorted finds positions [i, j] (i < j, 0-based) in a non-decreasing
// slice whose values sum to target, using two converging pointers.
// Returns an empty slice when no pair exists. Input that is not sorted is
// outside the contract and may miss existing pairs. Sums beyond the int
// range are compared correctly.
//
// Complexity: O(n) time, O(1) memory.
func FindPairSorted(sorted []int, target int) []int {
	left, right := 0, len(sorted)-1
	for left < right {
		switch compareSum(sorted[left], sorted[right], target) {
		case 0:
			return []int{left, right}
		case -1:
			left++
		default:
			right--
		}
	}

	return []int{}
}

// compareSum returns -1, 0 or +1 as a+b is below, equal to or above target.
// A sum that overflows int is above every target; one that underflows is
// below every target.
func compareSum(a, b, target int) int {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return 1
	case a < 0 && b < 0 && sum >= 0:
		return -1
	case sum < target:
		return -1
	case sum > target:
		return 1
	default:
		return 0
	}
}
