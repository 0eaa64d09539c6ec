// Package twosum finds index pairs (and triples) whose values add up to a
// requested target.
//
// 🚀 What is two-sum?
//
//	Given nums and a target, return positions i < j such that
//	nums[i] + nums[j] == target. It is the canonical "hash the complement"
//	exercise and the basis of k-sum style searches.
//
// ✨ Key features:
//   - FindPair: single pass, O(n) time, O(n) memory, first match in scan order
//   - duplicate policy: KeepFirst (default) or KeepLatest index per value
//   - FindPairSorted: two pointers, O(n) time, O(1) memory, for sorted input
//   - ThreeSum: all unique zero-sum triples, O(n²) after sorting a copy
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkata/twosum"
//
//	pair := twosum.FindPair([]int{2, 7, 11, 15}, 9) // [0 1]
//	none := twosum.FindPair([]int{1, 2, 3}, 100)   // []
//
// Absence of a pair is never an error: the result is an empty slice.
package twosum
