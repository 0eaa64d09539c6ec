// Package search locates values in sorted integer slices by halving the
// search interval.
//
//	Binary([]int{-1, 0, 3, 5, 9, 12}, 9)     // 4
//	Binary([]int{-1, 0, 3, 5, 9, 12}, 2)     // -1
//	LowerBound([]int{1, 3, 3, 7}, 3)         // 1
//
// Complexity: O(log n) time, O(1) memory.
package search
