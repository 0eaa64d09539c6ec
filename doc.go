// Package lvlkata is a small collection of classic algorithm exercises,
// each solved once, tested thoroughly and documented with its complexity.
//
// 🚀 What is inside?
//
//	Pure functions over in-memory input, no shared state:
//		• twosum     — hash-the-complement pair lookup, sorted two-pointer, 3-sum
//		• brackets   — stack-based bracket validation with diagnostics, generation
//		• linkedlist — singly linked chains and their stable iterative merge
//		• search     — binary search and lower bound over sorted slices
//		• bitstring  — addition of arbitrarily long binary strings
//
// ✨ Why?
//
//   - Beginner-friendly – one function per idea, clear naming
//   - Total functions – "no answer" is a value ([]int{}, false, -1), not a panic
//   - Property-tested – every algorithm is checked against a brute-force reference
//
// Quick example:
//
//	twosum.FindPair([]int{2, 7, 11, 15}, 9)   // [0 1]
//	brackets.IsValid("{[]}")                  // true
//	linkedlist.Values(linkedlist.MergeSorted(
//		linkedlist.FromSlice([]int{1, 2, 4}),
//		linkedlist.FromSlice([]int{1, 3, 4}))) // [1 1 2 3 4 4]
//
// The lvlkata command (cmd/lvlkata) exposes each exercise as a subcommand.
//
//	go install github.com/katalvlaran/lvlkata/cmd/lvlkata@latest
package lvlkata
