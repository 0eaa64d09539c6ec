package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkata/linkedlist"
)

// ExampleMergeSorted merges [1 2 4] with [1 3 4].
func ExampleMergeSorted() {
	a := linkedlist.FromSlice([]int{1, 2, 4})
	b := linkedlist.FromSlice([]int{1, 3, 4})

	fmt.Println(linkedlist.Values(linkedlist.MergeSorted(a, b)))
	// Output: [1 1 2 3 4 4]
}

// ExampleMergeSortedChecked rejects an unsorted chain before relinking anything.
func ExampleMergeSortedChecked() {
	_, err := linkedlist.MergeSortedChecked(
		linkedlist.FromSlice([]int{1, 2}),
		linkedlist.FromSlice([]int{3, 0}),
	)
	fmt.Println(err)
	// Output: second chain: linkedlist: chain is not sorted: 0 follows 3
}
