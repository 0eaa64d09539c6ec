package linkedlist

import "errors"

var (
	// ErrCycle indicates a chain whose successor links loop back on themselves.
	ErrCycle = errors.New("linkedlist: chain contains a cycle")

	// ErrNotSorted indicates a chain that is not non-decreasing by value.
	ErrNotSorted = errors.New("linkedlist: chain is not sorted")
)

// Node is one element of a singly linked chain.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a fresh chain holding vals in order. An empty slice
// yields nil.
func FromSlice(vals []int) *Node {
	var head *Node
	for i := len(vals) - 1; i >= 0; i-- {
		head = &Node{Val: vals[i], Next: head}
	}

	return head
}

// Values returns the chain's values in order. It returns an empty
// (non-nil) slice for the empty chain. head must be acyclic.
func Values(head *Node) []int {
	out := make([]int, 0)
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// Len counts the nodes of an acyclic chain.
func Len(head *Node) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}

	return n
}

// Clone returns a node-by-node copy of an acyclic chain.
func Clone(head *Node) *Node {
	return FromSlice(Values(head))
}
