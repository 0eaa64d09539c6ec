package linkedlist

import "fmt"

// MergeSorted merges two non-decreasing chains into one non-decreasing chain
// and returns its head.
//
// Every node of a and b appears exactly once in the result; nodes are only
// relinked. On equal values the node from a is placed first, and the
// relative order within each input is preserved. An exhausted side hands
// the remainder of the other chain over unchanged.
//
// The walk keeps a sentinel whose Next is the result head and a tail
// pointer. Memory is O(1) regardless of chain length.
//
// Both inputs are consumed; see the package documentation.
//
// Complexity: O(n+m) time, O(1) memory.
func MergeSorted(a, b *Node) *Node {
	var sentinel Node
	tail := &sentinel

	for a != nil && b != nil {
		if b.Val < a.Val {
			tail.Next, b = b, b.Next
		} else {
			tail.Next, a = a, a.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return sentinel.Next
}

// Validate reports ErrCycle if head loops and ErrNotSorted if some node is
// smaller than its predecessor. A nil head is valid.
//
// Cycle detection uses the tortoise/hare walk, so no node set is allocated.
func Validate(head *Node) error {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
		if slow == fast {
			return ErrCycle
		}
	}

	for n := head; n != nil && n.Next != nil; n = n.Next {
		if n.Next.Val < n.Val {
			return fmt.Errorf("%w: %d follows %d", ErrNotSorted, n.Next.Val, n.Val)
		}
	}

	return nil
}

// MergeSortedChecked validates both chains and merges them.
// Neither chain is touched when validation fails.
func MergeSortedChecked(a, b *Node) (*Node, error) {
	if err := Validate(a); err != nil {
		return nil, fmt.Errorf("first chain: %w", err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("second chain: %w", err)
	}

	return MergeSorted(a, b), nil
}
