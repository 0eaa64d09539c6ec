// Package linkedlist provides a minimal singly linked chain of integers and
// the stable merge of two sorted chains.
//
// 🚀 What is a chain?
//
//	A chain is a *Node head; each Node links to at most one successor and
//	nil marks the end. A nil head is the empty chain.
//
//	  1 → 2 → 4 → nil
//	  1 → 3 → 4 → nil
//	  MergeSorted ⇒ 1 → 1 → 2 → 3 → 4 → 4 → nil
//
// ✨ Key features:
//   - MergeSorted: iterative, O(n+m) time, O(1) extra memory, no recursion
//   - nodes are relinked, never copied or dropped
//   - ties keep the node from the first chain in front (stable merge)
//   - Validate / MergeSortedChecked: optional cycle and order checks
//
// ⚠️ Ownership:
//
//	MergeSorted consumes its inputs. After the call the old heads point
//	somewhere inside the merged chain; merging them again is undefined.
//	Use Clone first if the originals must survive.
package linkedlist
