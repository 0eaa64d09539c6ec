package linkedlist_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlkata/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeSorted_Scenarios covers the documented samples and empty inputs.
func TestMergeSorted_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want []int
	}{
		{"interleaved", []int{1, 2, 4}, []int{1, 3, 4}, []int{1, 1, 2, 3, 4, 4}},
		{"first empty", nil, []int{0}, []int{0}},
		{"second empty", []int{0}, nil, []int{0}},
		{"both empty", nil, nil, []int{}},
		{"disjoint ranges", []int{5, 6}, []int{1, 2, 3}, []int{1, 2, 3, 5, 6}},
		{"negatives", []int{-3, 0}, []int{-5, -3, 7}, []int{-5, -3, -3, 0, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := linkedlist.Values(linkedlist.MergeSorted(
				linkedlist.FromSlice(tc.a), linkedlist.FromSlice(tc.b)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeSorted mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestMergeSorted_PassThrough verifies an empty side hands over the other
// chain itself, not a copy.
func TestMergeSorted_PassThrough(t *testing.T) {
	b := linkedlist.FromSlice([]int{1, 2})
	assert.Same(t, b, linkedlist.MergeSorted(nil, b))
	a := linkedlist.FromSlice([]int{3})
	assert.Same(t, a, linkedlist.MergeSorted(a, nil))
	assert.Nil(t, linkedlist.MergeSorted(nil, nil))
}

// TestMergeSorted_TieBreak checks that equal values from the first chain
// come before those from the second.
func TestMergeSorted_TieBreak(t *testing.T) {
	a := linkedlist.FromSlice([]int{1, 2})
	b := linkedlist.FromSlice([]int{1, 2})
	a1, a2 := a, a.Next
	b1, b2 := b, b.Next

	got := collect(linkedlist.MergeSorted(a, b))
	require.Len(t, got, 4)
	assert.Same(t, a1, got[0])
	assert.Same(t, b1, got[1])
	assert.Same(t, a2, got[2])
	assert.Same(t, b2, got[3])
}

// TestMergeSorted_Property checks ordering, length, node identity and
// stability on random sorted chains.
func TestMergeSorted_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 300; iter++ {
		av := randomSorted(rng, rng.Intn(12))
		bv := randomSorted(rng, rng.Intn(12))
		a, b := linkedlist.FromSlice(av), linkedlist.FromSlice(bv)

		origin := make(map[*linkedlist.Node]int) // node -> 0 (from a) or 1 (from b)
		rank := make(map[*linkedlist.Node]int)   // node -> position in its input
		for i, n := range collect(a) {
			origin[n], rank[n] = 0, i
		}
		for i, n := range collect(b) {
			origin[n], rank[n] = 1, i
		}

		merged := collect(linkedlist.MergeSorted(a, b))
		require.Len(t, merged, len(av)+len(bv))

		seen := make(map[*linkedlist.Node]bool, len(merged))
		for i, n := range merged {
			_, known := origin[n]
			require.True(t, known, "merged chain contains a foreign node")
			require.False(t, seen[n], "node appears twice")
			seen[n] = true
			if i == 0 {
				continue
			}
			prev := merged[i-1]
			require.LessOrEqual(t, prev.Val, n.Val, "not non-decreasing")
			if prev.Val == n.Val {
				if origin[prev] == origin[n] {
					require.Less(t, rank[prev], rank[n], "order within an input changed")
				} else {
					require.Equal(t, 0, origin[prev], "tie must favour the first chain")
				}
			}
		}
	}
}

// TestMergeSorted_LongChains ensures no recursion depth problem on long input.
func TestMergeSorted_LongChains(t *testing.T) {
	const n = 200_000
	av := make([]int, n)
	bv := make([]int, n)
	for i := 0; i < n; i++ {
		av[i] = 2 * i
		bv[i] = 2*i + 1
	}
	merged := linkedlist.MergeSorted(linkedlist.FromSlice(av), linkedlist.FromSlice(bv))
	assert.Equal(t, 2*n, linkedlist.Len(merged))
	assert.NoError(t, linkedlist.Validate(merged))
}

// TestValidate covers cycle and order detection.
func TestValidate(t *testing.T) {
	assert.NoError(t, linkedlist.Validate(nil))
	assert.NoError(t, linkedlist.Validate(linkedlist.FromSlice([]int{1, 1, 2})))
	assert.ErrorIs(t, linkedlist.Validate(linkedlist.FromSlice([]int{2, 1})), linkedlist.ErrNotSorted)

	loop := linkedlist.FromSlice([]int{1, 2, 3})
	loop.Next.Next.Next = loop.Next
	assert.ErrorIs(t, linkedlist.Validate(loop), linkedlist.ErrCycle)

	self := &linkedlist.Node{Val: 1}
	self.Next = self
	assert.ErrorIs(t, linkedlist.Validate(self), linkedlist.ErrCycle)
}

// TestMergeSortedChecked verifies errors name the offending side and leave
// inputs untouched.
func TestMergeSortedChecked(t *testing.T) {
	a := linkedlist.FromSlice([]int{1, 3})
	bad := linkedlist.FromSlice([]int{4, 2})

	_, err := linkedlist.MergeSortedChecked(a, bad)
	require.ErrorIs(t, err, linkedlist.ErrNotSorted)
	assert.Contains(t, err.Error(), "second chain")
	assert.Equal(t, []int{1, 3}, linkedlist.Values(a))
	assert.Equal(t, []int{4, 2}, linkedlist.Values(bad))

	_, err = linkedlist.MergeSortedChecked(bad, a)
	assert.Contains(t, err.Error(), "first chain")

	got, err := linkedlist.MergeSortedChecked(a, linkedlist.FromSlice([]int{2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, linkedlist.Values(got))
}

// TestHelpers covers FromSlice, Values, Len and Clone.
func TestHelpers(t *testing.T) {
	assert.Nil(t, linkedlist.FromSlice(nil))
	assert.Equal(t, []int{}, linkedlist.Values(nil))
	assert.Equal(t, 0, linkedlist.Len(nil))

	head := linkedlist.FromSlice([]int{7, 8, 9})
	assert.Equal(t, 3, linkedlist.Len(head))

	cp := linkedlist.Clone(head)
	assert.NotSame(t, head, cp)
	assert.Equal(t, linkedlist.Values(head), linkedlist.Values(cp))

	// Merging the clone leaves the original intact.
	_ = linkedlist.MergeSorted(cp, linkedlist.FromSlice([]int{1}))
	assert.Equal(t, []int{7, 8, 9}, linkedlist.Values(head))
}

func collect(head *linkedlist.Node) []*linkedlist.Node {
	var out []*linkedlist.Node
	for n := head; n != nil; n = n.Next {
		out = append(out, n)
	}

	return out
}

func randomSorted(rng *rand.Rand, n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(8)
	}
	sort.Ints(vals)

	return vals
}
