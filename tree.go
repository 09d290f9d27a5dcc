package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"reflect"
)

// Tree is a static range-aggregation tree over a fixed-length sequence of
// elements of type T. It supports range queries and point updates in
// O(log n); the element count is fixed at construction.
//
// The tree is implicit: nodes live in a flat backing array of size 4n, node 0
// is the root and node i has its children at 2i+1 and 2i+2. No node objects
// or pointers exist; parent/child relationships are pure index arithmetic.
//
// A Tree is exclusively owned by its creator. Operations never lock;
// concurrent mutation from multiple goroutines is out of contract and must be
// serialized by the caller. Purely read-only use of a tree that is never
// mutated again is safe from multiple goroutines.
type Tree[T any] struct {
	comb Combiner[T]
	tree []T // implicit binary tree, conservative 4n bound
	n    int
}

func left(node int) int  { return 2*node + 1 }
func right(node int) int { return 2*node + 2 }

// midpoint avoids overflow for large bounds, in contrast to (start+end)/2.
func midpoint(start, end int) int {
	return start + (end-start)/2
}

// New creates a range-aggregation tree from a non-empty sequence of elements
// and a combining operation.
//
// The elements slice is copied into leaf positions during the build; the tree
// holds no reference to it afterwards. Construction of the aggregates is a
// single bottom-up pass in O(n).
//
// Returns ErrEmptyInput for a zero-length sequence and ErrIllegalArguments
// for a nil combiner.
func New[T any](elements []T, comb Combiner[T]) (*Tree[T], error) {
	if comb == nil {
		return nil, ErrIllegalArguments
	}
	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}
	t := &Tree[T]{
		comb: comb,
		tree: make([]T, 4*len(elements)),
		n:    len(elements),
	}
	t.build(elements, 0, 0, t.n-1)
	tracer().Debugf("segtree: built static tree over %d elements", t.n)
	return t, nil
}

func (t *Tree[T]) build(elements []T, node, start, end int) {
	if start == end {
		t.tree[node] = elements[start]
		return
	}
	mid := midpoint(start, end)
	t.build(elements, left(node), start, mid)
	t.build(elements, right(node), mid+1, end)
	t.tree[node] = t.comb.Combine(t.tree[left(node)], t.tree[right(node)])
}

// Len returns the number of sequence elements the tree aggregates over.
func (t *Tree[T]) Len() int {
	return t.n
}

// Fold returns the aggregate of the complete sequence. It is equivalent to
// Query(0, Len()-1), without the range walk.
func (t *Tree[T]) Fold() T {
	return t.tree[0]
}

// MemoryUsage returns the shallow size in bytes of the backing array. Memory
// reachable through the elements themselves is not accounted for; the tree
// never introspects T.
func (t *Tree[T]) MemoryUsage() int {
	var zero T
	elem := int(reflect.TypeOf(&zero).Elem().Size())
	return len(t.tree) * elem
}

// Query returns the aggregate of the elements in positions [l, r], both
// bounds inclusive. The result is guaranteed to equal a left-to-right fold
// of the subrange with the tree's combiner.
//
// Returns ErrInvalidRange if l > r, and ErrIndexOutOfBounds if either bound
// lies outside of [0, n). Cost is O(log n).
func (t *Tree[T]) Query(l, r int) (T, error) {
	var none T
	if l > r {
		return none, ErrInvalidRange
	}
	if l < 0 || r >= t.n {
		return none, ErrIndexOutOfBounds
	}
	return t.query(0, 0, t.n-1, l, r), nil
}

// query recursively decomposes [l, r] into covered subtree ranges.
// A node is either fully covered by the target range, disjoint from it, or
// partially overlapping; only the last case recurses.
func (t *Tree[T]) query(node, start, end, l, r int) T {
	if r < start || end < l {
		return t.comb.Identity()
	}
	if l <= start && end <= r {
		tracer().Debugf("segtree: node %d covers [%d,%d], taking aggregate", node, start, end)
		return t.tree[node]
	}
	mid := midpoint(start, end)
	vl := t.query(left(node), start, mid, l, r)
	vr := t.query(right(node), mid+1, end, l, r)
	return t.comb.Combine(vl, vr)
}

// Update overwrites the element at position index with value and recomputes
// all aggregates on the root-to-leaf path, bottom-up. No other node is
// touched.
//
// Returns ErrIndexOutOfBounds if index lies outside of [0, n). Cost is
// O(log n).
func (t *Tree[T]) Update(index int, value T) error {
	if index < 0 || index >= t.n {
		return ErrIndexOutOfBounds
	}
	t.update(0, 0, t.n-1, index, value)
	return nil
}

func (t *Tree[T]) update(node, start, end, index int, value T) {
	if start == end {
		t.tree[node] = value
		return
	}
	mid := midpoint(start, end)
	if index <= mid {
		t.update(left(node), start, mid, index, value)
	} else {
		t.update(right(node), mid+1, end, index, value)
	}
	t.tree[node] = t.comb.Combine(t.tree[left(node)], t.tree[right(node)])
}

// Snapshot reconstructs the current element sequence from the leaves, in
// order. It is intended for debugging and tests; cost is O(n).
func (t *Tree[T]) Snapshot() []T {
	out := make([]T, t.n)
	t.snapshot(0, 0, t.n-1, out)
	return out
}

func (t *Tree[T]) snapshot(node, start, end int, out []T) {
	if start == end {
		out[start] = t.tree[node]
		return
	}
	mid := midpoint(start, end)
	t.snapshot(left(node), start, mid, out)
	t.snapshot(right(node), mid+1, end, out)
}
