package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"reflect"
)

// LazyTree is a range-aggregation tree with lazy propagation. In addition to
// the operations of Tree it supports range updates in O(log n), deferring
// their propagation to descendant nodes through a per-node pending buffer.
//
// Pending-buffer invariant: whenever lazy[i] holds a value, tree[i] already
// reflects it, but the children of node i do not yet. The push protocol
// restores the children before any read or write descends into them.
//
// Range-update semantics: RangeUpdate applies its value to each fully covered
// subtree aggregate exactly once via Combine. This is the right thing for
// combiners where a per-element application and a per-aggregate application
// coincide (min, max, bitwise and/or, assignment-style operations). It is
// NOT a per-element update for accumulation-style combiners: adding a delta
// once to a sum over k elements is not the same as adding it to each of the
// k elements. Callers needing additive range updates must bring a size-aware
// combiner of their own design.
//
// The concurrency contract matches Tree, with one sharpening: queries count
// as mutations here, because a query may flush pending buffers. Any
// concurrent use therefore requires external serialization.
type LazyTree[T any] struct {
	comb Combiner[T]
	tree []T
	lazy []pending[T]
	n    int
}

// pending is an optional deferred operation. The explicit flag keeps "no
// pending value" distinct from a pending zero value of T.
type pending[T any] struct {
	value T
	set   bool
}

// NewLazy creates a lazy range-aggregation tree from a non-empty sequence of
// elements and a combining operation.
//
// Returns ErrEmptyInput for a zero-length sequence and ErrIllegalArguments
// for a nil combiner.
func NewLazy[T any](elements []T, comb Combiner[T]) (*LazyTree[T], error) {
	if comb == nil {
		return nil, ErrIllegalArguments
	}
	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}
	t := &LazyTree[T]{
		comb: comb,
		tree: make([]T, 4*len(elements)),
		lazy: make([]pending[T], 4*len(elements)),
		n:    len(elements),
	}
	t.build(elements, 0, 0, t.n-1)
	tracer().Debugf("segtree: built lazy tree over %d elements", t.n)
	return t, nil
}

func (t *LazyTree[T]) build(elements []T, node, start, end int) {
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
func (t *LazyTree[T]) Len() int {
	return t.n
}

// Fold returns the aggregate of the complete sequence. The root aggregate
// already reflects any pending updates, so no push is needed.
func (t *LazyTree[T]) Fold() T {
	return t.tree[0]
}

// MemoryUsage returns the shallow size in bytes of the backing array and the
// pending buffer.
func (t *LazyTree[T]) MemoryUsage() int {
	var pzero pending[T]
	var zero T
	elem := int(reflect.TypeOf(&zero).Elem().Size())
	slot := int(reflect.TypeOf(&pzero).Elem().Size())
	return len(t.tree)*elem + len(t.lazy)*slot
}

// stage applies value to a node's aggregate once and records it as pending
// for the node's subtree. If the node already has a pending value, the two
// are merged via Combine.
func (t *LazyTree[T]) stage(node int, value T) {
	t.tree[node] = t.comb.Combine(t.tree[node], value)
	if t.lazy[node].set {
		t.lazy[node].value = t.comb.Combine(t.lazy[node].value, value)
	} else {
		t.lazy[node] = pending[T]{value: value, set: true}
	}
}

// push runs the two-phase propagation protocol on a node: the pending value
// was already applied to the node's own aggregate when it was staged, so the
// only work left is forwarding it into both children's pending buffers and
// clearing it. Every read or write descending into a subtree pushes first,
// so no visit ever observes a node whose descendants are stale.
func (t *LazyTree[T]) push(node, start, end int) {
	if !t.lazy[node].set {
		return
	}
	if start != end {
		tracer().Debugf("segtree: push pending of node %d down to %d/%d", node, left(node), right(node))
		t.stage(left(node), t.lazy[node].value)
		t.stage(right(node), t.lazy[node].value)
	}
	t.lazy[node] = pending[T]{}
}

// Query returns the aggregate of the elements in positions [l, r], both
// bounds inclusive, flushing pending updates along the visited paths.
//
// Returns ErrInvalidRange if l > r, and ErrIndexOutOfBounds if either bound
// lies outside of [0, n). Cost is O(log n).
func (t *LazyTree[T]) Query(l, r int) (T, error) {
	var none T
	if l > r {
		return none, ErrInvalidRange
	}
	if l < 0 || r >= t.n {
		return none, ErrIndexOutOfBounds
	}
	return t.query(0, 0, t.n-1, l, r), nil
}

func (t *LazyTree[T]) query(node, start, end, l, r int) T {
	t.push(node, start, end)
	if r < start || end < l {
		return t.comb.Identity()
	}
	if l <= start && end <= r {
		return t.tree[node]
	}
	mid := midpoint(start, end)
	vl := t.query(left(node), start, mid, l, r)
	vr := t.query(right(node), mid+1, end, l, r)
	return t.comb.Combine(vl, vr)
}

// Update overwrites the element at position index with value, flushing
// pending updates along the root-to-leaf path and recomputing ancestor
// aggregates bottom-up.
//
// Returns ErrIndexOutOfBounds if index lies outside of [0, n). Cost is
// O(log n).
func (t *LazyTree[T]) Update(index int, value T) error {
	if index < 0 || index >= t.n {
		return ErrIndexOutOfBounds
	}
	t.update(0, 0, t.n-1, index, value)
	return nil
}

func (t *LazyTree[T]) update(node, start, end, index int, value T) {
	t.push(node, start, end)
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

// RangeUpdate combines value into every element position in [l, r], both
// bounds inclusive, under the single-application contract documented on
// LazyTree: each fully covered subtree receives the value once on its
// aggregate, and propagation into the subtree is deferred until a later
// visit.
//
// Returns ErrInvalidRange if l > r, and ErrIndexOutOfBounds if either bound
// lies outside of [0, n). Validation happens before any mutation; a failed
// call leaves the tree untouched. Cost is O(log n).
func (t *LazyTree[T]) RangeUpdate(l, r int, value T) error {
	if l > r {
		return ErrInvalidRange
	}
	if l < 0 || r >= t.n {
		return ErrIndexOutOfBounds
	}
	t.rangeUpdate(0, 0, t.n-1, l, r, value)
	return nil
}

func (t *LazyTree[T]) rangeUpdate(node, start, end, l, r int, value T) {
	t.push(node, start, end)
	if r < start || end < l {
		return
	}
	if l <= start && end <= r {
		t.stage(node, value)
		return
	}
	mid := midpoint(start, end)
	t.rangeUpdate(left(node), start, mid, l, r, value)
	t.rangeUpdate(right(node), mid+1, end, l, r, value)
	t.tree[node] = t.comb.Combine(t.tree[left(node)], t.tree[right(node)])
}

// Snapshot reconstructs the current element sequence from the leaves, in
// order, flushing all pending updates on the way down. Cost is O(n).
func (t *LazyTree[T]) Snapshot() []T {
	out := make([]T, t.n)
	t.snapshot(0, 0, t.n-1, out)
	return out
}

func (t *LazyTree[T]) snapshot(node, start, end int, out []T) {
	t.push(node, start, end)
	if start == end {
		out[start] = t.tree[node]
		return
	}
	mid := midpoint(start, end)
	t.snapshot(left(node), start, mid, out)
	t.snapshot(right(node), mid+1, end, out)
}
