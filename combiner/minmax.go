package combiner

import "math"

// Min aggregates by taking the smaller of two values. The identity element
// has to be supplied by the caller as Top, since Go offers no generic way to
// obtain the greatest value of an arbitrary numeric type. Top must compare
// greater than or equal to every element that will ever enter the tree.
//
// Min is idempotent per element, which makes it safe for the
// single-application range updates of segtree.LazyTree.
type Min[N Numeric] struct {
	Top N // identity element, upper bound of the element domain
}

// MinInt64 returns a Min combiner for int64 elements over the full domain.
func MinInt64() Min[int64] {
	return Min[int64]{Top: math.MaxInt64}
}

// MinFloat64 returns a Min combiner for float64 elements over the full
// domain.
func MinFloat64() Min[float64] {
	return Min[float64]{Top: math.Inf(1)}
}

// Combine returns the smaller aggregate.
func (m Min[N]) Combine(left, right N) N {
	if right < left {
		return right
	}
	return left
}

// Identity returns the configured upper bound.
func (m Min[N]) Identity() N {
	return m.Top
}

// Max aggregates by taking the greater of two values. The identity element
// has to be supplied by the caller as Bottom and must compare less than or
// equal to every element that will ever enter the tree.
//
// Max is idempotent per element, which makes it safe for the
// single-application range updates of segtree.LazyTree.
type Max[N Numeric] struct {
	Bottom N // identity element, lower bound of the element domain
}

// MaxInt64 returns a Max combiner for int64 elements over the full domain.
func MaxInt64() Max[int64] {
	return Max[int64]{Bottom: math.MinInt64}
}

// MaxFloat64 returns a Max combiner for float64 elements over the full
// domain.
func MaxFloat64() Max[float64] {
	return Max[float64]{Bottom: math.Inf(-1)}
}

// Combine returns the greater aggregate.
func (m Max[N]) Combine(left, right N) N {
	if right > left {
		return right
	}
	return left
}

// Identity returns the configured lower bound.
func (m Max[N]) Identity() N {
	return m.Bottom
}
