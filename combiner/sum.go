package combiner

// Sum aggregates by addition. The identity element is 0.
//
// Note that Sum is an accumulation-style combiner: it is not suitable for
// the single-application range updates of segtree.LazyTree, where a value is
// combined once per covered subtree instead of once per element.
type Sum[N Numeric] struct{}

// Combine adds two aggregates.
func (Sum[N]) Combine(left, right N) N {
	return left + right
}

// Identity returns 0.
func (Sum[N]) Identity() N {
	var zero N
	return zero
}

// Product aggregates by multiplication. The identity element is 1.
//
// Like Sum, Product is accumulation-style and unsuitable for lazy range
// updates.
type Product[N Numeric] struct{}

// Combine multiplies two aggregates.
func (Product[N]) Combine(left, right N) N {
	return left * right
}

// Identity returns 1.
func (Product[N]) Identity() N {
	return N(1)
}
