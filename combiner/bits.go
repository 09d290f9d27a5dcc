package combiner

// BitAnd aggregates by bitwise conjunction. The identity element is the
// all-ones pattern of N.
//
// BitAnd is idempotent per element and safe for lazy range updates.
type BitAnd[N Integer] struct{}

// Combine returns the bitwise AND of two aggregates.
func (BitAnd[N]) Combine(left, right N) N {
	return left & right
}

// Identity returns the all-ones value of N.
func (BitAnd[N]) Identity() N {
	var zero N
	return ^zero
}

// BitOr aggregates by bitwise disjunction. The identity element is 0.
//
// BitOr is idempotent per element and safe for lazy range updates.
type BitOr[N Integer] struct{}

// Combine returns the bitwise OR of two aggregates.
func (BitOr[N]) Combine(left, right N) N {
	return left | right
}

// Identity returns 0.
func (BitOr[N]) Identity() N {
	var zero N
	return zero
}

// BitXor aggregates by bitwise exclusive-or. The identity element is 0.
//
// BitXor is self-inverse rather than idempotent: a lazy range update applies
// the value once per covered subtree, not once per element, so range updates
// over BitXor flip parity per subtree. Use it with point updates only.
type BitXor[N Integer] struct{}

// Combine returns the bitwise XOR of two aggregates.
func (BitXor[N]) Combine(left, right N) N {
	return left ^ right
}

// Identity returns 0.
func (BitXor[N]) Identity() N {
	var zero N
	return zero
}
