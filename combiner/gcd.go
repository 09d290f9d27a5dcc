package combiner

// GCD aggregates by the greatest common divisor. The identity element is 0,
// since gcd(a, 0) == a for every a.
//
// Elements are expected to be non-negative; negative inputs yield results
// with implementation-defined sign.
type GCD[N Integer] struct{}

// Combine returns the greatest common divisor of two aggregates.
func (GCD[N]) Combine(left, right N) N {
	for right != 0 {
		left, right = right, left%right
	}
	return left
}

// Identity returns 0.
func (GCD[N]) Identity() N {
	var zero N
	return zero
}
