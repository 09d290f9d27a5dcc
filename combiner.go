package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Combiner is the combining operation a tree aggregates with. It is supplied
// by the caller at construction time and never replaced afterwards.
//
// Combiner must be a monoid over T: for values a, b, c, Combine should be
// associative:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// and Identity should be the neutral element:
//
//	Combine(Identity(), a) == a == Combine(a, Identity())
//
// These laws are preconditions, not runtime-checked invariants. A combiner
// violating them produces silently incorrect aggregates, not an error.
// Implementers of new combiners (sum, min, max, gcd, bitwise folds, …) have
// to convince themselves that the laws hold for their element type.
//
// Both operations must be pure: no side effects, no dependence on unguarded
// global state. The tree will call them in unspecified order and repeatedly
// for the same arguments.
type Combiner[T any] interface {
	Combine(left, right T) T
	Identity() T
}
