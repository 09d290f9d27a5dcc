/*
Package combiner provides some pre-manufactured combining operations for
range-aggregation trees.

Every type in this package implements segtree.Combiner for a family of
element types and has been checked against the monoid laws (associativity of
Combine, neutrality of Identity). Combiners are stateless value types; the
zero value is ready to use unless documented otherwise.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package combiner

// Numeric constrains the element types the arithmetic combiners operate on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer constrains the element types of the integral combiners (gcd,
// bitwise folds).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
