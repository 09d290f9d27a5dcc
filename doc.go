/*
Package segtree implements a generic range-aggregation tree (often called a
segment tree) over a mutable ordered sequence.

# Segment Trees

A segment tree organizes aggregates of a fixed-length sequence in an implicit
complete binary tree, stored in a flat backing array. Every node owns a
contiguous subrange of the sequence and holds the fold of that subrange under
a caller-supplied associative combining operation. This makes range queries
and point updates logarithmic instead of linear:

	Operation      |   Segment Tree  |  Plain Slice
	---------------+-----------------+-------------
	Build          |   O(n)          |   O(n)
	Range query    |   O(log n)      |   O(n)
	Point update   |   O(log n)      |   O(1)
	Range update   |   O(log n) ¹    |   O(n)

	¹ lazy variant only

The combining operation is supplied as a strategy object at construction time
(see interface Combiner). Package combiner ships ready-made strategies for
sums, minima, maxima, gcd, bitwise folds and exact decimal sums. Clients are
free to provide their own, as long as the monoid laws hold.

Trees come in two flavors. Tree supports point updates and range queries.
LazyTree additionally supports range updates, deferring their propagation to
descendant nodes through a per-node pending buffer (“lazy propagation”).

All operations are synchronous, deterministic and free of internal locking.
A tree instance must not be mutated from multiple goroutines; see the type
documentation for the exact contract.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the segtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyInput is flagged when tree construction is attempted with zero
// elements. No partial tree is produced.
const ErrEmptyInput = TreeError("empty input sequence")

// ErrIndexOutOfBounds is flagged whenever a sequence position is outside
// of the interval [0, n).
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrInvalidRange is flagged whenever a query or range-update is given a
// range whose left bound exceeds its right bound.
const ErrInvalidRange = TreeError("invalid range: left bound exceeds right bound")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")
