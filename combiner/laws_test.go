package combiner

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/segtree"
	"github.com/shopspring/decimal"
)

var (
	_ segtree.Combiner[int64]           = Sum[int64]{}
	_ segtree.Combiner[float64]         = Product[float64]{}
	_ segtree.Combiner[int64]           = Min[int64]{}
	_ segtree.Combiner[int64]           = Max[int64]{}
	_ segtree.Combiner[uint32]          = GCD[uint32]{}
	_ segtree.Combiner[uint64]          = BitAnd[uint64]{}
	_ segtree.Combiner[uint64]          = BitOr[uint64]{}
	_ segtree.Combiner[uint64]          = BitXor[uint64]{}
	_ segtree.Combiner[decimal.Decimal] = DecimalSum{}
)

// checkLaws samples triples and verifies associativity of Combine and
// neutrality of Identity.
func checkLaws[T comparable](t *testing.T, name string, comb segtree.Combiner[T], sample func(r *rand.Rand) T) {
	t.Helper()
	r := rand.New(rand.NewSource(4711))
	for trial := 0; trial < 200; trial++ {
		a, b, c := sample(r), sample(r), sample(r)
		lhs := comb.Combine(comb.Combine(a, b), c)
		rhs := comb.Combine(a, comb.Combine(b, c))
		if lhs != rhs {
			t.Fatalf("%s: associativity violated for (%v,%v,%v): %v != %v", name, a, b, c, lhs, rhs)
		}
		if comb.Combine(a, comb.Identity()) != a {
			t.Fatalf("%s: right identity violated for %v", name, a)
		}
		if comb.Combine(comb.Identity(), a) != a {
			t.Fatalf("%s: left identity violated for %v", name, a)
		}
	}
}

func sampleInt64(r *rand.Rand) int64 {
	return r.Int63n(1_000_000) - 500_000
}

func sampleUint64(r *rand.Rand) uint64 {
	return r.Uint64()
}

func TestSumLaws(t *testing.T) {
	checkLaws[int64](t, "Sum", Sum[int64]{}, sampleInt64)
}

func TestProductLaws(t *testing.T) {
	// keep factors small so overflow wraps identically on both sides anyway
	checkLaws[int64](t, "Product", Product[int64]{}, func(r *rand.Rand) int64 {
		return r.Int63n(100) - 50
	})
}

func TestMinLaws(t *testing.T) {
	checkLaws[int64](t, "Min", MinInt64(), sampleInt64)
}

func TestMaxLaws(t *testing.T) {
	checkLaws[int64](t, "Max", MaxInt64(), sampleInt64)
}

func TestGCDLaws(t *testing.T) {
	checkLaws[uint32](t, "GCD", GCD[uint32]{}, func(r *rand.Rand) uint32 {
		return uint32(r.Intn(1_000_000))
	})
}

func TestBitAndLaws(t *testing.T) {
	checkLaws[uint64](t, "BitAnd", BitAnd[uint64]{}, sampleUint64)
}

func TestBitOrLaws(t *testing.T) {
	checkLaws[uint64](t, "BitOr", BitOr[uint64]{}, sampleUint64)
}

func TestBitXorLaws(t *testing.T) {
	checkLaws[uint64](t, "BitXor", BitXor[uint64]{}, sampleUint64)
}

func TestDecimalSumLaws(t *testing.T) {
	comb := DecimalSum{}
	r := rand.New(rand.NewSource(4711))
	sample := func() decimal.Decimal {
		return decimal.New(r.Int63n(1_000_000)-500_000, int32(r.Intn(5))-2)
	}
	for trial := 0; trial < 200; trial++ {
		a, b, c := sample(), sample(), sample()
		lhs := comb.Combine(comb.Combine(a, b), c)
		rhs := comb.Combine(a, comb.Combine(b, c))
		if !lhs.Equal(rhs) {
			t.Fatalf("DecimalSum: associativity violated for (%v,%v,%v)", a, b, c)
		}
		if !comb.Combine(a, comb.Identity()).Equal(a) {
			t.Fatalf("DecimalSum: identity violated for %v", a)
		}
	}
}

func TestGCDCombine(t *testing.T) {
	cases := []struct {
		a, b, want uint32
	}{
		{12, 18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := (GCD[uint32]{}).Combine(c.a, c.b); got != c.want {
			t.Errorf("gcd(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
