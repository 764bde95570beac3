//go:build gmp

// The GMP strategy is compiled only with the "gmp" build tag and needs libgmp
// installed on the host:
//
//	go build -tags=gmp ./...
//
// Debian/Ubuntu: apt-get install libgmp-dev. macOS: brew install gmp.

package fibonacci

import (
	"math/bits"

	"github.com/ncw/gmp"

	"github.com/agbru/fibbench/internal/bigint"
)

func init() {
	_ = RegisterStrategy("gmp", func() Strategy { return NewGMP() })
}

// GMP computes F(n) with fast doubling on libgmp and copies the result into
// a Nat it owns. The gmp.Int temporaries are reused across calls.
type GMP struct {
	a, b, t1, t2 *gmp.Int
	result       bigint.Nat
	prep         prepared
}

// NewGMP returns an unprepared GMP strategy.
func NewGMP() *GMP {
	return &GMP{
		a:  gmp.NewInt(0),
		b:  gmp.NewInt(1),
		t1: gmp.NewInt(0),
		t2: gmp.NewInt(0),
	}
}

// Name returns the registry name of the strategy.
func (g *GMP) Name() string {
	return "gmp"
}

// Prepare reserves the result register for F(n).
func (g *GMP) Prepare(n uint64) {
	g.result.ReserveForNthFib(n)
	g.prep.grow(n)
}

// Fib returns F(n). The result points into the strategy's registers.
func (g *GMP) Fib(n uint64) *bigint.Nat {
	g.prep.check("fibonacci.GMP.Fib", n)

	g.a.SetInt64(0)
	g.b.SetInt64(1)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		gmpDoublingStep(g.a, g.b, g.t1, g.t2)
		if (n>>uint(i))&1 == 1 {
			gmpAdditionStep(g.a, g.b, g.t1)
		}
	}
	g.result.SetBytes(g.a.Bytes())
	return &g.result
}

// gmpDoublingStep maps (F(k), F(k+1)) in (a, b) to (F(2k), F(2k+1)).
func gmpDoublingStep(a, b, t1, t2 *gmp.Int) {
	t1.MulUint32(b, 2)
	t1.Sub(t1, a)
	t1.Mul(a, t1)

	t2.Mul(a, a)
	a.Mul(b, b)
	t2.Add(t2, a)

	a.Set(t1)
	b.Set(t2)
}

// gmpAdditionStep maps (F(k), F(k+1)) in (a, b) to (F(k+1), F(k+2)).
func gmpAdditionStep(a, b, t *gmp.Int) {
	t.Add(a, b)
	a.Set(b)
	b.Set(t)
}
