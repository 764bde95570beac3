package fibonacci

import (
	"math/big"
	"math/bits"

	"github.com/agbru/fibbench/internal/bigint"
)

// MathBig computes F(n) with fast doubling on math/big and copies the result
// into a Nat it owns. It is an independent reference for the Nat kernels and
// a yardstick for the benchmark; its temporaries are reused across calls but
// math/big is free to reallocate them.
//
// Fast doubling identities, with a = F(k) and b = F(k+1):
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)^2 + F(k)^2
type MathBig struct {
	a, b, t1, t2 big.Int
	result       bigint.Nat
	prep         prepared
}

// NewMathBig returns an unprepared MathBig strategy.
func NewMathBig() *MathBig {
	return &MathBig{}
}

// Name returns the registry name of the strategy.
func (m *MathBig) Name() string {
	return "mathbig"
}

// Prepare reserves the result register for F(n).
func (m *MathBig) Prepare(n uint64) {
	m.result.ReserveForNthFib(n)
	m.prep.grow(n)
}

// Fib returns F(n). The result points into the strategy's registers.
func (m *MathBig) Fib(n uint64) *bigint.Nat {
	m.prep.check("fibonacci.MathBig.Fib", n)

	m.a.SetUint64(0)
	m.b.SetUint64(1)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// t1 = a * (2b - a)
		m.t1.Lsh(&m.b, 1)
		m.t1.Sub(&m.t1, &m.a)
		m.t1.Mul(&m.t1, &m.a)
		// t2 = a^2 + b^2
		m.t2.Mul(&m.a, &m.a)
		m.a.Mul(&m.b, &m.b)
		m.t2.Add(&m.t2, &m.a)

		if (n>>uint(i))&1 == 1 {
			// (F(2k+1), F(2k+2))
			m.a.Set(&m.t2)
			m.b.Add(&m.t1, &m.t2)
		} else {
			m.a.Set(&m.t1)
			m.b.Set(&m.t2)
		}
	}
	m.result.SetBig(&m.a)
	return &m.result
}
