package fibonacci

import "github.com/agbru/fibbench/internal/bigint"

// Linear computes F(n) with the plain recurrence, n in-place additions over
// two registers. Its cost is quadratic in n; it serves as the baseline the
// faster strategies are measured and checked against.
type Linear struct {
	a, b bigint.Nat
	prep prepared
}

// NewLinear returns an unprepared Linear strategy.
func NewLinear() *Linear {
	return &Linear{}
}

// Name returns the registry name of the strategy.
func (l *Linear) Name() string {
	return "linear"
}

// Prepare reserves room for F(n+1), the largest value the registers reach.
func (l *Linear) Prepare(n uint64) {
	l.a.ReserveForNthFib(n + 1)
	l.b.ReserveForNthFib(n + 1)
	l.prep.grow(n)
}

// Fib returns F(n). The result points into the strategy's registers.
func (l *Linear) Fib(n uint64) *bigint.Nat {
	l.prep.check("fibonacci.Linear.Fib", n)

	l.a.Assign(0)
	l.b.Assign(1)
	for i := uint64(0); i < n; i++ {
		l.a.AddAssign(&l.b)
		l.a.Swap(&l.b)
	}
	return &l.a
}
