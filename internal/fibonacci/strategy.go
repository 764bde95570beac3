// Package fibonacci provides the Fibonacci strategies measured by the
// benchmark: a linear reference, the symmetric matrix exponentiation that is
// the subject of the measurements, and two library-backed references used to
// cross-check results.
package fibonacci

//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

import (
	"github.com/agbru/fibbench/internal/bigint"
	apperrors "github.com/agbru/fibbench/internal/errors"
)

// Strategy computes Fibonacci numbers into storage it owns.
//
// A Strategy is single-owner and not safe for concurrent use. Prepare(n)
// reserves enough storage for every F(k) with k <= n; Fib(k) then returns a
// pointer into the strategy's own registers, valid until the next call to
// Prepare or Fib.
type Strategy interface {
	// Name returns the short registry name of the strategy.
	Name() string

	// Prepare reserves storage for all indices up to and including n.
	// Capacity only ever grows.
	Prepare(n uint64)

	// Fib returns F(n). n must not exceed the largest index prepared so far;
	// otherwise Fib panics with *apperrors.ContractError.
	Fib(n uint64) *bigint.Nat
}

// prepared tracks the largest index a strategy has reserved for.
type prepared struct {
	max   uint64
	valid bool
}

func (p *prepared) grow(n uint64) {
	if !p.valid || n > p.max {
		p.max = n
		p.valid = true
	}
}

// check panics when n is beyond what was prepared.
func (p *prepared) check(op string, n uint64) {
	if !p.valid || n > p.max {
		if !p.valid {
			panic(apperrors.NewContractError(op, "F(%d) requested before Prepare", n))
		}
		panic(apperrors.NewContractError(op, "F(%d) requested but only prepared up to %d", n, p.max))
	}
}
