package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fibbench/internal/bigint"
)

// TestCassinisIdentity_PropertyBased checks F(n-1)·F(n+1) - F(n)² = (-1)ⁿ
// for every registered strategy.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const maxN = 25000
	for _, name := range GlobalFactory().List() {
		if name == "linear" {
			continue // quadratic; covered by the equivalence property below
		}
		s := GlobalFactory().MustCreate(name)
		s.Prepare(maxN + 1)

		properties.Property(name+" satisfies Cassini's identity", prop.ForAll(
			func(n uint64) bool {
				// Results point into the strategy's registers; copy them out.
				fnMinus1 := s.Fib(n - 1).Big()
				fn := s.Fib(n).Big()
				fnPlus1 := s.Fib(n + 1).Big()

				left := new(big.Int).Mul(fnMinus1, fnPlus1)
				left.Sub(left, new(big.Int).Mul(fn, fn))

				right := big.NewInt(1)
				if n%2 != 0 {
					right.Neg(right)
				}
				return left.Cmp(right) == 0
			},
			gen.UInt64Range(1, maxN),
		))
	}

	properties.TestingRun(t)
}

// TestLinearMatrixEquivalence_PropertyBased compares the two Nat strategies
// on random indices.
func TestLinearMatrixEquivalence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const maxN = 3000
	lin := NewLinear()
	mat := NewMatrixExponentiation()
	lin.Prepare(maxN)
	mat.Prepare(maxN)

	properties.Property("linear and matexp agree", prop.ForAll(
		func(n uint64) bool {
			return lin.Fib(n).Cmp(mat.Fib(n)) == 0
		},
		gen.UInt64Range(0, maxN),
	))

	properties.TestingRun(t)
}

// TestAdditionIdentity_PropertyBased checks F(m+n) = F(m)·F(n+1) + F(m-1)·F(n)
// using the Nat kernels on strategy outputs.
func TestAdditionIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const maxN = 5000
	mat := NewMatrixExponentiation()
	mat.Prepare(2 * maxN)

	properties.Property("F(m+n) = F(m)F(n+1) + F(m-1)F(n)", prop.ForAll(
		func(m, n uint64) bool {
			fm := mat.Fib(m).Clone()
			fmMinus1 := mat.Fib(m - 1).Clone()
			fn := mat.Fib(n).Clone()
			fnPlus1 := mat.Fib(n + 1).Clone()

			sum := bigint.New()
			sum.ReserveForNthFib(m + n + 1)
			bigint.MulAdd(sum, fm, fnPlus1)
			bigint.MulAdd(sum, fmMinus1, fn)

			return sum.Cmp(mat.Fib(m+n)) == 0
		},
		gen.UInt64Range(1, maxN),
		gen.UInt64Range(0, maxN-1),
	))

	properties.TestingRun(t)
}
