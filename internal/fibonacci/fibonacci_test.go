package fibonacci

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// allStrategies returns a fresh instance of every strategy registered in the
// global factory, including build-tag dependent ones.
func allStrategies(t *testing.T) []Strategy {
	t.Helper()
	var out []Strategy
	for _, name := range GlobalFactory().List() {
		s, err := GlobalFactory().Create(name)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestStrategies_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{3, "2"},
		{10, "55"},
		{20, "6765"},
		{50, "12586269025"},
		{92, "7540113804746346429"},
		{93, "12200160415121876738"},
		{94, "19740274219868223167"},
		{100, "354224848179261915075"},
	}

	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			s.Prepare(100)
			for _, tt := range tests {
				assert.Equal(t, tt.want, s.Fib(tt.n).String(), "F(%d)", tt.n)
			}
		})
	}
}

func TestLinearAndMatrixAgree(t *testing.T) {
	t.Parallel()

	const limit = 1000
	lin := NewLinear()
	mat := NewMatrixExponentiation()
	lin.Prepare(limit)
	mat.Prepare(limit)

	for n := uint64(0); n <= limit; n++ {
		want := lin.Fib(n).String()
		got := mat.Fib(n).String()
		require.Equal(t, want, got, "F(%d)", n)
	}
}

func TestMatrixExponentiation_LargeIndicesFitPreparedCapacity(t *testing.T) {
	t.Parallel()

	// Powers of two and their neighbours stress the last squaring of the
	// base, which is where the registers come closest to their capacity.
	ref := NewMathBig()
	for _, n := range []uint64{63, 64, 65, 1023, 1024, 1025, 4095, 4096, 4097, 65535, 65536, 65537, 100_000} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			mat := NewMatrixExponentiation()
			mat.Prepare(n)
			ref.Prepare(n)

			got := mat.Fib(n)
			assert.Equal(t, 0, got.Cmp(ref.Fib(n)))
		})
	}
}

func TestStrategies_ReuseForSmallerIndices(t *testing.T) {
	t.Parallel()

	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			s.Prepare(500)
			big500 := s.Fib(500).String()
			assert.Equal(t, "55", s.Fib(10).String())
			assert.Equal(t, big500, s.Fib(500).String())
			assert.Equal(t, "0", s.Fib(0).String())
		})
	}
}

func TestStrategies_PrepareOnlyGrows(t *testing.T) {
	t.Parallel()

	mat := NewMatrixExponentiation()
	mat.Prepare(1000)
	mat.Prepare(10)
	assert.NotPanics(t, func() { mat.Fib(1000) }, "a smaller Prepare must not shrink what was reserved")
}

func TestStrategies_FibBeyondPrepareIsContractViolation(t *testing.T) {
	t.Parallel()

	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			assertContractViolation(t, func() { s.Fib(5) })

			s.Prepare(10)
			assert.NotPanics(t, func() { s.Fib(10) })
			assertContractViolation(t, func() { s.Fib(11) })
		})
	}
}

func TestMatrixExponentiation_NoAllocationsOncePrepared(t *testing.T) {
	mat := NewMatrixExponentiation()
	mat.Prepare(20_000)
	mat.Fib(20_000)

	allocs := testing.AllocsPerRun(10, func() {
		mat.Fib(20_000)
		mat.Fib(777)
	})
	assert.Zero(t, allocs)
}

func TestLinear_NoAllocationsOncePrepared(t *testing.T) {
	lin := NewLinear()
	lin.Prepare(2_000)
	lin.Fib(2_000)

	allocs := testing.AllocsPerRun(10, func() {
		lin.Fib(2_000)
	})
	assert.Zero(t, allocs)
}

func TestMathBig_MatchesIterativeOracle(t *testing.T) {
	t.Parallel()

	s := NewMathBig()
	s.Prepare(3000)
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n <= 3000; n++ {
		if n%97 == 0 || n < 20 {
			require.Equal(t, a.String(), s.Fib(n).String(), "F(%d)", n)
		}
		a.Add(a, b)
		a, b = b, a
	}
}

// assertContractViolation checks that fn panics with *apperrors.ContractError.
func assertContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")
		_, ok := r.(*apperrors.ContractError)
		assert.True(t, ok, "expected *apperrors.ContractError, got %T: %v", r, r)
	}()
	fn()
}
