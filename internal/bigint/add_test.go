package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

func TestAddAssign_AgainstMathBig(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(3, 4))

	for iter := 0; iter < 500; iter++ {
		a := randomNat(r, r.IntN(20))
		b := randomNat(r, r.IntN(20))
		want := new(big.Int).Add(a.Big(), b.Big())

		a.AddAssign(b)
		require.Equal(t, 0, a.Big().Cmp(want), "iteration %d", iter)
		if a.Size() > 0 {
			require.NotZero(t, a.Limbs()[a.Size()-1], "result must be canonical")
		}
	}
}

func TestAddAssign_CarryGrowsLength(t *testing.T) {
	t.Parallel()

	a := New().SetWords([]Word{^Word(0), ^Word(0)})
	a.AddAssign(NewFromUint64(1))
	assert.Equal(t, []Word{0, 0, 1}, a.Limbs())

	z := New()
	z.AddAssign(New())
	assert.True(t, z.IsZero(), "0 + 0 stays empty")
}

func TestAddAssign_Self(t *testing.T) {
	t.Parallel()

	a := New().SetWords([]Word{^Word(0), 5})
	want := new(big.Int).Lsh(a.Big(), 1)
	a.AddAssign(a)
	assert.Equal(t, 0, a.Big().Cmp(want))
}

func TestAddAssign_WithinCapacityDoesNotReallocate(t *testing.T) {
	t.Parallel()

	a := NewFromUint64(1)
	a.Reserve(16)
	before := &a.limbs[:1][0]
	b := New().SetWords([]Word{1, 2, 3, 4})
	a.AddAssign(b)
	assert.Equal(t, 16, a.Cap())
	assert.Same(t, before, &a.limbs[0])
}

func TestAddToTwoNumbers_MatchesSeparateAdds(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 6))

	for iter := 0; iter < 500; iter++ {
		a1 := randomNat(r, r.IntN(12))
		a2 := randomNat(r, r.IntN(12))
		b := randomNat(r, r.IntN(12))

		want1 := a1.Clone().AddAssign(b)
		want2 := a2.Clone().AddAssign(b)

		AddToTwoNumbers(a1, a2, b)
		require.Equal(t, 0, a1.Cmp(want1), "a1, iteration %d", iter)
		require.Equal(t, 0, a2.Cmp(want2), "a2, iteration %d", iter)
		require.Equal(t, want1.Size(), a1.Size())
		require.Equal(t, want2.Size(), a2.Size())
	}
}

func TestAddToTwoNumbers_ZeroOperands(t *testing.T) {
	t.Parallel()

	a1, a2 := New(), New()
	AddToTwoNumbers(a1, a2, New())
	assert.True(t, a1.IsZero())
	assert.True(t, a2.IsZero())

	b := New().SetWords([]Word{^Word(0), ^Word(0)})
	AddToTwoNumbers(a1, a2, b)
	assert.Equal(t, 0, a1.Cmp(b))
	assert.Equal(t, 0, a2.Cmp(b))

	// One long, one empty accumulator: the short one must stay canonical.
	long := New().SetWords([]Word{1, 1, 1, 1})
	short := New()
	AddToTwoNumbers(long, short, NewFromUint64(3))
	assert.Equal(t, []Word{4, 1, 1, 1}, long.Limbs())
	assert.Equal(t, []Word{3}, short.Limbs())
}

func TestAddToTwoNumbers_AliasPanics(t *testing.T) {
	t.Parallel()

	a := NewFromUint64(1)
	b := NewFromUint64(2)
	assertContractPanic(t, "bigint.AddToTwoNumbers", func() { AddToTwoNumbers(a, a, b) })
	assertContractPanic(t, "bigint.AddToTwoNumbers", func() { AddToTwoNumbers(a, b, b) })
	assertContractPanic(t, "bigint.AddToTwoNumbers", func() { AddToTwoNumbers(b, a, b) })
}

// assertContractPanic checks that fn panics with a ContractError for op.
func assertContractPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic from %s", op)
		err, ok := r.(*apperrors.ContractError)
		require.True(t, ok, "expected *apperrors.ContractError, got %T", r)
		assert.Equal(t, op, err.Op)
	}()
	fn()
}
