package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomNat returns a canonical Nat of exactly limbs limbs. Roughly a third of
// the limbs are all-ones so that carry chains are exercised.
func randomNat(r *rand.Rand, limbs int) *Nat {
	words := make([]Word, limbs)
	for i := range words {
		switch r.IntN(3) {
		case 0:
			words[i] = ^Word(0)
		default:
			words[i] = r.Uint64()
		}
	}
	if limbs > 0 && words[limbs-1] == 0 {
		words[limbs-1] = 1
	}
	return New().SetWords(words)
}

func TestAssignAndSize(t *testing.T) {
	t.Parallel()

	z := New()
	assert.Equal(t, 0, z.Size())
	assert.True(t, z.IsZero())

	z.Assign(42)
	assert.Equal(t, 1, z.Size())
	assert.Equal(t, "42", z.String())

	z.Reserve(8)
	z.Assign(0)
	assert.Equal(t, 0, z.Size(), "assigning zero empties the limb sequence")
	assert.Equal(t, 8, z.Cap(), "assign keeps capacity")

	z.Assign(^uint64(0))
	assert.Equal(t, "18446744073709551615", z.String())
	assert.Equal(t, 8, z.Cap())
}

func TestGetOr(t *testing.T) {
	t.Parallel()

	z := New().SetWords([]Word{7, 9})
	assert.Equal(t, Word(7), z.GetOr(0, 99))
	assert.Equal(t, Word(9), z.GetOr(1, 99))
	assert.Equal(t, Word(99), z.GetOr(2, 99))
	assert.Equal(t, Word(0), New().GetOr(0, 0))
}

func TestReserve_MonotonicAndIdempotent(t *testing.T) {
	t.Parallel()

	z := NewFromUint64(5)
	z.Reserve(10)
	require.Equal(t, 10, z.Cap())

	z.Reserve(4)
	assert.Equal(t, 10, z.Cap(), "smaller request is a no-op")
	z.Reserve(10)
	assert.Equal(t, 10, z.Cap(), "equal request is a no-op")

	z.Reserve(11)
	assert.Equal(t, 20, z.Cap(), "growth doubles when doubling covers the request")

	z.Reserve(100)
	assert.Equal(t, 100, z.Cap(), "growth jumps straight to large requests")

	prev := z.Cap()
	for _, c := range []int{50, 101, 150, 90, 400, 3} {
		z.Reserve(c)
		assert.GreaterOrEqual(t, z.Cap(), prev)
		assert.GreaterOrEqual(t, z.Cap(), c)
		prev = z.Cap()
	}
	assert.Equal(t, "5", z.String(), "reserve preserves the value")
}

func TestReserveForNthFib(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 12},
		{63, 12},
		{64, 13},
		{1000, 27},
		{1_000_000, 15637},
	}
	for _, tt := range tests {
		z := New()
		z.ReserveForNthFib(tt.n)
		assert.Equal(t, tt.want, z.Cap(), "n=%d", tt.n)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", New().String())
	assert.Equal(t, "0", NewFromUint64(0).String())
	assert.Equal(t, "10", NewFromUint64(10).String())

	// 2^64 = 18446744073709551616
	two64 := New().SetWords([]Word{0, 1})
	assert.Equal(t, "18446744073709551616", two64.String())

	r := rand.New(rand.NewPCG(1, 2))
	for limbs := 1; limbs < 40; limbs++ {
		z := randomNat(r, limbs)
		s := z.String()
		require.NotEqual(t, byte('0'), s[0], "no leading zero for a nonzero value")
		require.Equal(t, z.Big().String(), s)
		require.Equal(t, limbs, z.Size(), "String must not modify the receiver")
	}
}

func TestConsume(t *testing.T) {
	t.Parallel()

	z := New().SetWords([]Word{0, 0, 1})
	want := new(big.Int).Lsh(big.NewInt(1), 128).String()
	assert.Equal(t, want, z.Consume())
	assert.True(t, z.IsZero(), "Consume leaves the receiver zero")
	assert.Equal(t, 3, z.Cap(), "Consume keeps the storage")
	assert.Equal(t, "0", z.Consume())
}

func TestSwapAndMove(t *testing.T) {
	t.Parallel()

	a := NewFromUint64(1)
	b := New().SetWords([]Word{2, 3})
	a.Swap(b)
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, Word(2), a.GetOr(0, 0))
	assert.Equal(t, "1", b.String())

	c := New()
	c.MoveFrom(a)
	assert.Equal(t, 2, c.Size())
	assert.True(t, a.IsZero())
	assert.Equal(t, 0, a.Cap(), "moved-from value has no storage")

	c.MoveFrom(c)
	assert.Equal(t, 2, c.Size(), "self-move is a no-op")
}

func TestSetAndClone(t *testing.T) {
	t.Parallel()

	src := New().SetWords([]Word{1, 2, 3})
	src.Reserve(10)

	clone := src.Clone()
	assert.Equal(t, 0, clone.Cmp(src))
	assert.Equal(t, 10, clone.Cap())
	assert.False(t, alias(clone, src))

	dst := NewFromUint64(9)
	dst.Set(src)
	assert.Equal(t, 0, dst.Cmp(src))
	clone.AddAssign(NewFromUint64(1))
	assert.Equal(t, 0, dst.Cmp(src), "copies are independent")
	assert.Equal(t, 1, clone.Cmp(src))
}

func TestCmp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b []Word
		want int
	}{
		{nil, nil, 0},
		{nil, []Word{1}, -1},
		{[]Word{5}, []Word{3}, 1},
		{[]Word{0, 1}, []Word{^Word(0)}, 1},
		{[]Word{1, 2}, []Word{2, 2}, -1},
	}
	for _, tt := range tests {
		a, b := New().SetWords(tt.a), New().SetWords(tt.b)
		assert.Equal(t, tt.want, a.Cmp(b), "%v vs %v", tt.a, tt.b)
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	z := New().SetWords([]Word{1, 0, 0})
	assert.Equal(t, 1, z.Size(), "SetWords normalises trailing zeros")

	x, ok := new(big.Int).SetString("340282366920938463463374607431768211457", 10) // 2^128 + 1
	require.True(t, ok)
	z.SetBig(x)
	assert.Equal(t, []Word{1, 0, 1}, z.Limbs())
	assert.Equal(t, 0, z.Big().Cmp(x))
	assert.Equal(t, 129, z.BitLen())

	z.SetBytes([]byte{0x01, 0x02, 0x03})
	assert.Equal(t, []Word{0x010203}, z.Limbs())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, z.Bytes())

	z.SetBytes(nil)
	assert.True(t, z.IsZero())
	assert.Empty(t, z.Bytes())
	assert.Equal(t, 0, z.Big().Sign())

	assert.Panics(t, func() { New().SetBig(big.NewInt(-1)) })
}
