// Package bigint implements Nat, an arbitrary-precision unsigned integer
// stored as little-endian 64-bit limbs, together with the fused schoolbook
// kernels used by the Fibonacci strategies.
//
// Nat is built for hot loops that reuse the same registers: capacity is
// reserved up front (see ReserveForNthFib) and only ever grows, so repeated
// computations for the same or smaller sizes never allocate.
//
// Kernel functions (Mul, MulAdd, MulAddToTwoNumbers) take caller-owned output
// buffers. Their preconditions are checked on every call: an output that
// aliases an input, or that would have to grow past its reserved capacity,
// panics with *apperrors.ContractError.
//
// A Nat must not be copied by value; use Clone, MoveFrom or Swap.
package bigint

import (
	"math/bits"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// Word is a single limb of a Nat.
type Word = uint64

const (
	// WordBits is the width of a limb in bits.
	WordBits = 64

	// fibReserveSlack is added to the limb estimate of ReserveForNthFib to
	// cover small indices and the rounding of the estimate.
	fibReserveSlack = 12
)

// Nat is a non-negative integer, value = Σ limbs[i]·2^(64·i).
// len(limbs) is the size; cap(limbs) is the reserved capacity. The zero
// value is ready to use and represents 0. A non-zero value never has a
// trailing zero limb.
type Nat struct {
	limbs []Word
}

// New returns a zero Nat with no storage.
func New() *Nat {
	return &Nat{}
}

// NewFromUint64 returns a Nat holding v.
func NewFromUint64(v uint64) *Nat {
	z := &Nat{}
	z.Assign(v)
	return z
}

// Assign sets z to v. Assigning 0 empties the limb sequence. Capacity is
// kept; a single limb is allocated only when z has no storage at all.
func (z *Nat) Assign(v uint64) {
	z.limbs = z.limbs[:0]
	if v == 0 {
		return
	}
	if cap(z.limbs) == 0 {
		z.limbs = make([]Word, 0, 1)
	}
	z.limbs = append(z.limbs, v)
}

// Size returns the number of limbs; 0 means the value is zero.
func (z *Nat) Size() int {
	return len(z.limbs)
}

// Cap returns the number of reserved limb slots.
func (z *Nat) Cap() int {
	return cap(z.limbs)
}

// IsZero reports whether z == 0.
func (z *Nat) IsZero() bool {
	return len(z.limbs) == 0
}

// GetOr returns limb i, or def when i is past the end.
func (z *Nat) GetOr(i int, def Word) Word {
	if i < 0 || i >= len(z.limbs) {
		return def
	}
	return z.limbs[i]
}

// Limbs returns the little-endian limbs of z. The slice aliases z's storage
// and is only valid until z is next modified.
func (z *Nat) Limbs() []Word {
	return z.limbs
}

// BitLen returns the length of z in bits; 0 for zero.
func (z *Nat) BitLen() int {
	n := len(z.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*WordBits + bits.Len64(z.limbs[n-1])
}

// ReserveForNthFib reserves enough limbs to hold F(n) and the intermediate
// products the strategies form on the way to it. F(n) has about 0.694·n
// bits, so n/64 limbs over-estimates it.
func (z *Nat) ReserveForNthFib(n uint64) {
	z.Reserve(int(n/WordBits) + fibReserveSlack)
}

// Reserve makes sure z can hold at least capacity limbs. It never shrinks:
// if the current capacity suffices nothing happens, otherwise capacity grows
// to max(capacity, 2·current) so that a series of increasing requests is
// amortised.
func (z *Nat) Reserve(capacity int) {
	cur := cap(z.limbs)
	if cur >= capacity {
		return
	}
	if 2*cur > capacity {
		capacity = 2 * cur
	}
	buf := make([]Word, len(z.limbs), capacity)
	copy(buf, z.limbs)
	z.limbs = buf
}

// Swap exchanges the contents (and storage) of z and x.
func (z *Nat) Swap(x *Nat) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

// MoveFrom transfers x's storage to z and leaves x zero with no storage.
// z's previous storage is released.
func (z *Nat) MoveFrom(x *Nat) {
	if z == x {
		return
	}
	z.limbs = x.limbs
	x.limbs = nil
}

// Set copies x into z, growing z if needed.
func (z *Nat) Set(x *Nat) *Nat {
	if z == x {
		return z
	}
	z.Reserve(len(x.limbs))
	z.limbs = z.limbs[:len(x.limbs)]
	copy(z.limbs, x.limbs)
	return z
}

// Clone returns an independent copy of z with the same capacity.
func (z *Nat) Clone() *Nat {
	buf := make([]Word, len(z.limbs), cap(z.limbs))
	copy(buf, z.limbs)
	return &Nat{limbs: buf}
}

// Cmp compares z and x and returns -1, 0 or +1.
func (z *Nat) Cmp(x *Nat) int {
	m, n := len(z.limbs), len(x.limbs)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case z.limbs[i] < x.limbs[i]:
			return -1
		case z.limbs[i] > x.limbs[i]:
			return 1
		}
	}
	return 0
}

// setLen changes the length of z within its capacity. Newly exposed limbs
// are zeroed since the backing array may hold stale data.
func (z *Nat) setLen(n int) {
	old := len(z.limbs)
	z.limbs = z.limbs[:n]
	if n > old {
		clear(z.limbs[old:])
	}
}

// extendTo lengthens z to n limbs without reallocating. It panics with a
// ContractError when n exceeds the reserved capacity.
func (z *Nat) extendTo(n int, op string) {
	if n <= len(z.limbs) {
		return
	}
	if n > cap(z.limbs) {
		panic(apperrors.NewContractError(op, "output needs %d limbs but only %d are reserved", n, cap(z.limbs)))
	}
	z.setLen(n)
}

// growTo lengthens z to n limbs, reallocating geometrically if needed.
func (z *Nat) growTo(n int) {
	if n <= len(z.limbs) {
		return
	}
	z.Reserve(n)
	z.setLen(n)
}

// norm drops trailing zero limbs.
func (z *Nat) norm() {
	i := len(z.limbs)
	for i > 0 && z.limbs[i-1] == 0 {
		i--
	}
	z.limbs = z.limbs[:i]
}

// alias reports whether x and y share the same backing array.
func alias(x, y *Nat) bool {
	if x == y {
		return true
	}
	cx, cy := cap(x.limbs), cap(y.limbs)
	return cx > 0 && cy > 0 && &x.limbs[0:cx][cx-1] == &y.limbs[0:cy][cy-1]
}

// mustNotAlias panics when out shares storage with any of the inputs.
func mustNotAlias(op string, out *Nat, inputs ...*Nat) {
	for _, in := range inputs {
		if alias(out, in) {
			panic(apperrors.NewContractError(op, "output buffer aliases an input buffer"))
		}
	}
}
