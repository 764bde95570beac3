package bigint

import "math/bits"

// AddAssign sets z = z + b and returns z. z may be b. The length of z
// becomes that of the longer operand, plus one limb for a final carry;
// storage grows geometrically only when the reserved capacity is too small.
func (z *Nat) AddAssign(b *Nat) *Nat {
	blen := len(b.limbs)
	maxlen := max(len(z.limbs), blen)
	z.growTo(maxlen)

	// growTo may have moved z; when b == z it moved too.
	bl := b.limbs[:blen]
	zl := z.limbs

	var carry Word
	for i := 0; i < blen; i++ {
		zl[i], carry = bits.Add64(zl[i], bl[i], carry)
	}
	for i := blen; i < maxlen && carry != 0; i++ {
		zl[i], carry = bits.Add64(zl[i], 0, carry)
	}
	if carry != 0 {
		z.growTo(maxlen + 1)
		z.limbs[maxlen] = carry
	}
	return z
}

// AddToTwoNumbers adds b to both a1 and a2 in a single pass over b, each
// accumulator keeping its own carry. The result equals a1.AddAssign(b)
// followed by a2.AddAssign(b). a1, a2 and b must be three distinct buffers.
func AddToTwoNumbers(a1, a2, b *Nat) {
	const op = "bigint.AddToTwoNumbers"
	mustNotAlias(op, a1, a2, b)
	mustNotAlias(op, a2, b)

	maxlen := max(len(a1.limbs), len(a2.limbs), len(b.limbs))
	a1.growTo(maxlen)
	a2.growTo(maxlen)

	l1, l2 := a1.limbs, a2.limbs
	var carry1, carry2 Word
	for i := 0; i < maxlen; i++ {
		y := b.GetOr(i, 0)
		l1[i], carry1 = bits.Add64(l1[i], y, carry1)
		l2[i], carry2 = bits.Add64(l2[i], y, carry2)
	}
	if carry1 != 0 {
		a1.growTo(maxlen + 1)
		a1.limbs[maxlen] = carry1
	}
	if carry2 != 0 {
		a2.growTo(maxlen + 1)
		a2.limbs[maxlen] = carry2
	}
	// The shorter accumulator was widened to maxlen.
	a1.norm()
	a2.norm()
}
