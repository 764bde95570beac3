package bigint

import "math/bits"

// Mul sets res = lhs · rhs using schoolbook multiplication.
//
// res must not alias lhs or rhs (lhs and rhs may be the same Nat), and its
// reserved capacity must hold the product. res grows lazily, one row at a
// time, and never past its capacity; violating either precondition panics
// with *apperrors.ContractError.
func Mul(res, lhs, rhs *Nat) {
	const op = "bigint.Mul"
	mustNotAlias(op, res, lhs, rhs)
	res.limbs = res.limbs[:0]
	mulAddRows(op, res, lhs, rhs)
}

// MulAdd sets res = res + lhs · rhs without an intermediate product buffer.
// Preconditions are those of Mul.
func MulAdd(res, lhs, rhs *Nat) {
	const op = "bigint.MulAdd"
	mustNotAlias(op, res, lhs, rhs)
	mulAddRows(op, res, lhs, rhs)
}

// MulAddToTwoNumbers adds lhs · rhs to both res1 and res2. Each limb
// product is formed once and folded into the two accumulators, each with its
// own carry chain. res1 and res2 must be distinct and must not alias lhs or
// rhs; both need capacity for their sums.
func MulAddToTwoNumbers(res1, res2, lhs, rhs *Nat) {
	const op = "bigint.MulAddToTwoNumbers"
	mustNotAlias(op, res1, res2, lhs, rhs)
	mustNotAlias(op, res2, lhs, rhs)

	m := len(rhs.limbs)
	if m == 0 {
		return
	}
	yl := rhs.limbs
	for i, x := range lhs.limbs {
		if x == 0 {
			continue
		}
		res1.extendTo(i+m, op)
		res2.extendTo(i+m, op)
		r1 := res1.limbs[i : i+m]
		r2 := res2.limbs[i : i+m]

		var carry1, carry2 Word
		for j, y := range yl {
			hi, lo := bits.Mul64(x, y)

			lo1, c := bits.Add64(lo, r1[j], 0)
			hi1 := hi + c
			lo1, c = bits.Add64(lo1, carry1, 0)
			r1[j], carry1 = lo1, hi1+c

			lo2, c := bits.Add64(lo, r2[j], 0)
			hi2 := hi + c
			lo2, c = bits.Add64(lo2, carry2, 0)
			r2[j], carry2 = lo2, hi2+c
		}
		propagateCarry(op, res1, i+m, carry1)
		propagateCarry(op, res2, i+m, carry2)
	}
	res1.norm()
	res2.norm()
}

// mulAddRows accumulates lhs · rhs into res row by row: row i adds
// lhs[i] · rhs at limb offset i.
func mulAddRows(op string, res, lhs, rhs *Nat) {
	m := len(rhs.limbs)
	if m == 0 {
		return
	}
	yl := rhs.limbs
	for i, x := range lhs.limbs {
		if x == 0 {
			continue
		}
		res.extendTo(i+m, op)
		r := res.limbs[i : i+m]

		var carry Word
		for j, y := range yl {
			hi, lo := bits.Mul64(x, y)
			lo, c := bits.Add64(lo, r[j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			r[j], carry = lo, hi+c
		}
		propagateCarry(op, res, i+m, carry)
	}
	res.norm()
}

// propagateCarry adds carry into z starting at limb k, extending z within
// its capacity while the carry keeps rippling past the top.
func propagateCarry(op string, z *Nat, k int, carry Word) {
	for ; carry != 0; k++ {
		if k == len(z.limbs) {
			z.extendTo(k+1, op)
		}
		z.limbs[k], carry = bits.Add64(z.limbs[k], carry, 0)
	}
}
