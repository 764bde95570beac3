package bigint

import (
	"math/bits"
	"slices"
)

// String returns the decimal representation of z. z is left untouched; the
// digits are produced from a copy (see Consume).
func (z *Nat) String() string {
	if len(z.limbs) == 0 {
		return "0"
	}
	return z.Clone().Consume()
}

// Consume returns the decimal representation of z, using z itself as the
// scratch space for the repeated divisions. z is zero afterwards.
func (z *Nat) Consume() string {
	if len(z.limbs) == 0 {
		return "0"
	}
	// 64 bits hold at most 20 decimal digits.
	digits := make([]byte, 0, len(z.limbs)*20)
	for len(z.limbs) > 0 {
		digits = append(digits, byte('0'+z.div10()))
	}
	slices.Reverse(digits)
	return string(digits)
}

// div10 divides z by ten in place and returns the remainder.
func (z *Nat) div10() Word {
	var rem Word
	for i := len(z.limbs) - 1; i >= 0; i-- {
		z.limbs[i], rem = bits.Div64(rem, z.limbs[i], 10)
	}
	z.norm()
	return rem
}
