package bigint

import (
	"encoding/binary"
	"math/big"
)

// SetWords sets z to the value of the little-endian limbs in words and
// normalises away trailing zeros. words is copied.
func (z *Nat) SetWords(words []Word) *Nat {
	z.Reserve(len(words))
	z.limbs = z.limbs[:len(words)]
	copy(z.limbs, words)
	z.norm()
	return z
}

// SetBytes interprets buf as a big-endian unsigned integer and sets z to it.
func (z *Nat) SetBytes(buf []byte) *Nat {
	n := (len(buf) + 7) / 8
	z.Reserve(n)
	z.setLen(n)
	for i := 0; i < n; i++ {
		end := len(buf) - 8*i
		start := max(end-8, 0)
		var w Word
		for _, b := range buf[start:end] {
			w = w<<8 | Word(b)
		}
		z.limbs[i] = w
	}
	z.norm()
	return z
}

// Bytes returns z as a big-endian byte slice without leading zero bytes.
func (z *Nat) Bytes() []byte {
	buf := make([]byte, 8*len(z.limbs))
	for i, w := range z.limbs {
		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], w)
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// SetBig sets z to x. x must not be negative.
func (z *Nat) SetBig(x *big.Int) *Nat {
	if x.Sign() < 0 {
		panic("bigint: SetBig of a negative value")
	}
	return z.SetBytes(x.Bytes())
}

// Big returns z as a newly allocated *big.Int.
func (z *Nat) Big() *big.Int {
	return new(big.Int).SetBytes(z.Bytes())
}
