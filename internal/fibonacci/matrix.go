package fibonacci

import "github.com/agbru/fibbench/internal/bigint"

// MatrixExponentiation computes F(n) by raising the Fibonacci Q-matrix to the
// n-th power with binary exponentiation:
//
//	[ F(n+1) F(n)   ] = [ 1 1 ]^n
//	[ F(n)   F(n-1) ]   [ 1 0 ]
//
// Every power of Q is symmetric, so a matrix is held as the triple (a, b, c)
// standing for [[a, b], [b, c]] and F(n) is the off-diagonal entry b of the
// accumulated product.
//
// Exponent bits are consumed from the least significant end. The base is
// not squared once the remaining exponent is zero, which keeps every entry
// at or below F(n+1) and every register within ReserveForNthFib(n).
//
// The strategy owns three triples (accumulator, base and a scratch product)
// whose storage is reused across calls; once prepared for n, computing any
// F(k) with k <= n does not allocate.
type MatrixExponentiation struct {
	acc, base, tmp *symMatrix
	prep           prepared
}

// symMatrix is the symmetric 2x2 matrix [[a, b], [b, c]].
type symMatrix struct {
	a, b, c bigint.Nat
}

// NewMatrixExponentiation returns an unprepared MatrixExponentiation strategy.
func NewMatrixExponentiation() *MatrixExponentiation {
	return &MatrixExponentiation{
		acc:  &symMatrix{},
		base: &symMatrix{},
		tmp:  &symMatrix{},
	}
}

// Name returns the registry name of the strategy.
func (m *MatrixExponentiation) Name() string {
	return "matexp"
}

// Prepare reserves every register for F(n).
func (m *MatrixExponentiation) Prepare(n uint64) {
	for _, s := range []*symMatrix{m.acc, m.base, m.tmp} {
		s.a.ReserveForNthFib(n)
		s.b.ReserveForNthFib(n)
		s.c.ReserveForNthFib(n)
	}
	m.prep.grow(n)
}

// Fib returns F(n). The result points into the strategy's registers.
func (m *MatrixExponentiation) Fib(n uint64) *bigint.Nat {
	m.prep.check("fibonacci.MatrixExponentiation.Fib", n)

	m.acc.set(1, 0, 1)
	m.base.set(1, 1, 0)

	for n != 0 {
		if n&1 == 1 {
			mulSym(m.tmp, m.acc, m.base)
			m.acc, m.tmp = m.tmp, m.acc
		}
		n >>= 1
		if n == 0 {
			break
		}
		mulSym(m.tmp, m.base, m.base)
		m.base, m.tmp = m.tmp, m.base
	}
	return &m.acc.b
}

func (s *symMatrix) set(a, b, c uint64) {
	s.a.Assign(a)
	s.b.Assign(b)
	s.c.Assign(c)
}

// mulSym sets r = p·q for symmetric p and q whose product is known to be
// symmetric (both are powers of Q). r must not share storage with p or q;
// p and q may be the same matrix.
//
//	r.a = p.a·q.a + p.b·q.b
//	r.b = p.a·q.b + p.b·q.c
//	r.c = p.b·q.b + p.c·q.c
//
// p.b·q.b feeds both diagonal entries and is folded into them in one pass.
func mulSym(r, p, q *symMatrix) {
	bigint.Mul(&r.a, &p.a, &q.a)
	bigint.Mul(&r.b, &p.a, &q.b)
	bigint.Mul(&r.c, &p.c, &q.c)
	bigint.MulAdd(&r.b, &p.b, &q.c)
	bigint.MulAddToTwoNumbers(&r.a, &r.c, &p.b, &q.b)
}
