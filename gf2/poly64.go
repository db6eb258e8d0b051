package gf2

import (
	"math/bits"
	"strconv"
	"strings"
)

// A Poly64 is a polynomial over GF(2) mod x^64. Bit i holds the
// coefficient of x^i.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Degree returns the index of the highest set coefficient of p. The
// zero polynomial has degree 0 by convention, the same as the constant
// polynomial 1.
func (p Poly64) Degree() int {
	if p == 0 {
		return 0
	}
	return bits.Len64(uint64(p)) - 1
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64. Coefficients of the full product at x^64 and above are
// discarded; callers whose operand degrees may sum to 64 or more
// should use TimesFull instead.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// TimesFull returns the full product of p and q as polynomials over
// GF(2), with hi holding the coefficients of x^64 through x^126. The
// low half always equals p.Times(q).
func (p Poly64) TimesFull(q Poly64) (hi, lo Poly64) {
	for i := uint(0); q != 0; i++ {
		if q&1 != 0 {
			lo ^= p << i
			hi ^= p >> (64 - i)
		}
		q >>= 1
	}
	return hi, lo
}

// Div returns the quotient and remainder of dividing p by q as
// polynomials over GF(2), so that p == quot.Times(q).Plus(rem) and rem
// is either zero or of degree less than that of q. It panics if q is
// the zero polynomial.
func (p Poly64) Div(q Poly64) (quot, rem Poly64) {
	if q == 0 {
		panic("division by zero polynomial")
	}
	rem = p
	qDeg := q.Degree()
	for rem != 0 {
		shift := rem.Degree() - qDeg
		if shift < 0 {
			break
		}
		quot ^= 1 << uint(shift)
		rem ^= q << uint(shift)
	}
	return quot, rem
}

// Mod returns the remainder of dividing p by q as polynomials over
// GF(2). It panics if q is the zero polynomial.
func (p Poly64) Mod(q Poly64) Poly64 {
	_, rem := p.Div(q)
	return rem
}

// String returns the coefficients of p in hex.
func (p Poly64) String() string {
	return "0x" + strconv.FormatUint(uint64(p), 16)
}

// Expand returns p written out in powers of x, e.g. "x^4+x^3+1".
func (p Poly64) Expand() string {
	if p == 0 {
		return "0"
	}

	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p&(1<<uint(i)) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, "+")
}
