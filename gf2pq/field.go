// Package gf2pq models finite fields GF(2^q) built from GF(2)[x] by
// reducing modulo a primitive polynomial of degree q.
package gf2pq

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/ivanasen/galois-fields/gf2"
)

// alpha is the polynomial x, the candidate generator of the
// multiplicative group of GF(2)[x]/(p).
const alpha gf2.Poly64 = 0b10

// MaxFieldDegree bounds the modulus degree accepted by New. A field of
// degree q has 2^q elements, all of which New materializes.
const MaxFieldDegree = 24

// Order returns the multiplicative order of x mod p, i.e. the smallest
// k >= 1 with x^k = 1 mod p, and true, provided such k exists within
// the group order 2^Degree(p) - 1. If the powers of x never reach 1
// within that bound (which happens when p is reducible with a zero
// constant term, making x non-invertible), it returns 0 and false. p
// must have degree at least 1.
func Order(p gf2.Poly64) (uint64, bool) {
	deg := p.Degree()
	if deg < 1 {
		return 0, false
	}

	groupOrder := uint64(1)<<uint(deg) - 1
	current := alpha.Mod(p)
	order := uint64(1)
	for current != 1 {
		if order == groupOrder {
			return 0, false
		}
		current = current.Times(alpha).Mod(p)
		order++
	}
	return order, true
}

// IsPrimitive reports whether the multiplicative order of x mod p is
// the full group order 2^Degree(p) - 1, i.e. whether p generates
// GF(2^q) with x as a generator. Polynomials of degree below 2 are
// never primitive here. A true result implies p is irreducible, so
// unlike the order walk itself no separate irreducibility check is
// needed beforehand.
func IsPrimitive(p gf2.Poly64) bool {
	deg := p.Degree()
	if deg < 2 {
		return false
	}

	order, ok := Order(p)
	return ok && order == uint64(1)<<uint(deg)-1
}

// FieldElements returns [0, 1, x, x^2 mod p, x^3 mod p, ...], walking
// the powers of x and stopping when they wrap back to 1, so that 1
// appears exactly once, at index 1. For a primitive p of degree q the
// result is the whole of GF(2^q), exactly 2^q elements. For
// non-primitive p the walk terminates all the same but only covers the
// cyclic group generated by x, yielding a shorter sequence; callers
// that need the full-field guarantee must check IsPrimitive first or
// construct a Field. p must be nonzero.
func FieldElements(p gf2.Poly64) []gf2.Poly64 {
	elements := []gf2.Poly64{0, 1}
	groupOrder := uint64(1)<<uint(p.Degree()) - 1
	current := alpha.Mod(p)
	for n := uint64(1); current != 1 && n < groupOrder; n++ {
		elements = append(elements, current)
		current = current.Times(alpha).Mod(p)
	}
	return elements
}

// A Field is the finite field GF(2^q) generated by a primitive modulus
// of degree q. A Field can only be obtained through New, which runs
// the primitivity test, so holding one proves the modulus passed it.
type Field struct {
	modulus  gf2.Poly64
	degree   int
	elements []gf2.Poly64
}

// New checks that modulus is primitive and builds the field it
// generates. It returns an error if the degree of modulus is outside
// [2, MaxFieldDegree] or if modulus is not primitive.
func New(modulus gf2.Poly64) (*Field, error) {
	deg := modulus.Degree()
	if deg < 2 {
		return nil, fmt.Errorf("gf2pq: modulus %s has degree %d, need at least 2", modulus.Expand(), deg)
	}
	if deg > MaxFieldDegree {
		return nil, fmt.Errorf("gf2pq: modulus degree %d exceeds maximum %d", deg, MaxFieldDegree)
	}
	if !IsPrimitive(modulus) {
		return nil, fmt.Errorf("gf2pq: modulus %s is not primitive", modulus.Expand())
	}

	elements := FieldElements(modulus)
	if len(elements) != 1<<uint(deg) {
		panic("wrong element count for primitive modulus")
	}
	seen := bitset.New(uint(1) << uint(deg))
	for _, e := range elements {
		if seen.Test(uint(e)) {
			panic("repeated power")
		}
		seen.Set(uint(e))
	}

	return &Field{modulus: modulus, degree: deg, elements: elements}, nil
}

// Modulus returns the primitive polynomial generating the field.
func (f *Field) Modulus() gf2.Poly64 {
	return f.modulus
}

// Degree returns q for the field GF(2^q).
func (f *Field) Degree() int {
	return f.degree
}

// Size returns the number of field elements, 2^q.
func (f *Field) Size() int {
	return len(f.elements)
}

// Elements returns the field elements [0, 1, x, x^2, ...] reduced mod
// the modulus. The slice is shared with the Field; callers must not
// modify it.
func (f *Field) Elements() []gf2.Poly64 {
	return f.elements
}
