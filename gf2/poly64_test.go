package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoly64Plus(t *testing.T) {
	// (x^2 + 1) + (x + 1) = x^2 + x.
	require.Equal(t, Poly64(0b110), Poly64(0b101).Plus(0b11))
	require.Equal(t, Poly64(0b11011), Poly64(0).Plus(0b11011))
	require.Equal(t, Poly64(0), Poly64(0b11011).Plus(0b11011))
}

func TestPoly64TimesBasic(t *testing.T) {
	// (x + 1)(x + 1) = x^2 + 2x + 1 = x^2 + 1.
	require.Equal(t, Poly64(0b101), Poly64(0b11).Times(0b11))
	// (x^2 + 1)(x + 1) = x^3 + x^2 + x + 1.
	require.Equal(t, Poly64(0b1111), Poly64(0b101).Times(0b11))
	require.Equal(t, Poly64(0), Poly64(0b101).Times(0))
}

func TestPoly64TimesCommutative(t *testing.T) {
	for i := Poly64(0); i < Poly64(1<<8); i++ {
		for j := Poly64(0); j < Poly64(1<<8); j++ {
			require.Equal(t, i.Times(j), j.Times(i), "i=%d, j=%d", i, j)
		}
	}
}

func TestPoly64TimesFull(t *testing.T) {
	// x^62 * (x^2 + x) = x^64 + x^63, which overflows the single-width
	// product.
	hi, lo := (Poly64(1) << 62).TimesFull(0b110)
	require.Equal(t, Poly64(1), hi)
	require.Equal(t, Poly64(1)<<63, lo)
	require.Equal(t, lo, (Poly64(1)<<62).Times(0b110))
}

func TestPoly64Degree(t *testing.T) {
	require.Equal(t, 0, Poly64(0).Degree())
	require.Equal(t, 0, Poly64(1).Degree())
	require.Equal(t, 1, Poly64(0b10).Degree())
	require.Equal(t, 8, Poly64(0b100011011).Degree())
	require.Equal(t, 63, (Poly64(1) << 63).Degree())
}

func TestPoly64Div(t *testing.T) {
	for i := Poly64(0); i < Poly64(1<<8); i++ {
		for j := Poly64(1); j < Poly64(1<<8); j++ {
			q, r := i.Div(j)
			require.Equal(t, i, q.Times(j).Plus(r), "i=%d, j=%d, q=%d, r=%d", i, j, q, r)
			require.True(t, r == 0 || r.Degree() < j.Degree(), "i=%d, j=%d, q=%d, r=%d", i, j, q, r)
		}
	}
}

func TestPoly64DivByOne(t *testing.T) {
	q, r := Poly64(0b100011011).Div(1)
	require.Equal(t, Poly64(0b100011011), q)
	require.Equal(t, Poly64(0), r)
}

func TestPoly64DivByZero(t *testing.T) {
	require.Panics(t, func() { Poly64(0b101).Div(0) })
}

func TestPoly64Mod(t *testing.T) {
	// Reduction modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.
	require.Equal(t, Poly64(1), Poly64(0b11111101111110).Mod(0b100011011))
}

func irreducible(n Poly64) bool {
	for i := Poly64(2); i < n; i++ {
		if n.Mod(i) == 0 {
			return false
		}
	}
	return true
}

func TestIrreducible(t *testing.T) {
	expectedIrreducibles := []Poly64{
		// x, x + 1
		2, 3,
		// x^2 + x + 1
		7,
		// x^3 + x + 1, x^3 + x^2 + 1
		11, 13,
		// x^4 + x + 1, x^4 + x^3 + 1
		19, 25,
		// x^4 + x^3 + x^2 + x + 1
		31,
		// x^5 + x^2 + 1, x^5 + x^3 + 1, x^5 + x^3 + x^2 + x + 1
		37, 41, 47,
		// x^5 + x^4 + x^2 + x + 1, x^5 + x^4 + x^3 + x + 1
		55, 59,
		// x^5 + x^4 + x^3 + x^2 + 1
		61,
	}

	var irreducibles []Poly64
	for i := Poly64(2); i < 64; i++ {
		if irreducible(i) {
			irreducibles = append(irreducibles, i)
		}
	}

	require.Equal(t, expectedIrreducibles, irreducibles)
}

func TestMod11(t *testing.T) {
	for i := Poly64(1); i < 8; i++ {
		foundInvMod11 := false
		for j := Poly64(1); j < 8; j++ {
			prodMod11 := i.Times(j).Mod(11)
			require.NotEqual(t, Poly64(0), prodMod11, "i=%d, j=%d", i, j)
			if prodMod11 == 1 {
				require.False(t, foundInvMod11, "i=%d, j=%d", i, j)
				foundInvMod11 = true
			}
		}
		assert.True(t, foundInvMod11, "i=%d", i)
	}
}

func TestPoly64Expand(t *testing.T) {
	require.Equal(t, "0", Poly64(0).Expand())
	require.Equal(t, "1", Poly64(1).Expand())
	require.Equal(t, "x+1", Poly64(0b11).Expand())
	require.Equal(t, "x^4+x^3+1", Poly64(0b11001).Expand())
	require.Equal(t, "x^8+x^4+x^3+x+1", Poly64(0b100011011).Expand())
}
