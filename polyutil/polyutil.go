// Package polyutil parses and formats polynomials over GF(2) in the
// increasing-degree binary notation used by the primpoly command,
// where "1001" denotes 1 + x^3.
package polyutil

import (
	"fmt"

	"github.com/ivanasen/galois-fields/gf2"
)

// ParseCandidate parses a candidate polynomial of the given degree.
// The string must be exactly degree+1 characters of '0' and '1',
// listing coefficients from the constant term upward, and must end in
// '1' so that the declared degree is the actual one.
func ParseCandidate(s string, degree int) (gf2.Poly64, error) {
	if degree < 0 || degree > 63 {
		return 0, fmt.Errorf("polyutil: degree %d out of range [0, 63]", degree)
	}
	if len(s) != degree+1 {
		return 0, fmt.Errorf("polyutil: polynomial %q has %d coefficients, degree %d requires %d", s, len(s), degree, degree+1)
	}

	var p gf2.Poly64
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			p |= 1 << uint(i)
		case '0':
		default:
			return 0, fmt.Errorf("polyutil: polynomial %q contains %q, want only '0' and '1'", s, s[i])
		}
	}
	if s[degree] != '1' {
		return 0, fmt.Errorf("polyutil: polynomial %q does not have degree %d, its highest coefficient must be '1'", s, degree)
	}
	return p, nil
}

// FormatElement renders p as width coefficient characters from the
// constant term upward. Coefficients at width and above are not
// rendered.
func FormatElement(p gf2.Poly64, width int) string {
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		if p&(1<<uint(i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// FormatElements renders each polynomial on its own row, all padded to
// the degree of the largest one.
func FormatElements(ps []gf2.Poly64) []string {
	if len(ps) == 0 {
		return nil
	}

	maxDegree := 0
	for _, p := range ps {
		if d := p.Degree(); d > maxDegree {
			maxDegree = d
		}
	}

	rows := make([]string, len(ps))
	for i, p := range ps {
		rows[i] = FormatElement(p, maxDegree+1)
	}
	return rows
}
