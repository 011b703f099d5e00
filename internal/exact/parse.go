package exact

// #region imports
import (
	"fmt"
	"math/big"
	"strings"
)

// #endregion

// #region parse-poly

// ParsePoly parses a comma-separated coefficient list in descending degree
// order, e.g. "1, 0, 0, -1" for x^3 - 1. Each coefficient is a rational
// with an optional imaginary part: "1/2", "-3", "2i", "1-1/2i".
func ParsePoly(s string) (*Poly, error) {
	parts := strings.Split(s, ",")
	c := make([]Gaussian, len(parts))
	for i, part := range parts {
		g, err := parseCoeff(part)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		c[len(parts)-1-i] = g
	}
	p := NewPoly(c...)
	if p.IsZero() {
		return nil, fmt.Errorf("zero polynomial")
	}
	return p, nil
}

// #endregion

// #region parse-coeff

func parseCoeff(s string) (Gaussian, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return Gaussian{}, fmt.Errorf("empty coefficient")
	}
	re := new(big.Rat)
	im := new(big.Rat)
	for start := 0; start < len(s); {
		end := start + 1
		for end < len(s) {
			// A sign splits terms unless it belongs to an exponent.
			if (s[end] == '+' || s[end] == '-') && s[end-1] != 'e' && s[end-1] != 'E' {
				break
			}
			end++
		}
		term := s[start:end]
		start = end

		neg := false
		switch term[0] {
		case '+':
			term = term[1:]
		case '-':
			neg = true
			term = term[1:]
		}
		isImag := strings.HasSuffix(term, "i") || strings.HasSuffix(term, "I")
		if isImag {
			term = term[:len(term)-1]
		}
		if term == "" {
			if !isImag {
				return Gaussian{}, fmt.Errorf("malformed coefficient %q", s)
			}
			term = "1"
		}
		v, ok := new(big.Rat).SetString(term)
		if !ok {
			return Gaussian{}, fmt.Errorf("malformed coefficient %q", s)
		}
		if neg {
			v.Neg(v)
		}
		if isImag {
			im.Add(im, v)
		} else {
			re.Add(re, v)
		}
	}
	return NewGaussian(re, im), nil
}

// #endregion
