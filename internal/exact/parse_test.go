package exact

import (
	"math/big"
	"testing"
)

func TestParsePoly_Basic(t *testing.T) {
	p, err := ParsePoly("1,0,0,-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !polysEqual(p, FromInts(1, 0, 0, -1)) {
		t.Errorf("parsed %s, want x^3 - 1", p)
	}
}

func TestParsePoly_Coefficients(t *testing.T) {
	cases := []struct {
		in   string
		want Gaussian
	}{
		{"5", FromInt(5)},
		{"-3", FromInt(-3)},
		{"1/2", FromRat(big.NewRat(1, 2))},
		{"-7/3", FromRat(big.NewRat(-7, 3))},
		{"2i", NewGaussian(new(big.Rat), big.NewRat(2, 1))},
		{"i", NewGaussian(new(big.Rat), big.NewRat(1, 1))},
		{"-i", NewGaussian(new(big.Rat), big.NewRat(-1, 1))},
		{"1-1/2i", NewGaussian(big.NewRat(1, 1), big.NewRat(-1, 2))},
		{"3+2i", NewGaussian(big.NewRat(3, 1), big.NewRat(2, 1))},
		{" 1 + 2i ", NewGaussian(big.NewRat(1, 1), big.NewRat(2, 1))},
	}
	for _, tc := range cases {
		got, err := parseCoeff(tc.in)
		if err != nil {
			t.Errorf("parseCoeff(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseCoeff(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParsePoly_Errors(t *testing.T) {
	cases := []string{
		"",        // empty coefficient
		"1,,1",    // empty middle coefficient
		"x",       // not a number
		"1+2j",    // unknown imaginary suffix
		"0,0,0",   // zero polynomial
	}
	for _, in := range cases {
		if _, err := ParsePoly(in); err == nil {
			t.Errorf("ParsePoly(%q) succeeded, want error", in)
		}
	}
}

func TestParsePoly_RoundTripsGaussianStrings(t *testing.T) {
	g := NewGaussian(big.NewRat(1, 1), big.NewRat(-1, 2))
	got, err := parseCoeff(g.String())
	if err != nil {
		t.Fatalf("parseCoeff(%q): %v", g.String(), err)
	}
	if !got.Equal(g) {
		t.Errorf("round trip %q = %s, want %s", g.String(), got, g)
	}
}
