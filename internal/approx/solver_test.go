package approx

import (
	"math"
	"testing"
)

// near reports whether some returned root lies within tol of (re, im),
// consuming it so duplicated results cannot satisfy two expectations.
func near(roots []Complex, used []bool, re, im, tol float64) bool {
	for i, z := range roots {
		if used[i] {
			continue
		}
		zr, _ := z.Re.Float64()
		zi, _ := z.Im.Float64()
		if math.Abs(zr-re) <= tol && math.Abs(zi-im) <= tol {
			used[i] = true
			return true
		}
	}
	return false
}

func expectRoots(t *testing.T, roots []Complex, want [][2]float64, tol float64) {
	t.Helper()
	if len(roots) != len(want) {
		t.Fatalf("got %d roots, want %d", len(roots), len(want))
	}
	used := make([]bool, len(roots))
	for _, w := range want {
		if !near(roots, used, w[0], w[1], tol) {
			t.Errorf("no root near %v + %v*i", w[0], w[1])
		}
	}
}

func TestRoots_Linear(t *testing.T) {
	// 2x - 6 = 0
	coeff := []Complex{NewComplex(-6, 0, 53), NewComplex(2, 0, 53)}
	expectRoots(t, Roots(coeff, 53), [][2]float64{{3, 0}}, 1e-12)
}

func TestRoots_Quadratic(t *testing.T) {
	// x^2 - 1
	coeff := []Complex{
		NewComplex(-1, 0, 53),
		NewComplex(0, 0, 53),
		NewComplex(1, 0, 53),
	}
	expectRoots(t, Roots(coeff, 53), [][2]float64{{1, 0}, {-1, 0}}, 1e-12)
}

func TestRoots_CubeRootsOfUnity(t *testing.T) {
	// x^3 - 1
	coeff := []Complex{
		NewComplex(-1, 0, 53),
		NewComplex(0, 0, 53),
		NewComplex(0, 0, 53),
		NewComplex(1, 0, 53),
	}
	h := math.Sqrt(3) / 2
	expectRoots(t, Roots(coeff, 53), [][2]float64{
		{1, 0},
		{-0.5, h},
		{-0.5, -h},
	}, 1e-12)
}

func TestRoots_GaussianShift(t *testing.T) {
	// (x - i)(x + 2i) = x^2 + i*x + 2
	coeff := []Complex{
		NewComplex(2, 0, 53),
		NewComplex(0, 1, 53),
		NewComplex(1, 0, 53),
	}
	expectRoots(t, Roots(coeff, 53), [][2]float64{{0, 1}, {0, -2}}, 1e-12)
}

func TestRoots_HigherPrecisionTightens(t *testing.T) {
	// x^2 - 2 at 200 bits: the float64 view of the result must be exactly
	// the nearest double to sqrt(2).
	coeff := []Complex{
		NewComplex(-2, 0, 200),
		NewComplex(0, 0, 200),
		NewComplex(1, 0, 200),
	}
	roots := Roots(coeff, 200)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	for _, z := range roots {
		r, _ := z.Re.Float64()
		if math.Abs(r) != math.Sqrt2 {
			t.Errorf("|root| = %v, want %v", math.Abs(r), math.Sqrt2)
		}
	}
}
