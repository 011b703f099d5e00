package interval

import (
	"math/big"
	"testing"
)

// encloses checks that the exact rational num/den lies inside iv.
func encloses(t *testing.T, iv Interval, num, den int64) {
	t.Helper()
	v := new(big.Float).SetPrec(256).SetRat(big.NewRat(num, den))
	if v.Cmp(iv.Lo()) < 0 || v.Cmp(iv.Hi()) > 0 {
		t.Errorf("interval %v does not enclose %d/%d", iv, num, den)
	}
}

func TestFromRat_ExactVersusOutward(t *testing.T) {
	f := NewField(53)

	half := f.FromRat(big.NewRat(1, 2))
	if !half.IsPoint() {
		t.Error("1/2 is representable and should give a zero-width interval")
	}

	third := f.FromRat(big.NewRat(1, 3))
	if third.IsPoint() {
		t.Error("1/3 is not representable and should round outward")
	}
	if third.Lo().Cmp(third.Hi()) >= 0 {
		t.Error("lo must stay strictly below hi after outward rounding")
	}
	encloses(t, third, 1, 3)
}

func TestArithmetic_EnclosesExactResult(t *testing.T) {
	f := NewField(53)
	a := f.FromRat(big.NewRat(1, 3))
	b := f.FromRat(big.NewRat(1, 7))

	encloses(t, f.Add(a, b), 10, 21)
	encloses(t, f.Sub(a, b), 4, 21)
	encloses(t, f.Mul(a, b), 1, 21)
	encloses(t, f.Div(a, b), 7, 3)
	encloses(t, f.Neg(a), -1, 3)
}

func TestMul_SignCases(t *testing.T) {
	f := NewField(53)
	cases := []struct {
		name           string
		alo, ahi       float64
		blo, bhi       float64
		wantLo, wantHi float64
	}{
		{"both positive", 1, 2, 3, 4, 3, 8},
		{"straddle times positive", -1, 2, 3, 4, -4, 8},
		{"both straddle", -2, 3, -1, 4, -8, 12},
		{"negative times negative", -3, -1, -4, -2, 2, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := f.Span(big.NewFloat(tc.alo), big.NewFloat(tc.ahi))
			b := f.Span(big.NewFloat(tc.blo), big.NewFloat(tc.bhi))
			got := f.Mul(a, b)
			lo, _ := got.Lo().Float64()
			hi, _ := got.Hi().Float64()
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Errorf("got [%v, %v], want [%v, %v]", lo, hi, tc.wantLo, tc.wantHi)
			}
		})
	}
}

func TestSq_StraddlingZeroClampsAtZero(t *testing.T) {
	f := NewField(53)
	a := f.Span(big.NewFloat(-2), big.NewFloat(3))
	sq := f.Sq(a)
	if sq.Lo().Sign() != 0 {
		t.Errorf("square of straddling interval must have lower bound 0, got %v", sq.Lo())
	}
	hi, _ := sq.Hi().Float64()
	if hi != 9 {
		t.Errorf("upper bound = %v, want 9", hi)
	}
}

func TestUnion_Hull(t *testing.T) {
	f := NewField(53)
	a := f.Span(big.NewFloat(-1), big.NewFloat(0.5))
	b := f.Span(big.NewFloat(2), big.NewFloat(3))
	u := f.Union(a, b)
	lo, _ := u.Lo().Float64()
	hi, _ := u.Hi().Float64()
	if lo != -1 || hi != 3 {
		t.Errorf("union = [%v, %v], want [-1, 3]", lo, hi)
	}
}

func TestCenterAndDiam(t *testing.T) {
	f := NewField(53)
	a := f.Span(big.NewFloat(1), big.NewFloat(3))
	c, _ := f.Center(a).Float64()
	if c != 2 {
		t.Errorf("center = %v, want 2", c)
	}
	d, _ := f.Diam(a).Float64()
	if d != 2 {
		t.Errorf("diameter = %v, want 2", d)
	}
}

func TestPredicates(t *testing.T) {
	f := NewField(53)
	outer := f.Span(big.NewFloat(0), big.NewFloat(10))
	inner := f.Span(big.NewFloat(2), big.NewFloat(3))
	touching := f.Span(big.NewFloat(10), big.NewFloat(12))
	apart := f.Span(big.NewFloat(11), big.NewFloat(12))

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.Overlaps(touching) {
		t.Error("touching intervals must count as overlapping")
	}
	if outer.Overlaps(apart) {
		t.Error("separated intervals must not overlap")
	}
	if !outer.ContainsZero() {
		t.Error("[0, 10] contains zero")
	}
	if inner.ContainsZero() {
		t.Error("[2, 3] does not contain zero")
	}
}
