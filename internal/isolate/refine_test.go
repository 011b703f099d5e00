package isolate

import (
	"math"
	"math/big"
	"testing"

	"rootbox/internal/exact"
	"rootbox/internal/interval"
)

// promote prepares a factor and its derivative in interval form.
func promote(p *exact.Poly, fld interval.Field) (ip, ipd interval.Poly) {
	return p.Promote(fld), p.Derivative().Promote(fld)
}

func TestRefineRoot_CertifiesSimpleRoot(t *testing.T) {
	fld := interval.NewField(53)
	ip, ipd := promote(exact.FromInts(1, 0, -2), fld) // x^2 - 2

	cand := fld.BoxPoint(big.NewFloat(math.Sqrt2), big.NewFloat(0))
	got, ok := refineRoot(fld, ip, ipd, cand)
	if !ok {
		t.Fatal("refinement failed for a well-separated simple root")
	}

	sqrt2 := new(big.Float).SetPrec(200).Sqrt(big.NewFloat(2))
	if sqrt2.Cmp(got.Re.Lo()) < 0 || sqrt2.Cmp(got.Re.Hi()) > 0 {
		t.Errorf("certified box %v does not contain sqrt(2)", got)
	}
	d, _ := fld.BoxDiam(got).Float64()
	if d > 1e-10 {
		t.Errorf("certified box too wide: diameter %g", d)
	}
}

func TestRefineRoot_RealCoefficientsKeepRealAxisExact(t *testing.T) {
	fld := interval.NewField(53)
	ip, ipd := promote(exact.FromInts(1, 0, -2), fld)

	// A candidate with exactly zero imaginary part must certify with the
	// imaginary part still an exact zero point, not a thin interval.
	cand := fld.BoxPoint(big.NewFloat(math.Sqrt2), big.NewFloat(0))
	got, ok := refineRoot(fld, ip, ipd, cand)
	if !ok {
		t.Fatal("refinement failed")
	}
	if !got.Im.IsPoint() || got.Im.Lo().Sign() != 0 {
		t.Errorf("imaginary part = %v, want exact 0", got.Im)
	}
}

func TestRefineRoot_SnapsImaginaryRootToAxis(t *testing.T) {
	fld := interval.NewField(53)
	ip, ipd := promote(exact.FromInts(1, 0, 1), fld) // x^2 + 1

	// A floating candidate never lands exactly on the axis; the refiner
	// must recover the axis by snapping once the box straddles it.
	cand := fld.BoxPoint(big.NewFloat(3e-17), big.NewFloat(1))
	got, ok := refineRoot(fld, ip, ipd, cand)
	if !ok {
		t.Fatal("refinement failed for root i")
	}
	if !got.Re.ContainsZero() {
		t.Errorf("real part %v does not contain 0", got.Re)
	}
	one := big.NewFloat(1)
	if one.Cmp(got.Im.Lo()) < 0 || one.Cmp(got.Im.Hi()) > 0 {
		t.Errorf("imaginary part %v does not contain 1", got.Im)
	}
	d, _ := fld.BoxDiam(got).Float64()
	if d > 1e-10 {
		t.Errorf("certified box too wide: diameter %g", d)
	}
}

func TestRefineRoot_RejectsVanishingSlope(t *testing.T) {
	fld := interval.NewField(53)
	ip, ipd := promote(exact.FromInts(1, 0, -2), fld)

	// The derivative of x^2 - 2 vanishes at the origin, so no box around
	// it can be certified.
	cand := fld.BoxPoint(big.NewFloat(0), big.NewFloat(0))
	if _, ok := refineRoot(fld, ip, ipd, cand); ok {
		t.Error("certified a box with a vanishing derivative")
	}
}

func TestRefineRoot_RejectsRepeatedRoot(t *testing.T) {
	fld := interval.NewField(53)
	ip, ipd := promote(exact.FromInts(1, -2, 1), fld) // (x-1)^2

	// The derivative vanishes at the root itself; certification must fail
	// at any precision.
	cand := fld.BoxPoint(big.NewFloat(1), big.NewFloat(0))
	if _, ok := refineRoot(fld, ip, ipd, cand); ok {
		t.Error("certified a repeated root as simple")
	}
}
