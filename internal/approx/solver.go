package approx

// #region imports
import (
	"math"
	"math/big"
)

// #endregion

// #region roots

// Roots returns deg approximate roots of the polynomial with the given
// complex coefficients (ascending degree order, nonzero leading
// coefficient), found by Aberth–Ehrlich simultaneous iteration at prec
// bits. The results carry no correctness contract: they may be duplicated
// or arbitrarily wrong for ill-conditioned inputs, and downstream interval
// verification is responsible for rejecting them.
func Roots(coeff []Complex, prec uint) []Complex {
	n := len(coeff) - 1
	if n < 1 {
		return nil
	}

	// Normalize to a monic polynomial; the roots are unchanged.
	lead := coeff[n]
	monic := make([]Complex, n+1)
	for i := 0; i <= n; i++ {
		monic[i] = coeff[i].Div(lead)
	}
	monic[n] = NewComplex(1, 0, prec)

	if n == 1 {
		return []Complex{monic[0].Neg()}
	}

	deriv := make([]Complex, n)
	for i := 1; i <= n; i++ {
		deriv[i-1] = monic[i].Mul(NewComplex(float64(i), 0, prec))
	}

	z := initialGuesses(monic, n, prec)

	// Threshold for the relative correction: |dz|^2 <= tol * (1 + |z|^2)
	// with tol ~ 2^(-2(prec-6)). Past that point the iteration is churning
	// rounding noise at the working precision.
	tol := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -2*(int(prec)-6))
	one := NewComplex(1, 0, prec)

	maxIter := 64 + int(prec)
	for iter := 0; iter < maxIter; iter++ {
		done := true
		for k := range z {
			p, dp := hornerBoth(monic, deriv, z[k])
			if dp.IsZero() {
				z[k] = nudge(z[k])
				done = false
				continue
			}
			w := p.Div(dp)

			// Repulsion term over the other current iterates.
			s := NewComplex(0, 0, prec)
			collision := false
			for j := range z {
				if j == k {
					continue
				}
				d := z[k].Sub(z[j])
				if d.IsZero() {
					collision = true
					break
				}
				s = s.Add(d.Inv())
			}
			if collision {
				z[k] = nudge(z[k])
				done = false
				continue
			}

			den := one.Sub(w.Mul(s))
			dz := w
			if !den.IsZero() {
				dz = w.Div(den)
			}
			z[k] = z[k].Sub(dz)

			rel := new(big.Float).Add(big.NewFloat(1), z[k].AbsSq())
			rel.Mul(rel, tol)
			if dz.AbsSq().Cmp(rel) > 0 {
				done = false
			}
		}
		if done {
			break
		}
	}
	return z
}

// #endregion

// #region seeding

// initialGuesses places the iterates on a circle slightly outside the
// Cauchy root bound, rotated off the axes so purely real or imaginary
// roots do not trap the iteration on a symmetry line.
func initialGuesses(monic []Complex, n int, prec uint) []Complex {
	radius := new(big.Float).SetPrec(prec).SetInt64(1)
	for i := 0; i < n; i++ {
		// |re| + |im| is a cheap upper bound on |c_i|.
		a := new(big.Float).Abs(monic[i].Re)
		a.Add(a, new(big.Float).Abs(monic[i].Im))
		if a.Cmp(radius) > 0 {
			radius.Set(a)
		}
	}
	radius.Add(radius, big.NewFloat(1))

	z := make([]Complex, n)
	for k := 0; k < n; k++ {
		theta := 2*math.Pi*float64(k)/float64(n) + 0.7
		dir := NewComplex(math.Cos(theta), math.Sin(theta), prec)
		z[k] = Complex{
			Re: new(big.Float).Mul(radius, dir.Re),
			Im: new(big.Float).Mul(radius, dir.Im),
		}
	}
	return z
}

// nudge moves an iterate off a degenerate spot (coincident iterates or a
// vanishing derivative).
func nudge(z Complex) Complex {
	return z.Add(NewComplex(1e-3, 2e-3, z.Re.Prec()))
}

// #endregion

// #region horner

// hornerBoth evaluates the polynomial and its derivative at z.
func hornerBoth(p, dp []Complex, z Complex) (Complex, Complex) {
	pv := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		pv = pv.Mul(z).Add(p[i])
	}
	dv := dp[len(dp)-1]
	for i := len(dp) - 2; i >= 0; i-- {
		dv = dv.Mul(z).Add(dp[i])
	}
	return pv, dv
}

// #endregion
