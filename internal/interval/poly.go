package interval

// #region poly-type

// Poly is a polynomial with box coefficients in ascending degree order.
// It is the interval-promoted form of an exact polynomial at one working
// precision.
type Poly struct {
	Coeff []Box
}

// Degree returns the degree of p, or -1 for an empty polynomial.
func (p Poly) Degree() int { return len(p.Coeff) - 1 }

// #endregion

// #region eval

// Eval evaluates p at z by Horner's rule in box arithmetic. The result
// encloses p(w) for every point w ∈ z and every choice of coefficients
// within the coefficient boxes.
func (f Field) Eval(p Poly, z Box) Box {
	if len(p.Coeff) == 0 {
		return Box{Re: f.Zero(), Im: f.Zero()}
	}
	acc := p.Coeff[len(p.Coeff)-1]
	for i := len(p.Coeff) - 2; i >= 0; i-- {
		acc = f.BoxAdd(f.BoxMul(acc, z), p.Coeff[i])
	}
	return acc
}

// #endregion
