package approx

// #region imports
import (
	"math/big"
)

// #endregion

// #region complex-type

// Complex is a point complex value with arbitrary-precision parts. It is
// the currency of the unverified solver; no rounding direction is tracked.
type Complex struct {
	Re, Im *big.Float
}

// NewComplex returns re + im*i at the given precision.
func NewComplex(re, im float64, prec uint) Complex {
	return Complex{
		Re: new(big.Float).SetPrec(prec).SetFloat64(re),
		Im: new(big.Float).SetPrec(prec).SetFloat64(im),
	}
}

// FromBig copies big.Float parts into a Complex.
func FromBig(re, im *big.Float) Complex {
	return Complex{
		Re: new(big.Float).Copy(re),
		Im: new(big.Float).Copy(im),
	}
}

// #endregion

// #region arithmetic

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{
		Re: new(big.Float).Add(z.Re, w.Re),
		Im: new(big.Float).Add(z.Im, w.Im),
	}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{
		Re: new(big.Float).Sub(z.Re, w.Re),
		Im: new(big.Float).Sub(z.Im, w.Im),
	}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{
		Re: new(big.Float).Neg(z.Re),
		Im: new(big.Float).Neg(z.Im),
	}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	ac := new(big.Float).Mul(z.Re, w.Re)
	bd := new(big.Float).Mul(z.Im, w.Im)
	ad := new(big.Float).Mul(z.Re, w.Im)
	bc := new(big.Float).Mul(z.Im, w.Re)
	return Complex{
		Re: ac.Sub(ac, bd),
		Im: ad.Add(ad, bc),
	}
}

// AbsSq returns |z|^2.
func (z Complex) AbsSq() *big.Float {
	r2 := new(big.Float).Mul(z.Re, z.Re)
	i2 := new(big.Float).Mul(z.Im, z.Im)
	return r2.Add(r2, i2)
}

// Inv returns 1/z; z must be nonzero.
func (z Complex) Inv() Complex {
	d := z.AbsSq()
	return Complex{
		Re: new(big.Float).Quo(z.Re, d),
		Im: new(big.Float).Quo(new(big.Float).Neg(z.Im), d),
	}
}

// Div returns z / w; w must be nonzero.
func (z Complex) Div(w Complex) Complex {
	d := w.AbsSq()
	num := z.Mul(Complex{Re: w.Re, Im: new(big.Float).Neg(w.Im)})
	return Complex{
		Re: num.Re.Quo(num.Re, d),
		Im: num.Im.Quo(num.Im, d),
	}
}

// IsZero reports whether z == 0.
func (z Complex) IsZero() bool {
	return z.Re.Sign() == 0 && z.Im.Sign() == 0
}

// #endregion
