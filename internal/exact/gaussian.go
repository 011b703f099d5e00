package exact

// #region imports
import (
	"math/big"
)

// #endregion

// #region gaussian-type

// Gaussian is an exact Gaussian-rational number re + im*i. Values are
// immutable; arithmetic returns new values and inputs are never modified.
type Gaussian struct {
	re, im *big.Rat
}

// NewGaussian returns the Gaussian rational re + im*i. The parts are
// copied, so the caller keeps ownership of the inputs.
func NewGaussian(re, im *big.Rat) Gaussian {
	return Gaussian{re: new(big.Rat).Set(re), im: new(big.Rat).Set(im)}
}

// FromRat returns the real Gaussian rational r.
func FromRat(r *big.Rat) Gaussian {
	return Gaussian{re: new(big.Rat).Set(r), im: new(big.Rat)}
}

// FromInt returns the Gaussian rational n.
func FromInt(n int64) Gaussian {
	return Gaussian{re: big.NewRat(n, 1), im: new(big.Rat)}
}

// Re returns the real part. Callers must treat it as read-only.
func (a Gaussian) Re() *big.Rat { return a.re }

// Im returns the imaginary part. Callers must treat it as read-only.
func (a Gaussian) Im() *big.Rat { return a.im }

// #endregion

// #region arithmetic

// Add returns a + b.
func (a Gaussian) Add(b Gaussian) Gaussian {
	return Gaussian{
		re: new(big.Rat).Add(a.re, b.re),
		im: new(big.Rat).Add(a.im, b.im),
	}
}

// Sub returns a - b.
func (a Gaussian) Sub(b Gaussian) Gaussian {
	return Gaussian{
		re: new(big.Rat).Sub(a.re, b.re),
		im: new(big.Rat).Sub(a.im, b.im),
	}
}

// Neg returns -a.
func (a Gaussian) Neg() Gaussian {
	return Gaussian{
		re: new(big.Rat).Neg(a.re),
		im: new(big.Rat).Neg(a.im),
	}
}

// Conj returns the complex conjugate of a.
func (a Gaussian) Conj() Gaussian {
	return Gaussian{
		re: new(big.Rat).Set(a.re),
		im: new(big.Rat).Neg(a.im),
	}
}

// Mul returns a * b.
func (a Gaussian) Mul(b Gaussian) Gaussian {
	ac := new(big.Rat).Mul(a.re, b.re)
	bd := new(big.Rat).Mul(a.im, b.im)
	ad := new(big.Rat).Mul(a.re, b.im)
	bc := new(big.Rat).Mul(a.im, b.re)
	return Gaussian{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// MulInt returns a * n.
func (a Gaussian) MulInt(n int64) Gaussian {
	r := big.NewRat(n, 1)
	return Gaussian{
		re: new(big.Rat).Mul(a.re, r),
		im: new(big.Rat).Mul(a.im, r),
	}
}

// Div returns a / b. Division is exact; b must be nonzero.
func (a Gaussian) Div(b Gaussian) Gaussian {
	n2 := b.normSq()
	if n2.Sign() == 0 {
		panic("exact: division by zero Gaussian rational")
	}
	num := a.Mul(b.Conj())
	return Gaussian{
		re: num.re.Quo(num.re, n2),
		im: num.im.Quo(num.im, n2),
	}
}

func (a Gaussian) normSq() *big.Rat {
	r2 := new(big.Rat).Mul(a.re, a.re)
	i2 := new(big.Rat).Mul(a.im, a.im)
	return r2.Add(r2, i2)
}

// #endregion

// #region predicates

// IsZero reports whether a == 0.
func (a Gaussian) IsZero() bool {
	return a.re.Sign() == 0 && a.im.Sign() == 0
}

// Equal reports whether a == b.
func (a Gaussian) Equal(b Gaussian) bool {
	return a.re.Cmp(b.re) == 0 && a.im.Cmp(b.im) == 0
}

// IsReal reports whether the imaginary part of a is zero.
func (a Gaussian) IsReal() bool {
	return a.im.Sign() == 0
}

// #endregion

// #region rendering

// String renders a in the coefficient syntax accepted by ParsePoly.
func (a Gaussian) String() string {
	if a.im.Sign() == 0 {
		return a.re.RatString()
	}
	im := a.im.RatString() + "i"
	if a.re.Sign() == 0 {
		return im
	}
	if a.im.Sign() > 0 {
		return a.re.RatString() + "+" + im
	}
	return a.re.RatString() + im
}

// #endregion
