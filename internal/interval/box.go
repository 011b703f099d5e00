package interval

// #region imports
import (
	"fmt"
	"math/big"
)

// #endregion

// #region box-type

// Box is an immutable rectangle in the complex plane: a real interval and
// an imaginary interval with independent bounds.
type Box struct {
	Re, Im Interval
}

// #endregion

// #region constructors

// BoxPoint returns the zero-width box at the point re + im*i.
func (f Field) BoxPoint(re, im *big.Float) Box {
	return Box{Re: f.Point(re), Im: f.Point(im)}
}

// #endregion

// #region arithmetic

// BoxAdd returns a + b.
func (f Field) BoxAdd(a, b Box) Box {
	return Box{Re: f.Add(a.Re, b.Re), Im: f.Add(a.Im, b.Im)}
}

// BoxSub returns a - b.
func (f Field) BoxSub(a, b Box) Box {
	return Box{Re: f.Sub(a.Re, b.Re), Im: f.Sub(a.Im, b.Im)}
}

// BoxMul returns an enclosure of a * b.
func (f Field) BoxMul(a, b Box) Box {
	return Box{
		Re: f.Sub(f.Mul(a.Re, b.Re), f.Mul(a.Im, b.Im)),
		Im: f.Add(f.Mul(a.Re, b.Im), f.Mul(a.Im, b.Re)),
	}
}

// BoxDiv returns an enclosure of a / b, computed as a * conj(b) / |b|^2.
// The divisor must not contain zero; at least one component of b then
// excludes zero, so |b|^2 is bounded away from zero.
func (f Field) BoxDiv(a, b Box) Box {
	den := f.Add(f.Sq(b.Re), f.Sq(b.Im))
	num := f.BoxMul(a, Box{Re: b.Re, Im: f.Neg(b.Im)})
	return Box{Re: f.Div(num.Re, den), Im: f.Div(num.Im, den)}
}

// BoxUnion returns the rectangular hull of a and b.
func (f Field) BoxUnion(a, b Box) Box {
	return Box{Re: f.Union(a.Re, b.Re), Im: f.Union(a.Im, b.Im)}
}

// BoxDiam returns the larger of the two axis diameters.
func (f Field) BoxDiam(a Box) *big.Float {
	rd := f.Diam(a.Re)
	id := f.Diam(a.Im)
	if id.Cmp(rd) > 0 {
		return id
	}
	return rd
}

// BoxCenter returns the zero-width box at the midpoint of a.
func (f Field) BoxCenter(a Box) Box {
	return f.BoxPoint(f.Center(a.Re), f.Center(a.Im))
}

// #endregion

// #region predicates

// Contains reports whether b lies entirely inside a.
func (a Box) Contains(b Box) bool {
	return a.Re.Contains(b.Re) && a.Im.Contains(b.Im)
}

// Overlaps reports whether a and b share at least one point. Boxes that
// merely touch at an edge or corner overlap.
func (a Box) Overlaps(b Box) bool {
	return a.Re.Overlaps(b.Re) && a.Im.Overlaps(b.Im)
}

// ContainsZero reports whether 0 ∈ a.
func (a Box) ContainsZero() bool {
	return a.Re.ContainsZero() && a.Im.ContainsZero()
}

// #endregion

// #region rendering

// String renders the box for logs and CLI output.
func (a Box) String() string {
	return fmt.Sprintf("%s + %s*i", a.Re, a.Im)
}

// #endregion
