package exact

// #region imports
import (
	"fmt"
	"strings"

	"rootbox/internal/interval"
)

// #endregion

// #region poly-type

// Poly is an exact polynomial with Gaussian-rational coefficients in
// ascending degree order. The zero polynomial has no coefficients. Polys
// are immutable; all operations return new values.
type Poly struct {
	c []Gaussian
}

// NewPoly builds a polynomial from ascending coefficients, trimming any
// trailing zero coefficients.
func NewPoly(coeff ...Gaussian) *Poly {
	n := len(coeff)
	for n > 0 && coeff[n-1].IsZero() {
		n--
	}
	c := make([]Gaussian, n)
	copy(c, coeff[:n])
	return &Poly{c: c}
}

// FromInts builds a polynomial from integer coefficients in descending
// degree order, e.g. FromInts(1, 0, 0, -1) is x^3 - 1.
func FromInts(desc ...int64) *Poly {
	c := make([]Gaussian, len(desc))
	for i, v := range desc {
		c[len(desc)-1-i] = FromInt(v)
	}
	return NewPoly(c...)
}

// Degree returns the degree of p; the zero polynomial has degree -1.
func (p *Poly) Degree() int { return len(p.c) - 1 }

// Coeff returns the coefficient of x^i, which is zero outside the stored
// range.
func (p *Poly) Coeff(i int) Gaussian {
	if i < 0 || i >= len(p.c) {
		return FromInt(0)
	}
	return p.c[i]
}

// Lead returns the leading coefficient of p; p must be nonzero.
func (p *Poly) Lead() Gaussian { return p.c[len(p.c)-1] }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.c) == 0 }

// #endregion

// #region structure

// Derivative returns the formal derivative of p.
func (p *Poly) Derivative() *Poly {
	if len(p.c) <= 1 {
		return &Poly{}
	}
	c := make([]Gaussian, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		c[i-1] = p.c[i].MulInt(int64(i))
	}
	return NewPoly(c...)
}

// Monic returns p scaled so its leading coefficient is 1.
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		return &Poly{}
	}
	lead := p.Lead()
	if lead.Equal(FromInt(1)) {
		return p
	}
	c := make([]Gaussian, len(p.c))
	for i, v := range p.c {
		c[i] = v.Div(lead)
	}
	return NewPoly(c...)
}

// #endregion

// #region arithmetic

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	c := make([]Gaussian, n)
	for i := range c {
		c[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return NewPoly(c...)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	c := make([]Gaussian, n)
	for i := range c {
		c[i] = p.Coeff(i).Sub(q.Coeff(i))
	}
	return NewPoly(c...)
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return &Poly{}
	}
	c := make([]Gaussian, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = FromInt(0)
	}
	for i, a := range p.c {
		if a.IsZero() {
			continue
		}
		for j, b := range q.c {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return NewPoly(c...)
}

// Eval evaluates p at z by Horner's rule.
func (p *Poly) Eval(z Gaussian) Gaussian {
	acc := FromInt(0)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(p.c[i])
	}
	return acc
}

// quoRem performs exact polynomial long division of p by q.
func quoRem(p, q *Poly) (quo, rem *Poly) {
	if q.IsZero() {
		panic("exact: division by zero polynomial")
	}
	if p.Degree() < q.Degree() {
		return &Poly{}, p
	}
	r := make([]Gaussian, len(p.c))
	copy(r, p.c)
	qc := make([]Gaussian, p.Degree()-q.Degree()+1)
	for i := range qc {
		qc[i] = FromInt(0)
	}
	lead := q.Lead()
	for d := len(r) - 1; d >= q.Degree(); d-- {
		if r[d].IsZero() {
			continue
		}
		t := r[d].Div(lead)
		qc[d-q.Degree()] = t
		for j := 0; j < len(q.c); j++ {
			r[d-q.Degree()+j] = r[d-q.Degree()+j].Sub(t.Mul(q.c[j]))
		}
	}
	return NewPoly(qc...), NewPoly(r...)
}

// div returns p / q; the division must be exact.
func div(p, q *Poly) *Poly {
	quo, rem := quoRem(p, q)
	if !rem.IsZero() {
		panic("exact: inexact polynomial division")
	}
	return quo
}

// GCD returns the monic greatest common divisor of p and q.
func GCD(p, q *Poly) *Poly {
	a, b := p, q
	for !b.IsZero() {
		_, rem := quoRem(a, b)
		// Renormalizing each remainder keeps coefficient growth in check.
		a, b = b, rem.Monic()
	}
	return a.Monic()
}

// #endregion

// #region squarefree

// Factor is one squarefree factor of a polynomial with its multiplicity.
type Factor struct {
	Poly         *Poly
	Multiplicity int
}

// SquarefreeDecomposition splits p into monic squarefree factors with
// multiplicities using Yun's algorithm. Degree-zero content is dropped
// since it carries no roots. The roots of p are exactly the roots of the
// returned factors, each with the stated multiplicity.
func (p *Poly) SquarefreeDecomposition() []Factor {
	f := p.Monic()
	if f.Degree() < 1 {
		return nil
	}
	fd := f.Derivative()
	g := GCD(f, fd)
	if g.Degree() == 0 {
		return []Factor{{Poly: f, Multiplicity: 1}}
	}
	b := div(f, g)
	c := div(fd, g)
	var out []Factor
	for i := 1; b.Degree() > 0; i++ {
		d := c.Sub(b.Derivative())
		a := GCD(b, d)
		b = div(b, a)
		c = div(d, a)
		if a.Degree() > 0 {
			out = append(out, Factor{Poly: a.Monic(), Multiplicity: i})
		}
	}
	return out
}

// #endregion

// #region promotion

// Promote converts p into interval-polynomial form at the precision of
// fld. Each coefficient becomes a box, zero-width when the rational parts
// are exactly representable.
func (p *Poly) Promote(fld interval.Field) interval.Poly {
	coeff := make([]interval.Box, len(p.c))
	for i, a := range p.c {
		coeff[i] = interval.Box{
			Re: fld.FromRat(a.re),
			Im: fld.FromRat(a.im),
		}
	}
	return interval.Poly{Coeff: coeff}
}

// #endregion

// #region rendering

// String renders p in conventional descending order, e.g. "x^3 - 1".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.c) - 1; i >= 0; i-- {
		a := p.c[i]
		if a.IsZero() {
			continue
		}
		term := termString(a, i)
		if sb.Len() == 0 {
			sb.WriteString(term)
			continue
		}
		if strings.HasPrefix(term, "-") {
			sb.WriteString(" - ")
			sb.WriteString(term[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(term)
		}
	}
	return sb.String()
}

func termString(a Gaussian, deg int) string {
	coeff := a.String()
	if deg == 0 {
		return coeff
	}
	x := "x"
	if deg > 1 {
		x = fmt.Sprintf("x^%d", deg)
	}
	switch coeff {
	case "1":
		return x
	case "-1":
		return "-" + x
	}
	if !a.IsReal() && a.re.Sign() != 0 {
		coeff = "(" + coeff + ")"
	}
	return coeff + "*" + x
}

// #endregion
