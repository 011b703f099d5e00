package interval

// #region imports
import (
	"fmt"
	"math/big"
)

// #endregion

// #region field

// Field performs real-interval arithmetic at a fixed working precision.
// Every operation rounds outward, so a result interval always encloses the
// exact mathematical value. Fields are cheap values; one is constructed per
// isolation attempt and never reused across precisions.
type Field struct {
	prec uint
}

// NewField returns a Field computing at prec bits of significand.
func NewField(prec uint) Field { return Field{prec: prec} }

// Prec returns the working precision in bits.
func (f Field) Prec() uint { return f.prec }

func (f Field) down() *big.Float {
	return new(big.Float).SetPrec(f.prec).SetMode(big.ToNegativeInf)
}

func (f Field) up() *big.Float {
	return new(big.Float).SetPrec(f.prec).SetMode(big.ToPositiveInf)
}

func (f Field) near() *big.Float {
	return new(big.Float).SetPrec(f.prec)
}

// #endregion

// #region interval-type

// Interval is an immutable closed real interval [lo, hi]. All operations
// return new intervals; the bounds of an existing interval are never
// modified.
type Interval struct {
	lo, hi *big.Float
}

// Lo returns the lower bound. Callers must treat it as read-only.
func (a Interval) Lo() *big.Float { return a.lo }

// Hi returns the upper bound. Callers must treat it as read-only.
func (a Interval) Hi() *big.Float { return a.hi }

// #endregion

// #region constructors

// Point returns the interval [x, x], rounded outward when x is not
// representable at the field precision.
func (f Field) Point(x *big.Float) Interval {
	return Interval{lo: f.down().Set(x), hi: f.up().Set(x)}
}

// FromFloat64 returns the tightest interval containing x.
func (f Field) FromFloat64(x float64) Interval {
	return Interval{lo: f.down().SetFloat64(x), hi: f.up().SetFloat64(x)}
}

// FromRat returns the tightest interval at the field precision containing
// the exact rational x. The result has zero width when x is representable.
func (f Field) FromRat(x *big.Rat) Interval {
	return Interval{lo: f.down().SetRat(x), hi: f.up().SetRat(x)}
}

// Span returns [lo, hi] with both bounds rounded outward.
func (f Field) Span(lo, hi *big.Float) Interval {
	return Interval{lo: f.down().Set(lo), hi: f.up().Set(hi)}
}

// Zero returns the exact point interval [0, 0].
func (f Field) Zero() Interval {
	return Interval{lo: f.near(), hi: f.near()}
}

// #endregion

// #region arithmetic

// Add returns the outward-rounded sum a + b.
func (f Field) Add(a, b Interval) Interval {
	return Interval{
		lo: f.down().Add(a.lo, b.lo),
		hi: f.up().Add(a.hi, b.hi),
	}
}

// Sub returns the outward-rounded difference a - b.
func (f Field) Sub(a, b Interval) Interval {
	return Interval{
		lo: f.down().Sub(a.lo, b.hi),
		hi: f.up().Sub(a.hi, b.lo),
	}
}

// Neg returns -a. Negation is exact at any precision.
func (f Field) Neg(a Interval) Interval {
	return Interval{
		lo: f.near().Neg(a.hi),
		hi: f.near().Neg(a.lo),
	}
}

// Mul returns the outward-rounded product a * b.
func (f Field) Mul(a, b Interval) Interval {
	pairs := [4][2]*big.Float{
		{a.lo, b.lo}, {a.lo, b.hi}, {a.hi, b.lo}, {a.hi, b.hi},
	}
	var lo, hi *big.Float
	for _, p := range pairs {
		d := f.down().Mul(p[0], p[1])
		u := f.up().Mul(p[0], p[1])
		if lo == nil || d.Cmp(lo) < 0 {
			lo = d
		}
		if hi == nil || u.Cmp(hi) > 0 {
			hi = u
		}
	}
	return Interval{lo: lo, hi: hi}
}

// Sq returns the outward-rounded square of a. Unlike Mul(a, a) it accounts
// for the dependency between the operands: an interval straddling zero
// squares to an interval whose lower bound is exactly zero.
func (f Field) Sq(a Interval) Interval {
	u1 := f.up().Mul(a.lo, a.lo)
	u2 := f.up().Mul(a.hi, a.hi)
	hi := u1
	if u2.Cmp(u1) > 0 {
		hi = u2
	}
	if a.ContainsZero() {
		return Interval{lo: f.near(), hi: hi}
	}
	d1 := f.down().Mul(a.lo, a.lo)
	d2 := f.down().Mul(a.hi, a.hi)
	lo := d1
	if d2.Cmp(d1) < 0 {
		lo = d2
	}
	return Interval{lo: lo, hi: hi}
}

// Div returns the outward-rounded quotient a / b. The divisor must not
// contain zero.
func (f Field) Div(a, b Interval) Interval {
	pairs := [4][2]*big.Float{
		{a.lo, b.lo}, {a.lo, b.hi}, {a.hi, b.lo}, {a.hi, b.hi},
	}
	var lo, hi *big.Float
	for _, p := range pairs {
		d := f.down().Quo(p[0], p[1])
		u := f.up().Quo(p[0], p[1])
		if lo == nil || d.Cmp(lo) < 0 {
			lo = d
		}
		if hi == nil || u.Cmp(hi) > 0 {
			hi = u
		}
	}
	return Interval{lo: lo, hi: hi}
}

// Union returns the interval hull of a and b.
func (f Field) Union(a, b Interval) Interval {
	lo := a.lo
	if b.lo.Cmp(lo) < 0 {
		lo = b.lo
	}
	hi := a.hi
	if b.hi.Cmp(hi) > 0 {
		hi = b.hi
	}
	return Interval{lo: lo, hi: hi}
}

// Diam returns an upper bound on the width hi - lo.
func (f Field) Diam(a Interval) *big.Float {
	return f.up().Sub(a.hi, a.lo)
}

// Center returns a representable point near the middle of a.
func (f Field) Center(a Interval) *big.Float {
	mid := f.near().Add(a.lo, a.hi)
	return mid.Quo(mid, two)
}

var two = big.NewFloat(2)

// #endregion

// #region predicates

// Contains reports whether b lies entirely inside a.
func (a Interval) Contains(b Interval) bool {
	return a.lo.Cmp(b.lo) <= 0 && b.hi.Cmp(a.hi) <= 0
}

// Overlaps reports whether a and b share at least one point. Closed
// intervals that merely touch at an endpoint overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.lo.Cmp(b.hi) <= 0 && b.lo.Cmp(a.hi) <= 0
}

// ContainsZero reports whether 0 ∈ a.
func (a Interval) ContainsZero() bool {
	return a.lo.Sign() <= 0 && a.hi.Sign() >= 0
}

// IsPoint reports whether a has zero width.
func (a Interval) IsPoint() bool {
	return a.lo.Cmp(a.hi) == 0
}

// #endregion

// #region rendering

// String renders the interval for logs and disjointness diagnostics.
func (a Interval) String() string {
	if a.IsPoint() {
		return a.lo.Text('g', 12)
	}
	return fmt.Sprintf("[%s, %s]", a.lo.Text('g', 12), a.hi.Text('g', 12))
}

// #endregion
