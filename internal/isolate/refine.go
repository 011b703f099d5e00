package isolate

// #region imports
import (
	"math/big"

	"rootbox/internal/interval"
)

// #endregion

// #region constants

// refinementSteps bounds the interval Newton iterations per candidate.
const refinementSteps = 10

// #endregion

// #region refine-root

// refineRoot runs interval Newton–Raphson from a floating candidate and
// either certifies a box containing exactly one root of the factor or
// reports that the candidate could not be certified at this precision.
//
// The certification rests on the standard existence–uniqueness property of
// the interval Newton operator: when the Newton image of a box is
// contained in the box and the derivative excludes zero over it, the box
// holds exactly one root.
func refineRoot(fld interval.Field, ip, ipd interval.Poly, candidate interval.Box) (interval.Box, bool) {
	box := candidate
	smashedRe := false
	smashedIm := false

	for i := 0; i < refinementSteps; i++ {
		slope := fld.Eval(ipd, box)
		if slope.ContainsZero() {
			// The derivative cannot be bounded away from zero here:
			// either the candidate is far from any simple root or the
			// precision is insufficient.
			return interval.Box{}, false
		}
		center := fld.BoxCenter(box)
		val := fld.Eval(ip, center)
		next := fld.BoxSub(center, fld.BoxDiv(val, slope))

		if box.Contains(next) && !shrankTooFast(fld, next, box) {
			return next, true
		}

		if i&1 == 1 {
			box = next
		} else {
			// Taking the union on alternating steps stops the iteration
			// from flipping sign forever when a root component is exactly
			// zero.
			box = fld.BoxUnion(box, next)
			if i >= 6 {
				box = widen(fld, box)
			}
		}

		// If an axis straddles zero, test the hypothesis that the root
		// lies exactly on the axis. Floating candidates can never land
		// there on their own. At most once per axis.
		if !smashedRe && box.Re.ContainsZero() {
			box.Re = fld.Zero()
			smashedRe = true
		}
		if !smashedIm && box.Im.ContainsZero() {
			box.Im = fld.Zero()
			smashedIm = true
		}
	}
	return interval.Box{}, false
}

// #endregion

// #region helpers

// shrankTooFast reports diam(next) < diam(box)/2: the iteration is still
// converging and a tighter certified box is obtainable, so acceptance is
// deferred.
func shrankTooFast(fld interval.Field, next, box interval.Box) bool {
	half := new(big.Float).Quo(fld.BoxDiam(box), big.NewFloat(2))
	return fld.BoxDiam(next).Cmp(half) < 0
}

// widen pads both axes by the larger axis diameter, roughly tripling the
// region, for candidates that refuse to nest after several steps.
func widen(fld interval.Field, box interval.Box) interval.Box {
	md := fld.BoxDiam(box)
	pad := fld.Span(new(big.Float).Neg(md), md)
	return fld.BoxAdd(box, interval.Box{Re: pad, Im: pad})
}

// #endregion
