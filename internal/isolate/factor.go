package isolate

// #region imports
import (
	"errors"
	"math/big"

	"golang.org/x/sync/errgroup"

	"rootbox/internal/approx"
	"rootbox/internal/exact"
	"rootbox/internal/interval"
)

// #endregion

// #region errors

// errUnrefined is the soft failure: a candidate could not be certified at
// the current precision. It never escapes this package; the orchestrator
// reacts by escalating precision.
var errUnrefined = errors.New("candidate could not be certified")

// #endregion

// #region factor-roots

// factorRoots obtains unverified candidate roots for one squarefree factor
// and certifies every one of them. If any candidate fails the whole factor
// fails: a partial result would silently under-report the factor's root
// count. Candidates refine independently, so they run concurrently, each
// writing its own result slot.
func factorRoots(factor, deriv *exact.Poly, prec uint) ([]interval.Box, bool) {
	fld := interval.NewField(prec)

	cands := approx.Roots(renderCoeffs(factor, prec), prec)
	if len(cands) != factor.Degree() {
		return nil, false
	}

	ip := factor.Promote(fld)
	ipd := deriv.Promote(fld)

	boxes := make([]interval.Box, len(cands))
	var g errgroup.Group
	for i, cand := range cands {
		i, cand := i, cand
		g.Go(func() error {
			start := fld.BoxPoint(cand.Re, cand.Im)
			b, ok := refineRoot(fld, ip, ipd, start)
			if !ok {
				return errUnrefined
			}
			boxes[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false
	}
	return boxes, true
}

// #endregion

// #region rendering

// renderCoeffs rounds the exact coefficients to point complex values for
// the unverified solver.
func renderCoeffs(p *exact.Poly, prec uint) []approx.Complex {
	coeff := make([]approx.Complex, p.Degree()+1)
	for i := range coeff {
		a := p.Coeff(i)
		coeff[i] = approx.Complex{
			Re: new(big.Float).SetPrec(prec).SetRat(a.Re()),
			Im: new(big.Float).SetPrec(prec).SetRat(a.Im()),
		}
	}
	return coeff
}

// #endregion
