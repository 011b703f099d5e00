package isolate

// #region imports
import (
	"errors"
	"fmt"
	"log"

	"rootbox/internal/exact"
	"rootbox/internal/interval"
	"rootbox/internal/runlog"
)

// #endregion

// #region constants

// defaultPrecision is the significand width in bits for the first attempt.
const defaultPrecision = 53

// Attempt outcomes, also recorded in the run log.
const (
	outcomeOK        = "ok"
	outcomeUnrefined = "unrefined"
	outcomeOverlap   = "overlap"
)

// #endregion

// #region public-types

// ErrPrecisionExhausted is returned when the escalation policy runs out of
// attempts or precision before every root was certified. It is the only
// failure surfaced to callers; everything else is retried internally.
var ErrPrecisionExhausted = errors.New("working precision exhausted before all roots were certified")

// Root is one certified isolating box: the box provably contains exactly
// one root of the input polynomial, with the stated multiplicity taken
// from the squarefree decomposition.
type Root struct {
	Box          interval.Box
	Multiplicity int
}

// Policy bounds the precision-escalation loop. The zero value selects
// DefaultPolicy; a negative MaxAttempts removes the attempt bound.
type Policy struct {
	MaxAttempts  int
	MaxPrecision uint
}

// DefaultPolicy allows 32 doublings starting from 53 bits — far beyond any
// reasonable input — while still turning a non-terminating input (such as
// a repeated root with SkipSquarefree set) into an explicit error instead
// of a silent infinite loop.
var DefaultPolicy = Policy{MaxAttempts: 32}

// Options configures one isolation request.
type Options struct {
	// SkipSquarefree treats the input as already squarefree with
	// multiplicity 1 everywhere. If the input does have a repeated root,
	// no finite precision suffices and the run ends in
	// ErrPrecisionExhausted.
	SkipSquarefree bool

	// MinPrecision floors the working precision of the first attempt.
	// Larger floors yield tighter boxes, nested inside those of a
	// lower-precision run.
	MinPrecision uint

	Policy Policy

	// Log, when non-nil, records the run, its attempts, and the certified
	// roots for later inspection.
	Log *runlog.Store
}

// #endregion

// #region isolate-roots

// IsolateRoots isolates the complex roots of p: it returns pairwise
// disjoint boxes, each certified to contain exactly one root, tagged with
// that root's multiplicity. Any failure inside an attempt (a candidate
// that cannot be certified, or certified boxes that are not disjoint)
// discards the whole attempt and retries from scratch at doubled
// precision, because boxes produced at different precisions are not
// comparable.
func IsolateRoots(p *exact.Poly, opts Options) ([]Root, error) {
	if p == nil || p.IsZero() {
		return nil, fmt.Errorf("isolate: zero polynomial")
	}

	policy := opts.Policy
	if policy.MaxAttempts == 0 && policy.MaxPrecision == 0 {
		policy = DefaultPolicy
	}

	var factors []exact.Factor
	if opts.SkipSquarefree {
		factors = []exact.Factor{{Poly: p.Monic(), Multiplicity: 1}}
	} else {
		factors = p.SquarefreeDecomposition()
	}

	// Degree-zero factors carry no roots. Derivatives are taken once,
	// exactly; promotion to interval form happens per attempt.
	type workFactor struct {
		poly, deriv *exact.Poly
		mult        int
	}
	var work []workFactor
	for _, fc := range factors {
		if fc.Poly.Degree() < 1 {
			continue
		}
		work = append(work, workFactor{
			poly:  fc.Poly,
			deriv: fc.Poly.Derivative(),
			mult:  fc.Multiplicity,
		})
	}
	if len(work) == 0 {
		return nil, nil
	}

	runID := beginRun(opts.Log, p)

	prec := uint(defaultPrecision)
	if opts.MinPrecision > prec {
		prec = opts.MinPrecision
	}

	for attempt := 1; ; attempt++ {
		if (policy.MaxAttempts > 0 && attempt > policy.MaxAttempts) ||
			(policy.MaxPrecision > 0 && prec > policy.MaxPrecision) {
			finishRun(opts.Log, runID, "exhausted", attempt-1, prec)
			return nil, fmt.Errorf("isolate: gave up after %d attempts (next precision %d bits): %w",
				attempt-1, prec, ErrPrecisionExhausted)
		}

		var roots []Root
		outcome := outcomeOK
		for _, wf := range work {
			boxes, ok := factorRoots(wf.poly, wf.deriv, prec)
			if !ok {
				outcome = outcomeUnrefined
				break
			}
			for _, b := range boxes {
				roots = append(roots, Root{Box: b, Multiplicity: wf.mult})
			}
		}

		// The disjointness check is the barrier: it runs only once every
		// refinement of this attempt has completed.
		if outcome == outcomeOK {
			boxes := make([]interval.Box, len(roots))
			for i, r := range roots {
				boxes[i] = r.Box
			}
			if !allDisjoint(boxes) {
				outcome = outcomeOverlap
			}
		}

		log.Printf("[ISO] attempt %d at %d bits: %s", attempt, prec, outcome)
		recordAttempt(opts.Log, runID, attempt, prec, outcome)

		if outcome == outcomeOK {
			recordRoots(opts.Log, runID, roots)
			finishRun(opts.Log, runID, "ok", attempt, prec)
			return roots, nil
		}
		prec *= 2
	}
}

// #endregion

// #region run-log

// The run log is best effort: a failing store never fails an isolation.

func beginRun(s *runlog.Store, p *exact.Poly) string {
	if s == nil {
		return ""
	}
	id, err := s.BeginRun(p.String())
	if err != nil {
		log.Printf("[ISO] run log unavailable: %v", err)
		return ""
	}
	return id
}

func recordAttempt(s *runlog.Store, runID string, attempt int, prec uint, outcome string) {
	if s == nil || runID == "" {
		return
	}
	if err := s.RecordAttempt(runID, attempt, prec, outcome); err != nil {
		log.Printf("[ISO] record attempt: %v", err)
	}
}

func recordRoots(s *runlog.Store, runID string, roots []Root) {
	if s == nil || runID == "" {
		return
	}
	for _, r := range roots {
		if err := s.RecordRoot(runID, r.Box.String(), r.Multiplicity); err != nil {
			log.Printf("[ISO] record root: %v", err)
		}
	}
}

func finishRun(s *runlog.Store, runID, status string, attempts int, prec uint) {
	if s == nil || runID == "" {
		return
	}
	if err := s.FinishRun(runID, status, attempts, prec); err != nil {
		log.Printf("[ISO] finish run: %v", err)
	}
}

// #endregion
