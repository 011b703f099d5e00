package main

// #region imports
import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"rootbox/internal/exact"
	"rootbox/internal/isolate"
	"rootbox/internal/runlog"
)

// #endregion

// #region main

func main() {
	coeffs := flag.String("coeffs", "", "polynomial coefficients in descending order, e.g. \"1,0,0,-1\" for x^3-1")
	minPrec := flag.Uint("min-prec", 0, "minimum working precision in bits")
	maxAttempts := flag.Int("max-attempts", 0, "maximum precision attempts (0 = default policy)")
	maxPrec := flag.Uint("max-prec", 0, "maximum working precision in bits (0 = unbounded)")
	skipSquarefree := flag.Bool("skip-squarefree", false, "treat the input as already squarefree")
	dbPath := flag.String("db", "", "optional run-log database path")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *coeffs == "" {
		fmt.Fprintln(os.Stderr, `usage: isolate --coeffs "1,0,0,-1" [--min-prec N] [--max-attempts N] [--max-prec N] [--skip-squarefree] [--db path] [--json]`)
		os.Exit(2)
	}

	p, err := exact.ParsePoly(*coeffs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse polynomial: %v\n", err)
		os.Exit(2)
	}

	opts := isolate.Options{
		SkipSquarefree: *skipSquarefree,
		MinPrecision:   *minPrec,
		Policy: isolate.Policy{
			MaxAttempts:  *maxAttempts,
			MaxPrecision: *maxPrec,
		},
	}

	if *dbPath != "" {
		store, err := runlog.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open run log: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Log = store
	}

	roots, err := isolate.IsolateRoots(p, opts)
	if err != nil {
		if errors.Is(err, isolate.ErrPrecisionExhausted) {
			fmt.Fprintf(os.Stderr, "precision exhausted: %v\n", err)
			os.Exit(3)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := printJSON(roots); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("p = %s\n", p)
	fmt.Printf("%d isolated root(s):\n", len(roots))
	for _, r := range roots {
		fmt.Printf("  %s  (multiplicity %d)\n", r.Box, r.Multiplicity)
	}
}

// #endregion

// #region json-output

type jsonRoot struct {
	Re           [2]string `json:"re"`
	Im           [2]string `json:"im"`
	Multiplicity int       `json:"multiplicity"`
}

func printJSON(roots []isolate.Root) error {
	out := make([]jsonRoot, len(roots))
	for i, r := range roots {
		out[i] = jsonRoot{
			Re:           [2]string{r.Box.Re.Lo().Text('g', 20), r.Box.Re.Hi().Text('g', 20)},
			Im:           [2]string{r.Box.Im.Lo().Text('g', 20), r.Box.Im.Hi().Text('g', 20)},
			Multiplicity: r.Multiplicity,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion
