package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"rootbox/internal/runlog"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the run-log database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := runlog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion

// #region list-mode

func runListMode(store *runlog.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		return printJSON(runs)
	}

	fmt.Printf("%-12s  %-9s  %8s  %10s  %-20s  %s\n",
		"Run", "Status", "Attempts", "Precision", "Time", "Polynomial")
	fmt.Printf("%-12s+-%-9s+-%8s+-%10s+-%-20s+-%s\n",
		"------------", "---------", "--------", "----------", "--------------------", "----------")
	for _, r := range runs {
		fmt.Printf("%-12s  %-9s  %8d  %10d  %-20s  %s\n",
			shortID(r.RunID), r.Status, r.Attempts, r.FinalPrecision,
			r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.Polynomial)
	}
	return nil
}

// #endregion

// #region detail-mode

type detailOutput struct {
	Run      runlog.Run          `json:"run"`
	Attempts []runlog.Attempt    `json:"attempts"`
	Roots    []runlog.RootRecord `json:"roots,omitempty"`
}

func runDetailMode(store *runlog.Store, runID string, jsonOut bool) error {
	run, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	attempts, err := store.Attempts(runID)
	if err != nil {
		return err
	}
	roots, err := store.Roots(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(detailOutput{Run: run, Attempts: attempts, Roots: roots})
	}

	fmt.Printf("Run:        %s\n", run.RunID)
	fmt.Printf("Polynomial: %s\n", run.Polynomial)
	fmt.Printf("Status:     %s\n", run.Status)
	fmt.Printf("Attempts:   %d\n", run.Attempts)
	fmt.Printf("Precision:  %d bits\n", run.FinalPrecision)
	fmt.Printf("Created:    %s\n", run.CreatedAt.Format("2006-01-02T15:04:05Z"))

	fmt.Printf("\nAttempts:\n")
	for _, a := range attempts {
		fmt.Printf("  #%d  %6d bits  %s\n", a.Attempt, a.Precision, a.Outcome)
	}

	if len(roots) > 0 {
		fmt.Printf("\nCertified roots:\n")
		for _, r := range roots {
			fmt.Printf("  %s  (multiplicity %d)\n", r.Box, r.Multiplicity)
		}
	}
	return nil
}

// #endregion

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion
