package isolate

// #region imports
import (
	"math/big"
	"sort"

	"rootbox/internal/interval"
)

// #endregion

// #region all-disjoint

// allDisjoint reports whether the boxes are pairwise disjoint. The check
// is conservative: boxes that merely touch at an edge or corner count as
// overlapping. A sweep over the real axis partitions the boxes into
// columns whose real projections may overlap; each column is swept again
// on the imaginary axis into rows, and only row members are compared
// pairwise. Typical inputs cost O(n log n); the quadratic worst case is
// confined to boxes already crowded on both axes, which well-separated
// roots never produce.
func allDisjoint(boxes []interval.Box) bool {
	if len(boxes) < 2 {
		return true
	}
	sorted := make([]interval.Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Re.Lo().Cmp(sorted[j].Re.Lo()) < 0
	})

	var column []interval.Box
	var maxHi *big.Float
	for _, b := range sorted {
		if maxHi != nil && b.Re.Lo().Cmp(maxHi) > 0 {
			if !columnDisjoint(column) {
				return false
			}
			column = column[:0]
			maxHi = nil
		}
		column = append(column, b)
		if maxHi == nil || b.Re.Hi().Cmp(maxHi) > 0 {
			maxHi = b.Re.Hi()
		}
	}
	return columnDisjoint(column)
}

// #endregion

// #region column-sweep

// columnDisjoint repeats the 1-D grouping on the imaginary axis and checks
// each resulting row pairwise.
func columnDisjoint(column []interval.Box) bool {
	sort.SliceStable(column, func(i, j int) bool {
		return column[i].Im.Lo().Cmp(column[j].Im.Lo()) < 0
	})
	var row []interval.Box
	var maxHi *big.Float
	for _, b := range column {
		if maxHi != nil && b.Im.Lo().Cmp(maxHi) > 0 {
			if !rowDisjoint(row) {
				return false
			}
			row = row[:0]
			maxHi = nil
		}
		row = append(row, b)
		if maxHi == nil || b.Im.Hi().Cmp(maxHi) > 0 {
			maxHi = b.Im.Hi()
		}
	}
	return rowDisjoint(row)
}

func rowDisjoint(row []interval.Box) bool {
	for i := 0; i < len(row); i++ {
		for j := i + 1; j < len(row); j++ {
			if row[i].Overlaps(row[j]) {
				return false
			}
		}
	}
	return true
}

// #endregion
