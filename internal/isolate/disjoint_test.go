package isolate

import (
	"math/big"
	"testing"

	"rootbox/internal/interval"
)

func box(f interval.Field, relo, rehi, imlo, imhi float64) interval.Box {
	return interval.Box{
		Re: f.Span(big.NewFloat(relo), big.NewFloat(rehi)),
		Im: f.Span(big.NewFloat(imlo), big.NewFloat(imhi)),
	}
}

func TestAllDisjoint(t *testing.T) {
	f := interval.NewField(53)

	a := box(f, 0, 3, 0, 0)
	b := box(f, 0, 0, 1, 3)
	c := box(f, 1, 2, 1, 2)
	d := box(f, 2, 3, 2, 3)
	d2 := box(f, 2, 3, 2.001, 3)

	cases := []struct {
		name  string
		boxes []interval.Box
		want  bool
	}{
		{"empty", nil, true},
		{"single", []interval.Box{c}, true},
		{"corner touch fails", []interval.Box{a, b, c, d}, false},
		{"nudged apart passes", []interval.Box{a, b, c, d2}, true},
		{"identical boxes fail", []interval.Box{c, c}, false},
		{"edge touch fails", []interval.Box{box(f, 0, 1, 0, 1), box(f, 1, 2, 0, 1)}, false},
		{"same column stacked", []interval.Box{box(f, 0, 1, 0, 1), box(f, 0, 1, 2, 3)}, true},
		{"same row side by side", []interval.Box{box(f, 0, 1, 0, 1), box(f, 2, 3, 0, 1)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := allDisjoint(tc.boxes); got != tc.want {
				t.Errorf("allDisjoint = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAllDisjoint_DoesNotReorderInput(t *testing.T) {
	f := interval.NewField(53)
	boxes := []interval.Box{
		box(f, 2, 3, 0, 1),
		box(f, 0, 1, 0, 1),
	}
	first := boxes[0].Re.Lo()
	allDisjoint(boxes)
	if boxes[0].Re.Lo().Cmp(first) != 0 {
		t.Error("input slice was reordered")
	}
}
