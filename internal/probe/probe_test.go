package probe

import (
	"testing"

	"cellsim/internal/core"
)

func TestClassifyCascade(t *testing.T) {
	cases := []struct {
		cell core.Cell
		want Material
	}{
		{core.Cell{0.8, 0.6, 0, 0}, Metal},
		{core.Cell{0, 0, 0, 0.6}, Organic},
		{core.Cell{0.1, 0.1, 0.1, 0.1}, Unknown},
		{core.Cell{0.9, 0.9, 0.9, 0.9}, Organic},
		{core.Cell{0.9, 0.9, 0.4, 0}, Magic},
		{core.Cell{0.2, 0.51, 0.3, 0.5}, Hot},
		{core.Cell{0.7, 0.5, 0.3, 0.5}, Unknown},
	}
	for _, tc := range cases {
		if got := Classify(tc.cell); got != tc.want {
			t.Fatalf("Classify(%v) = %s, want %s", tc.cell, got, tc.want)
		}
	}
}

func TestAtUsesSimulationCoordinates(t *testing.T) {
	g := core.NewGrid(3, 3)
	// Bottom-left in simulation space is the first cell of the last storage row.
	g.Cells()[g.Index(0, 2)] = core.Cell{0, 0, 0, 1}
	c, m := At(g, 0, 0)
	if m != Organic || c[core.Organic] != 1 {
		t.Fatalf("got %v %s", c, m)
	}
}

func TestAtClampsOutOfRange(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Cells()[g.Index(3, 0)] = core.Cell{0.9, 0, 0, 0}
	if _, m := At(g, 100, 100); m != Metal {
		t.Fatalf("top-right clamp classified as %s", m)
	}
	if _, m := At(g, -10, -10); m != Unknown {
		t.Fatalf("bottom-left clamp classified as %s", m)
	}
}
