package core

import (
	"slices"
	"testing"
)

func TestSeedDeterministic(t *testing.T) {
	a := NewGrid(64, 48)
	b := NewGrid(64, 48)
	Seed(a, 7)
	Seed(b, 7)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}

	Seed(b, 8)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestSeedChannelRanges(t *testing.T) {
	g := NewGrid(100, 100)
	Seed(g, 99)
	for i, c := range g.Cells() {
		for ch, v := range c {
			if v < 0 || v > 1 {
				t.Fatalf("cell %d channel %d = %f out of range", i, ch, v)
			}
		}
		if c[Magic] > 0.5 {
			t.Fatalf("cell %d magic %f above 0.5", i, c[Magic])
		}
		if c[Organic] != 0 {
			t.Fatalf("cell %d organic %f, want 0", i, c[Organic])
		}
	}
}

func TestStorageIndexFlipsRows(t *testing.T) {
	g := NewGrid(4, 3)
	if got := g.StorageIndex(0, 0); got != 8 {
		t.Fatalf("bottom-left maps to %d, want 8", got)
	}
	if got := g.StorageIndex(3, 2); got != 3 {
		t.Fatalf("top-right maps to %d, want 3", got)
	}

	g.Set(1, 0, Cell{1, 0, 0, 0})
	if g.Cells()[2*4+1][Density] != 1 {
		t.Fatal("Set did not write the bottom storage row")
	}
}

func TestSetClampsValuesAndCoordinates(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-5, 10, Cell{2, -1, 0.5, 0.25})
	got := g.At(0, 2)
	want := Cell{1, 0, 0.5, 0.25}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(Cell{0.5, 0.5, 0.5, 0.5})
	c := g.Clone()
	g.Cells()[0][Density] = 0
	if c.Cells()[0][Density] != 0.5 {
		t.Fatal("clone shares storage with the source grid")
	}
}

func TestRawLayout(t *testing.T) {
	g := NewGrid(2, 1)
	g.Cells()[0] = Cell{0.1, 0.2, 0.3, 0.4}
	g.Cells()[1] = Cell{0.5, 0.6, 0.7, 0.8}
	raw := g.Raw()
	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	if !slices.Equal(raw, want) {
		t.Fatalf("raw %v, want %v", raw, want)
	}
}

func TestClamp01HandlesNaN(t *testing.T) {
	var zero float32
	nan := zero / zero
	if got := Clamp01(nan); got != 0 {
		t.Fatalf("Clamp01(NaN) = %f", got)
	}
}

func TestParseChannel(t *testing.T) {
	for ch := Channel(0); ch < NumChannels; ch++ {
		got, ok := ParseChannel(ch.String())
		if !ok || got != ch {
			t.Fatalf("ParseChannel(%q) = %v, %v", ch.String(), got, ok)
		}
	}
	if _, ok := ParseChannel("plasma"); ok {
		t.Fatal("unknown channel name accepted")
	}
}
