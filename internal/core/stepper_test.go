package core

import (
	"strings"
	"testing"
)

func TestTickSwapsAndAppliesRule(t *testing.T) {
	for _, bands := range []int{0, 1, 3, 64} {
		buf := NewDoubleBuffer(5, 7)
		buf.Current().Fill(Cell{0.5, 0.5, 0.5, 0.5})
		s := NewStepper(buf, DefaultRule)
		s.SetBands(bands)

		before := buf.Current()
		if err := s.Tick(1); err != nil {
			t.Fatalf("bands=%d: tick failed: %v", bands, err)
		}
		if buf.Current() == before {
			t.Fatalf("bands=%d: buffers were not swapped", bands)
		}
		want := DefaultRule(Cell{0.5, 0.5, 0.5, 0.5}, 1)
		for i, c := range buf.Current().Cells() {
			if c != want {
				t.Fatalf("bands=%d: cell %d = %v, want %v", bands, i, c, want)
			}
		}
		if before.Cells()[0] != (Cell{0.5, 0.5, 0.5, 0.5}) {
			t.Fatalf("bands=%d: update pass wrote into the current grid", bands)
		}
	}
}

func TestClampInvariantHoldsOverManyTicks(t *testing.T) {
	buf := NewDoubleBuffer(16, 16)
	buf.Seed(11)
	cells := buf.Current().Cells()
	cells[0] = Cell{0, 0, 0, 0}
	cells[1] = Cell{1, 1, 1, 1}

	s := NewStepper(buf, DefaultRule)
	for tick := 0; tick < 300; tick++ {
		gravity := float32(tick%7) - 3
		if err := s.Tick(gravity); err != nil {
			t.Fatal(err)
		}
		for i, c := range buf.Current().Cells() {
			for ch, v := range c {
				if v < 0 || v > 1 {
					t.Fatalf("tick %d cell %d channel %d = %f", tick, i, ch, v)
				}
			}
		}
	}
}

func TestStepperClampsCustomRule(t *testing.T) {
	buf := NewDoubleBuffer(2, 2)
	s := NewStepper(buf, func(c Cell, g float32) Cell { return Cell{5, -5, g, 2} })
	if err := s.Tick(0.5); err != nil {
		t.Fatal(err)
	}
	want := Cell{1, 0, 0.5, 1}
	if got := buf.Current().Cells()[3]; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPanickingRuleSkipsSwap(t *testing.T) {
	for _, bands := range []int{1, 4} {
		buf := NewDoubleBuffer(4, 4)
		s := NewStepper(buf, func(Cell, float32) Cell { panic("boom") })
		s.SetBands(bands)
		wasA := buf.ActiveIsA()
		err := s.Tick(0)
		if err == nil {
			t.Fatalf("bands=%d: expected an error from a panicking rule", bands)
		}
		if !strings.Contains(err.Error(), "rule panicked: boom") {
			t.Fatalf("bands=%d: error %q", bands, err)
		}
		if buf.ActiveIsA() != wasA {
			t.Fatalf("bands=%d: buffers swapped after a failed tick", bands)
		}
		if buf.Current() == buf.Scratch() {
			t.Fatalf("bands=%d: roles collapsed after a failed tick", bands)
		}
	}
}

func TestHookWritesIntoNextGrid(t *testing.T) {
	buf := NewDoubleBuffer(3, 3)
	s := NewStepper(buf, FrozenRule)
	s.SetHook(func(next *Grid) { next.Set(1, 1, Cell{1, 1, 1, 1}) })
	if err := s.Tick(0); err != nil {
		t.Fatal(err)
	}
	if got := buf.Current().At(1, 1); got != (Cell{1, 1, 1, 1}) {
		t.Fatalf("hook write not visible after swap: %v", got)
	}

	s.SetHook(func(*Grid) { panic("hook failure") })
	wasA := buf.ActiveIsA()
	if err := s.Tick(0); err == nil {
		t.Fatal("expected hook panic to surface as an error")
	}
	if buf.ActiveIsA() != wasA {
		t.Fatal("buffers swapped after a failed hook")
	}
}

func BenchmarkTick500(b *testing.B) {
	buf := NewDoubleBuffer(500, 500)
	buf.Seed(1)
	s := NewStepper(buf, DefaultRule)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Tick(0.2); err != nil {
			b.Fatal(err)
		}
	}
}
