package core

import (
	"testing"
	"time"
)

func TestAdvanceIdleStartsClock(t *testing.T) {
	c := NewClock(60, DefaultSeasons())
	now := time.Unix(100, 0)
	if ran := c.Advance(now, nil); ran != 0 {
		t.Fatalf("idle clock ran %d ticks", ran)
	}
	if !c.Running() {
		t.Fatal("clock should be running after the first Advance")
	}
}

func TestAdvanceExactIntervals(t *testing.T) {
	c := NewClock(60, DefaultSeasons())
	start := time.Unix(0, 0)
	c.Start(start)

	ticks := 0
	ran := c.Advance(start.Add(10*c.Interval()), func() { ticks++ })
	if ran != 10 || ticks != 10 {
		t.Fatalf("ran %d ticks (callback %d), want 10", ran, ticks)
	}
	if c.TicksIntoYear() != 10 {
		t.Fatalf("ticksIntoYear = %d, want 10", c.TicksIntoYear())
	}
}

func TestAdvanceCarriesRemainder(t *testing.T) {
	c := NewClock(60, DefaultSeasons())
	start := time.Unix(0, 0)
	c.Start(start)
	step := c.Interval()

	now := start.Add(step / 2)
	if ran := c.Advance(now, nil); ran != 0 {
		t.Fatalf("half interval ran %d ticks", ran)
	}
	now = now.Add(step / 2)
	if ran := c.Advance(now, nil); ran != 1 {
		t.Fatalf("completing the interval ran %d ticks, want 1", ran)
	}
}

func TestIrregularDeltasRollYearExactlyOnce(t *testing.T) {
	c := NewClock(60, DefaultSeasons())
	step := c.Interval()
	now := time.Unix(0, 0)
	c.Start(now)

	// Each group of three calls covers exactly three intervals with uneven
	// splits that never line up with tick boundaries.
	first := 5 * time.Millisecond
	last := 11 * time.Millisecond
	middle := 3*step - first - last
	groups := c.YearLength() / 3

	total := 0
	for i := 0; i < groups; i++ {
		for _, d := range []time.Duration{first, middle, last} {
			now = now.Add(d)
			total += c.Advance(now, nil)
		}
		if i == groups-2 && c.Year() != 0 {
			t.Fatalf("year rolled early after %d ticks", total)
		}
	}
	if total != c.YearLength() {
		t.Fatalf("ran %d ticks, want %d", total, c.YearLength())
	}
	if c.Year() != 1 || c.TicksIntoYear() != 0 {
		t.Fatalf("year=%d ticksIntoYear=%d, want 1 and 0", c.Year(), c.TicksIntoYear())
	}
}

func TestYearRollover(t *testing.T) {
	c := NewClock(60, DefaultSeasons())
	if c.YearLength() != 2_592_000 {
		t.Fatalf("default year length %d", c.YearLength())
	}
	for i := 0; i < c.YearLength(); i++ {
		c.Record()
	}
	if c.Year() != 1 || c.TicksIntoYear() != 0 {
		t.Fatalf("year=%d ticksIntoYear=%d", c.Year(), c.TicksIntoYear())
	}
}

func TestSeasons(t *testing.T) {
	c := NewClockInterval(time.Millisecond, [4]int{2, 3, 1, 4})
	want := []Season{Spring, Spring, Summer, Summer, Summer, Autumn, Winter, Winter, Winter, Winter, Spring}
	for i, s := range want {
		if got := c.Season(); got != s {
			t.Fatalf("tick %d season %v, want %v", i, got, s)
		}
		c.Record()
	}
	if c.Year() != 1 {
		t.Fatalf("year %d after 11 ticks of a 10 tick year", c.Year())
	}
}

func TestMaxCatchUpDropsBacklog(t *testing.T) {
	c := NewClockInterval(10*time.Millisecond, [4]int{100, 100, 100, 100})
	c.MaxCatchUp = 5
	start := time.Unix(0, 0)
	c.Start(start)

	now := start.Add(time.Second)
	if ran := c.Advance(now, nil); ran != 5 {
		t.Fatalf("capped advance ran %d ticks, want 5", ran)
	}
	if ran := c.Advance(now.Add(10*time.Millisecond), nil); ran != 1 {
		t.Fatalf("after dropping the backlog ran %d ticks, want 1", ran)
	}
}

func TestEmptyYearFallsBackToDefault(t *testing.T) {
	c := NewClockInterval(time.Millisecond, [4]int{})
	if c.YearLength() != 4*DefaultSeasonTicks {
		t.Fatalf("year length %d", c.YearLength())
	}
}
