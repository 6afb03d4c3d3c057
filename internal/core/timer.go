package core

import "time"

// Season identifies a quarter of the simulated year.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

var seasonNames = [...]string{"Spring", "Summer", "Autumn", "Winter"}

func (s Season) String() string {
	if s < 0 || int(s) >= len(seasonNames) {
		return "Unknown"
	}
	return seasonNames[s]
}

// DefaultSeasonTicks is one season at 60 ticks per second, three hours.
const DefaultSeasonTicks = 648_000

// DefaultSeasons returns four equal seasons of DefaultSeasonTicks each.
func DefaultSeasons() [4]int {
	return [4]int{DefaultSeasonTicks, DefaultSeasonTicks, DefaultSeasonTicks, DefaultSeasonTicks}
}

// Clock converts wall-clock time into whole simulation ticks at a fixed
// interval and tracks a cyclic year counter. Fractional time between tick
// boundaries carries over from one Advance to the next.
type Clock struct {
	interval time.Duration
	seasons  [4]int
	yearLen  int

	running       bool
	lastTick      time.Time
	ticksIntoYear int
	year          int
	total         uint64

	// MaxCatchUp bounds the ticks run by a single Advance. Zero means
	// unbounded. When the cap is hit the remaining backlog is dropped.
	MaxCatchUp int
}

// NewClock constructs an idle Clock targeting the given TPS.
func NewClock(tps int, seasons [4]int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return NewClockInterval(time.Second/time.Duration(tps), seasons)
}

// NewClockInterval constructs an idle Clock with an explicit tick interval.
// Non-positive intervals fall back to 60 TPS and an empty year falls back to
// DefaultSeasons.
func NewClockInterval(interval time.Duration, seasons [4]int) *Clock {
	if interval <= 0 {
		interval = time.Second / 60
	}
	c := &Clock{interval: interval}
	c.setSeasons(seasons)
	return c
}

func (c *Clock) setSeasons(seasons [4]int) {
	total := 0
	for i, s := range seasons {
		if s < 0 {
			seasons[i] = 0
			s = 0
		}
		total += s
	}
	if total == 0 {
		seasons = DefaultSeasons()
		total = 4 * DefaultSeasonTicks
	}
	c.seasons = seasons
	c.yearLen = total
}

// Interval returns the fixed tick duration.
func (c *Clock) Interval() time.Duration { return c.interval }

// YearLength returns the number of ticks per year.
func (c *Clock) YearLength() int { return c.yearLen }

// Running reports whether Start has been called.
func (c *Clock) Running() bool { return c.running }

// Start moves the clock from idle to running with now as the first tick
// boundary.
func (c *Clock) Start(now time.Time) {
	c.running = true
	c.lastTick = now
}

// Reset returns the clock to idle and clears all counters.
func (c *Clock) Reset() {
	c.running = false
	c.lastTick = time.Time{}
	c.ticksIntoYear = 0
	c.year = 0
	c.total = 0
}

// Advance runs tick once for every whole interval elapsed since the last tick
// boundary and returns how many ticks ran. An idle clock is started at now and
// runs nothing.
func (c *Clock) Advance(now time.Time, tick func()) int {
	if !c.running {
		c.Start(now)
		return 0
	}
	ran := 0
	for now.Sub(c.lastTick) >= c.interval {
		if c.MaxCatchUp > 0 && ran >= c.MaxCatchUp {
			c.lastTick = now
			break
		}
		if tick != nil {
			tick()
		}
		c.lastTick = c.lastTick.Add(c.interval)
		c.Record()
		ran++
	}
	return ran
}

// Record accounts for one tick without consulting wall time. Advance calls it
// for every tick it runs; headless drivers call it directly.
func (c *Clock) Record() {
	c.total++
	c.ticksIntoYear++
	if c.ticksIntoYear >= c.yearLen {
		c.ticksIntoYear -= c.yearLen
		c.year++
	}
}

// Year returns the number of completed years.
func (c *Clock) Year() int { return c.year }

// TicksIntoYear returns the position within the current year.
func (c *Clock) TicksIntoYear() int { return c.ticksIntoYear }

// Total returns every tick recorded since the last Reset.
func (c *Clock) Total() uint64 { return c.total }

// Season reports the season containing the current tick.
func (c *Clock) Season() Season {
	acc := 0
	for i, s := range c.seasons {
		acc += s
		if c.ticksIntoYear < acc {
			return Season(i)
		}
	}
	return Winter
}
