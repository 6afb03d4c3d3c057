package sim

import (
	"time"

	"cellsim/internal/core"
)

// Stats are the readouts refreshed once per wall-clock second.
type Stats struct {
	FPS                float64
	TPS                float64
	Year               int
	Season             core.Season
	TicksIntoYear      int
	TotalTicks         uint64
	FailedTicks        uint64
	AverageTemperature float64
}

type meter struct {
	start  time.Time
	frames int
	ticks  int
	fps    float64
	tps    float64
}

// roll closes the current window once a second has elapsed.
func (m *meter) roll(now time.Time) {
	if m.start.IsZero() {
		m.start = now
		return
	}
	elapsed := now.Sub(m.start)
	if elapsed < time.Second {
		return
	}
	secs := elapsed.Seconds()
	m.fps = float64(m.frames) / secs
	m.tps = float64(m.ticks) / secs
	m.frames = 0
	m.ticks = 0
	m.start = now
}

// Stats returns the latest readouts. AverageTemperature is the most recently
// delivered aggregation result and may lag the grid.
func (e *Engine) Stats() Stats {
	return Stats{
		FPS:                e.meter.fps,
		TPS:                e.meter.tps,
		Year:               e.clock.Year(),
		Season:             e.clock.Season(),
		TicksIntoYear:      e.clock.TicksIntoYear(),
		TotalTicks:         e.clock.Total(),
		FailedTicks:        e.failed,
		AverageTemperature: e.average.Value(),
	}
}
