package sim

import (
	"context"
	"log"
	"time"

	"cellsim/internal/actor"
	"cellsim/internal/aggregate"
	"cellsim/internal/core"
	"cellsim/internal/export"
	"cellsim/internal/probe"

	"github.com/pkg/errors"
)

// Input is everything the engine samples from its collaborators per Advance.
type Input struct {
	Intent  actor.Intent
	Gravity float32
	Probe   ProbeRequest
}

// ProbeRequest asks for a point query at simulation coordinates when Active.
type ProbeRequest struct {
	X, Y   int
	Active bool
}

// ProbeResult is the answer to the most recent active probe.
type ProbeResult struct {
	X, Y     int
	Cell     core.Cell
	Material probe.Material
}

// Engine owns the grid state and drives it from wall-clock time. It is not
// safe for concurrent use; the only other goroutines it talks to are the
// stepper's row bands and the aggregation worker.
type Engine struct {
	cfg Config
	log *log.Logger

	buf     *core.DoubleBuffer
	stepper *core.Stepper
	clock   *core.Clock
	body    *actor.Body
	intent  actor.Intent
	gravity float32

	worker   *aggregate.Worker
	average  aggregate.Latest
	lastAgg  time.Time
	lastSeen uint64

	meter     meter
	failed    uint64
	lastProbe *ProbeResult
}

// New validates cfg, allocates and seeds the grid and starts the aggregation
// worker. The returned engine is idle until the first Advance.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "sim: invalid config")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	buf := core.NewDoubleBuffer(cfg.Width, cfg.Height)
	stepper := core.NewStepper(buf, core.Rules()[cfg.Rule])
	if cfg.Bands > 0 {
		stepper.SetBands(cfg.Bands)
	}
	clock := core.NewClock(cfg.TPS, cfg.seasons())
	clock.MaxCatchUp = cfg.MaxCatchUp

	e := &Engine{
		cfg:     cfg,
		log:     logger,
		buf:     buf,
		stepper: stepper,
		clock:   clock,
		worker:  aggregate.NewWorker(ctx),
	}
	e.SetGravity(float32(cfg.Gravity))
	if cfg.Body {
		e.body = actor.NewBody(buf.Size())
		stepper.SetHook(e.body.Stamp)
	}
	e.Reset(cfg.Seed)
	return e, nil
}

// Close stops the aggregation worker.
func (e *Engine) Close() { e.worker.Close() }

// Reset reseeds the grid and returns the clock, body and readouts to their
// initial state.
func (e *Engine) Reset(seed uint32) {
	e.cfg.Seed = seed
	e.buf.Seed(seed)
	e.clock.Reset()
	if e.body != nil {
		*e.body = *actor.NewBody(e.buf.Size())
	}
	e.average.Reset()
	e.lastSeen = e.worker.Issued()
	e.lastAgg = time.Time{}
	e.meter = meter{}
	e.failed = 0
	e.lastProbe = nil
}

// Advance runs every tick due at now, services the probe request, collects
// aggregation results and refreshes the per-second readouts. It returns the
// number of ticks run.
func (e *Engine) Advance(now time.Time, in Input) int {
	e.intent = in.Intent
	e.SetGravity(in.Gravity)

	ran := e.clock.Advance(now, e.tick)
	e.meter.ticks += ran

	if in.Probe.Active {
		e.runProbe(in.Probe.X, in.Probe.Y)
	}
	e.collect()
	if e.lastAgg.IsZero() || now.Sub(e.lastAgg) >= e.cfg.AggregateEvery {
		e.dispatch()
		e.lastAgg = now
	}
	e.meter.roll(now)
	return ran
}

// Hold re-anchors the clock at now so time spent paused is not caught up
// later.
func (e *Engine) Hold(now time.Time) {
	if e.clock.Running() {
		e.clock.Start(now)
	}
}

// Frame records one displayed frame for the FPS readout.
func (e *Engine) Frame(now time.Time) {
	e.meter.frames++
	e.meter.roll(now)
}

// Step runs a single tick outside wall-clock scheduling and records it on the
// clock. It is used by headless drivers and tools.
func (e *Engine) Step() error {
	err := e.tickErr()
	e.clock.Record()
	return err
}

func (e *Engine) tick() {
	if err := e.tickErr(); err != nil {
		e.log.Printf("sim: tick %d skipped: %v", e.clock.Total()+1, err)
	}
}

func (e *Engine) tickErr() error {
	if e.body != nil {
		e.body.Update(e.intent)
	}
	if err := e.stepper.Tick(e.gravity); err != nil {
		e.failed++
		return err
	}
	return nil
}

func (e *Engine) runProbe(x, y int) {
	x, y = e.Current().ClampPoint(x, y)
	cell, mat := probe.At(e.Current(), x, y)
	e.lastProbe = &ProbeResult{X: x, Y: y, Cell: cell, Material: mat}
}

// dispatch hands a private copy of the current grid to the worker.
func (e *Engine) dispatch() {
	if _, ok := e.worker.Submit(e.Current().Clone(), e.cfg.AggregateChannel); !ok {
		e.log.Printf("sim: aggregation still busy, skipping this round")
	}
}

// collect drains the newest aggregation result, keeping the previous value on
// failure.
func (e *Engine) collect() {
	res, ok := e.worker.Poll()
	if !ok || res.Seq <= e.lastSeen {
		return
	}
	e.lastSeen = res.Seq
	if res.Err != nil {
		e.log.Printf("sim: aggregation %d failed: %v", res.Seq, res.Err)
		return
	}
	e.average.Accept(res)
}

// Current returns the readable grid. It must not be retained across Advance.
func (e *Engine) Current() *core.Grid { return e.buf.Current() }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.buf.Size() }

// Probe performs a synchronous point query at simulation coordinates.
func (e *Engine) Probe(x, y int) (core.Cell, probe.Material) {
	return probe.At(e.Current(), x, y)
}

// LastProbe returns the result of the most recent active probe request.
func (e *Engine) LastProbe() (ProbeResult, bool) {
	if e.lastProbe == nil {
		return ProbeResult{}, false
	}
	return *e.lastProbe, true
}

// Dump copies the full current grid for export.
func (e *Engine) Dump() export.Dump { return export.Snapshot(e.Current()) }

// Body returns the foreign body, or nil when disabled.
func (e *Engine) Body() *actor.Body { return e.body }

// Clock exposes the simulation clock for readouts.
func (e *Engine) Clock() *core.Clock { return e.clock }

// Gravity returns the control value applied on the next tick.
func (e *Engine) Gravity() float32 { return e.gravity }

// SetGravity clamps g into the configured range and applies it from the next
// tick.
func (e *Engine) SetGravity(g float32) {
	e.gravity = float32(e.gravityControl().Clamp(float64(g)))
}

// Seed returns the seed of the current run.
func (e *Engine) Seed() uint32 { return e.cfg.Seed }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }
