package core

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Hook runs against the freshly written scratch grid before it becomes
// current.
type Hook func(next *Grid)

// Stepper advances a DoubleBuffer by one tick: the rule is applied to every
// current cell into scratch, then the roles swap.
type Stepper struct {
	buf   *DoubleBuffer
	rule  Rule
	bands int
	hook  Hook
}

// NewStepper constructs a Stepper for buf. A nil rule selects DefaultRule.
func NewStepper(buf *DoubleBuffer, rule Rule) *Stepper {
	if rule == nil {
		rule = DefaultRule
	}
	return &Stepper{buf: buf, rule: rule, bands: runtime.GOMAXPROCS(0)}
}

// SetRule swaps the update rule applied on subsequent ticks.
func (s *Stepper) SetRule(r Rule) {
	if r != nil {
		s.rule = r
	}
}

// SetBands sets how many row bands are evaluated concurrently. Values below 1
// evaluate the whole grid on the calling goroutine.
func (s *Stepper) SetBands(n int) { s.bands = n }

// SetHook installs a pre-swap hook. Pass nil to remove it.
func (s *Stepper) SetHook(h Hook) { s.hook = h }

// Buffer returns the underlying double buffer.
func (s *Stepper) Buffer() *DoubleBuffer { return s.buf }

// Tick runs one update pass. Any panic raised by the rule or the hook is
// returned as an error and the buffers are left unswapped.
func (s *Stepper) Tick(gravity float32) error {
	cur, next := s.buf.Current(), s.buf.Scratch()
	if err := s.apply(cur, next, gravity); err != nil {
		return err
	}
	if s.hook != nil {
		if err := guard("hook", func() { s.hook(next) }); err != nil {
			return err
		}
	}
	s.buf.Swap()
	return nil
}

func (s *Stepper) apply(cur, next *Grid, gravity float32) error {
	h := cur.H
	bands := s.bands
	if bands > h {
		bands = h
	}
	if bands <= 1 {
		return guard("rule", func() { applyRows(s.rule, cur, next, 0, h, gravity) })
	}

	rows := (h + bands - 1) / bands
	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += rows {
		y0 := y0 // per-iteration copy (go 1.21 loop semantics)
		y1 := y0 + rows
		if y1 > h {
			y1 = h
		}
		g.Go(func() error {
			return guard("rule", func() { applyRows(s.rule, cur, next, y0, y1, gravity) })
		})
	}
	return g.Wait()
}

func applyRows(rule Rule, cur, next *Grid, y0, y1 int, gravity float32) {
	src := cur.data[y0*cur.W : y1*cur.W]
	dst := next.data[y0*next.W : y1*next.W]
	for i, c := range src {
		dst[i] = rule(c, gravity).Clamp()
	}
}

func guard(stage string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%s panicked: %v", stage, r)
		}
	}()
	fn()
	return nil
}
