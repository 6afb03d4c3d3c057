package main

import (
	"context"
	"fmt"
	"time"

	"cellsim/internal/sim"

	"github.com/logrusorgru/aurora"
)

type runOptions struct {
	duration time.Duration
	fps      int
}

// runRealtime drives Advance from a ticker the way a display loop would and
// prints the readouts once per second.
func runRealtime(ctx context.Context, au aurora.Aurora, cfg sim.Config, opts runOptions) error {
	if opts.fps <= 0 {
		opts.fps = 60
	}
	engine, err := sim.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	fmt.Printf("%s %dx%d rule=%s seed=%d\n", au.Bold(au.Cyan("cellsim")), cfg.Width, cfg.Height, cfg.Rule, cfg.Seed)

	frame := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer frame.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	in := sim.Input{Gravity: float32(cfg.Gravity)}
	for {
		select {
		case <-ctx.Done():
			printStats(au, engine.Stats())
			return nil
		case now := <-frame.C:
			engine.Advance(now, in)
			engine.Frame(now)
		case <-report.C:
			printStats(au, engine.Stats())
		}
	}
}

func printStats(au aurora.Aurora, s sim.Stats) {
	tps := au.Green(fmt.Sprintf("%5.1f", s.TPS))
	if s.TPS < 55 {
		tps = au.Yellow(fmt.Sprintf("%5.1f", s.TPS))
	}
	line := fmt.Sprintf("year %s %-6s tick %-9d fps %5.1f tps %s avg temperature %s",
		au.Bold(s.Year), s.Season, s.TicksIntoYear, s.FPS, tps, au.Magenta(fmt.Sprintf("%.4f", s.AverageTemperature)))
	if s.FailedTicks > 0 {
		line += " " + au.Red(fmt.Sprintf("failed=%d", s.FailedTicks)).String()
	}
	fmt.Println(line)
}
