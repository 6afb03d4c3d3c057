package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"cellsim/internal/aggregate"
	"cellsim/internal/core"
	"cellsim/internal/probe"
	"cellsim/internal/sim"

	"github.com/logrusorgru/aurora"
)

type sweepOptions struct {
	seeds   int
	ticks   int
	workers int
	gravity []float64
}

type scenario struct {
	seed    uint32
	gravity float64
}

type scenarioResult struct {
	scenario
	means  [core.NumChannels]float64
	census map[probe.Material]int
	failed uint64
	err    error
}

func runSweep(ctx context.Context, au aurora.Aurora, base sim.Config, opts sweepOptions) error {
	if opts.workers <= 0 {
		opts.workers = 1
	}
	if len(opts.gravity) == 0 {
		opts.gravity = []float64{-1, -0.5, 0, 0.5, 1}
	}
	var sets []scenario
	for _, g := range opts.gravity {
		for i := 0; i < opts.seeds; i++ {
			sets = append(sets, scenario{seed: base.Seed + uint32(i), gravity: g})
		}
	}
	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks, %dx%d)\n", len(sets), opts.workers, opts.ticks, base.Width, base.Height)

	start := time.Now()
	all, err := sweep(ctx, base, sets, opts.workers, opts.ticks)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (elapsed %s)\n", au.Bold("Results"), time.Since(start).Round(time.Millisecond))
	fmt.Printf("%8s %10s %8s %8s %8s %8s  %s\n", "gravity", "seed", "density", "temp", "magic", "organic", "dominant")
	for _, res := range all {
		line := fmt.Sprintf("%8.2f %10d %8.4f %8.4f %8.4f %8.4f  %s",
			res.gravity, res.seed,
			res.means[core.Density], res.means[core.Temperature], res.means[core.Magic], res.means[core.Organic],
			dominant(res.census))
		if res.failed > 0 {
			fmt.Println(au.Red(line))
			continue
		}
		fmt.Println(line)
	}
	return nil
}

// sweep runs every scenario on a pool of workers and returns the results
// ordered by gravity then seed. The first failure cancels the remaining
// scenarios; sweep still waits for every worker to exit before returning.
func sweep(ctx context.Context, base sim.Config, sets []scenario, workers, ticks int) ([]scenarioResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(ctx, base, sc, ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range sets {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []scenarioResult
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].gravity != all[j].gravity {
			return all[i].gravity < all[j].gravity
		}
		return all[i].seed < all[j].seed
	})
	return all, nil
}

func runScenario(ctx context.Context, base sim.Config, sc scenario, ticks int) scenarioResult {
	cfg := base
	cfg.Seed = sc.seed
	cfg.Gravity = sc.gravity
	cfg.Logger = log.New(io.Discard, "", 0)

	res := scenarioResult{scenario: sc}
	engine, err := sim.New(ctx, cfg)
	if err != nil {
		res.err = err
		return res
	}
	defer engine.Close()

	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		_ = engine.Step()
	}
	cells := engine.Current().Cells()
	for ch := core.Channel(0); ch < core.NumChannels; ch++ {
		res.means[ch] = aggregate.MeanChannel(cells, ch)
	}
	res.census = make(map[probe.Material]int)
	for _, c := range cells {
		res.census[probe.Classify(c)]++
	}
	res.failed = engine.Stats().FailedTicks
	return res
}

func dominant(census map[probe.Material]int) string {
	best := probe.Unknown
	count := -1
	for _, m := range []probe.Material{probe.Organic, probe.Magic, probe.Metal, probe.Hot, probe.Unknown} {
		if census[m] > count {
			best, count = m, census[m]
		}
	}
	total := 0
	for _, n := range census {
		total += n
	}
	if total == 0 {
		return string(best)
	}
	return fmt.Sprintf("%s %.0f%%", best, 100*float64(count)/float64(total))
}
