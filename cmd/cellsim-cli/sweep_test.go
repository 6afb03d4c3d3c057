package main

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"cellsim/internal/sim"
)

func sweepConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Body = false
	cfg.Logger = log.New(io.Discard, "", 0)
	return cfg
}

func TestSweepOrdersResults(t *testing.T) {
	sets := []scenario{{seed: 2, gravity: 0.5}, {seed: 1, gravity: 0.5}, {seed: 1, gravity: -0.5}}
	all, err := sweep(context.Background(), sweepConfig(), sets, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(sets) {
		t.Fatalf("got %d results, want %d", len(all), len(sets))
	}
	want := []scenario{{seed: 1, gravity: -0.5}, {seed: 1, gravity: 0.5}, {seed: 2, gravity: 0.5}}
	for i, res := range all {
		if res.scenario != want[i] {
			t.Fatalf("result %d is %+v, want %+v", i, res.scenario, want[i])
		}
	}
}

func TestSweepFailureWaitsForWorkers(t *testing.T) {
	cfg := sweepConfig()
	cfg.Width = 0
	var sets []scenario
	for i := 0; i < 16; i++ {
		sets = append(sets, scenario{seed: uint32(i)})
	}

	done := make(chan error, 1)
	go func() {
		_, err := sweep(context.Background(), cfg, sets, 4, 1)
		done <- err
	}()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an invalid config to fail the sweep")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not return after a failure")
	}
}
