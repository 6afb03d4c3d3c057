package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"cellsim/internal/sim"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	noColor := false

	runCfg := sim.DefaultConfig()
	runOpts := runOptions{duration: 10 * time.Second, fps: 60}
	runCmd := flaggy.NewSubcommand("run")
	runCmd.Description = "advance the simulation in real time and print per-second readouts"
	runCfg.Bind(runCmd)
	runCmd.Duration(&runOpts.duration, "d", "duration", "how long to run (0 = until interrupted)")
	runCmd.Int(&runOpts.fps, "f", "fps", "host loop frequency driving Advance")

	sweepCfg := sim.DefaultConfig()
	sweepCfg.Width, sweepCfg.Height = 128, 128
	sweepCfg.Body = false
	sweepOpts := sweepOptions{
		seeds:   4,
		ticks:   600,
		workers: runtime.NumCPU(),
	}
	sweepCmd := flaggy.NewSubcommand("sweep")
	sweepCmd.Description = "run seeds x gravity values headless and compare channel means"
	sweepCfg.Bind(sweepCmd)
	sweepCmd.Int(&sweepOpts.seeds, "n", "seeds", "number of consecutive seeds per gravity value")
	sweepCmd.Int(&sweepOpts.ticks, "k", "ticks", "ticks to simulate per scenario")
	sweepCmd.Int(&sweepOpts.workers, "w", "workers", "number of worker goroutines")
	sweepCmd.Float64Slice(&sweepOpts.gravity, "", "gravity-values", "gravity value to sweep, repeatable (default -1,-0.5,0,0.5,1)")

	dumpCfg := sim.DefaultConfig()
	dumpOpts := dumpOptions{ticks: 60, out: "cellsim-dump"}
	dumpCmd := flaggy.NewSubcommand("dump")
	dumpCmd.Description = "simulate a number of ticks and export the grid"
	dumpCfg.Bind(dumpCmd)
	dumpCmd.Int(&dumpOpts.ticks, "k", "ticks", "ticks to simulate before dumping")
	dumpCmd.String(&dumpOpts.out, "o", "out", "output path prefix for .csim and .png files")

	flaggy.SetName("cellsim-cli")
	flaggy.SetDescription("headless driver for the cellsim engine")
	flaggy.Bool(&noColor, "", "no-color", "disable coloured output")
	flaggy.AttachSubcommand(runCmd, 1)
	flaggy.AttachSubcommand(sweepCmd, 1)
	flaggy.AttachSubcommand(dumpCmd, 1)
	flaggy.Parse()

	au := aurora.NewAurora(!noColor)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case runCmd.Used:
		err = runRealtime(ctx, au, runCfg, runOpts)
	case sweepCmd.Used:
		err = runSweep(ctx, au, sweepCfg, sweepOpts)
	case dumpCmd.Used:
		err = runDump(ctx, au, dumpCfg, dumpOpts)
	default:
		flaggy.ShowHelpAndExit("a subcommand is required")
	}
	if err != nil {
		log.Fatalf("cellsim-cli: %v", err)
	}
}
