package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cellsim/internal/export"
	"cellsim/internal/sim"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type dumpOptions struct {
	ticks int
	out   string
}

func runDump(ctx context.Context, au aurora.Aurora, cfg sim.Config, opts dumpOptions) error {
	engine, err := sim.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	for i := 0; i < opts.ticks; i++ {
		if err := engine.Step(); err != nil {
			fmt.Println(au.Yellow(fmt.Sprintf("tick %d skipped: %v", i+1, err)))
		}
	}

	d := engine.Dump()
	raw := opts.out + ".csim"
	if err := writeFile(raw, d.Write); err != nil {
		return err
	}
	img := opts.out + ".png"
	if err := writeFile(img, func(w io.Writer) error { return export.WritePNG(w, engine.Current()) }); err != nil {
		return err
	}

	f, err := os.Open(raw)
	if err != nil {
		return errors.Wrap(err, "reopen dump")
	}
	defer f.Close()
	back, err := export.Read(f)
	if err != nil {
		return err
	}
	st, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "stat dump")
	}
	rawBytes := len(d.Data) * 4
	fmt.Printf("%s %s (%d bytes, %.1fx smaller than raw floats) and %s\n",
		au.Green("wrote"), raw, st.Size(), float64(rawBytes)/float64(st.Size()), img)
	fmt.Printf("verified %dx%d grid after %d ticks\n", back.W, back.H, engine.Stats().TotalTicks)
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
