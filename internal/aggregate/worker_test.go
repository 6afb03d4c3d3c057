package aggregate

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"cellsim/internal/core"
)

func waitResult(t *testing.T, w *Worker) MeanResult {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := w.Poll(); ok {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("worker did not deliver a result")
	return MeanResult{}
}

func TestMeanChannelConstant(t *testing.T) {
	g := core.NewGrid(50, 40)
	g.Fill(core.Cell{0, 0.37, 0, 0})
	got := MeanChannel(g.Cells(), core.Temperature)
	if math.Abs(got-0.37) > 1e-6 {
		t.Fatalf("mean %f, want 0.37", got)
	}
}

func TestMeanChannelAlternating(t *testing.T) {
	g := core.NewGrid(10, 10)
	for i := range g.Cells() {
		g.Cells()[i][core.Temperature] = float32(i % 2)
	}
	if got := MeanChannel(g.Cells(), core.Temperature); got != 0.5 {
		t.Fatalf("mean %f, want 0.5", got)
	}
}

func TestMeanChannelClampsAndHandlesEmpty(t *testing.T) {
	cells := []core.Cell{{0, 3}, {0, -1}}
	if got := MeanChannel(cells, core.Temperature); got != 0.5 {
		t.Fatalf("mean %f, want 0.5", got)
	}
	if got := MeanChannel(nil, core.Temperature); got != 0 {
		t.Fatalf("empty mean %f", got)
	}
}

func TestWorkerUsesSnapshotNotLiveGrid(t *testing.T) {
	w := NewWorker(context.Background())
	defer w.Close()

	live := core.NewGrid(20, 20)
	live.Fill(core.Cell{0, 0.25, 0, 0})
	seq, ok := w.Submit(live.Clone(), core.Temperature)
	if !ok {
		t.Fatal("submit rejected on an idle worker")
	}
	live.Fill(core.Cell{0, 1, 0, 0})

	res := waitResult(t, w)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Seq != seq || res.Channel != core.Temperature {
		t.Fatalf("result %+v does not match request %d", res, seq)
	}
	if math.Abs(res.Value-0.25) > 1e-6 {
		t.Fatalf("mean %f, want snapshot value 0.25", res.Value)
	}
}

func TestWorkerReportsFailures(t *testing.T) {
	w := NewWorker(context.Background())
	defer w.Close()
	w.compute = func([]core.Cell, core.Channel) float64 { panic("bad snapshot") }

	if _, ok := w.Submit(core.NewGrid(2, 2), core.Temperature); !ok {
		t.Fatal("submit rejected")
	}
	if res := waitResult(t, w); res.Err == nil || !strings.Contains(res.Err.Error(), "bad snapshot") {
		t.Fatalf("expected panic to be reported as an error, got %v", res.Err)
	}

	if _, ok := w.Submit(nil, core.Temperature); !ok {
		t.Fatal("submit rejected")
	}
	if res := waitResult(t, w); res.Err == nil {
		t.Fatal("expected nil snapshot to be reported as an error")
	}
}

func TestIssuedTracksSubmissions(t *testing.T) {
	w := NewWorker(context.Background())
	defer w.Close()
	if w.Issued() != 0 {
		t.Fatalf("fresh worker issued %d", w.Issued())
	}
	seq, _ := w.Submit(core.NewGrid(1, 1), core.Density)
	if w.Issued() != seq {
		t.Fatalf("issued %d, last submit %d", w.Issued(), seq)
	}
	if res := waitResult(t, w); res.Seq != w.Issued() {
		t.Fatalf("result seq %d, issued %d", res.Seq, w.Issued())
	}
}

func TestLatestKeepsNewestSuccess(t *testing.T) {
	var l Latest
	if !l.Accept(MeanResult{Seq: 2, Value: 0.4}) {
		t.Fatal("first result rejected")
	}
	if l.Accept(MeanResult{Seq: 1, Value: 0.9}) {
		t.Fatal("stale result accepted")
	}
	if l.Accept(MeanResult{Seq: 3, Err: context.Canceled}) {
		t.Fatal("failed result accepted")
	}
	if l.Value() != 0.4 || l.Seq() != 2 {
		t.Fatalf("held %f seq %d", l.Value(), l.Seq())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w := NewWorker(context.Background())
	w.Close()
	w.Close()
}
