package aggregate

import (
	"context"
	"sync"
	"sync/atomic"

	"cellsim/internal/core"

	"github.com/pkg/errors"
)

// Worker computes channel means on its own goroutine. It never shares memory
// with the caller beyond the snapshots handed to Submit.
type Worker struct {
	inbox  chan Message
	outbox chan Message
	seq    atomic.Uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	// compute is swapped in tests to inject failures.
	compute func([]core.Cell, core.Channel) float64
}

// NewWorker starts a worker that runs until ctx is cancelled or Close is
// called.
func NewWorker(ctx context.Context) *Worker {
	ctx, cancel := context.WithCancel(ctx)
	w := &Worker{
		inbox:   make(chan Message, 1),
		outbox:  make(chan Message, 1),
		cancel:  cancel,
		compute: MeanChannel,
	}
	w.wg.Add(1)
	go w.loop(ctx)
	return w
}

// Submit queues a mean computation over snapshot without blocking. It reports
// false when a previous request is still waiting to be picked up; the caller
// simply tries again on its next trigger.
func (w *Worker) Submit(snapshot *core.Grid, ch core.Channel) (uint64, bool) {
	seq := w.seq.Add(1)
	req := ComputeMeanRequest{Seq: seq, Snapshot: snapshot, Channel: ch}
	select {
	case w.inbox <- req:
		return seq, true
	default:
		return seq, false
	}
}

// Issued returns the sequence number of the most recent Submit. Results at or
// below it were requested before the call.
func (w *Worker) Issued() uint64 { return w.seq.Load() }

// Poll returns the newest delivered result, if any, without blocking.
func (w *Worker) Poll() (MeanResult, bool) {
	select {
	case msg := <-w.outbox:
		res, ok := msg.(MeanResult)
		return res, ok
	default:
		return MeanResult{}, false
	}
}

// Close stops the worker and waits for its goroutine to exit.
func (w *Worker) Close() {
	w.once.Do(func() {
		w.cancel()
		w.wg.Wait()
	})
}

func (w *Worker) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.inbox:
			req, ok := msg.(ComputeMeanRequest)
			if !ok {
				continue
			}
			w.deliver(w.handle(req))
		}
	}
}

func (w *Worker) handle(req ComputeMeanRequest) (res MeanResult) {
	res = MeanResult{Seq: req.Seq, Channel: req.Channel}
	defer func() {
		if r := recover(); r != nil {
			res.Err = errors.Errorf("mean of %s: %v", req.Channel, r)
		}
	}()
	if req.Snapshot == nil {
		res.Err = errors.Errorf("mean of %s: nil snapshot", req.Channel)
		return res
	}
	if req.Channel < 0 || int(req.Channel) >= core.NumChannels {
		res.Err = errors.Errorf("mean: channel %d out of range", req.Channel)
		return res
	}
	res.Value = w.compute(req.Snapshot.Cells(), req.Channel)
	return res
}

// deliver replaces any unread result so the outbox always holds the newest.
func (w *Worker) deliver(res MeanResult) {
	for {
		select {
		case w.outbox <- res:
			return
		default:
		}
		select {
		case <-w.outbox:
		default:
		}
	}
}
