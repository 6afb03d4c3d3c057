package aggregate

import "cellsim/internal/core"

// Message is the closed set of values exchanged with a Worker.
type Message interface {
	message()
}

// ComputeMeanRequest asks the worker to average one channel of Snapshot. The
// worker takes ownership of Snapshot; the sender must not touch it again.
type ComputeMeanRequest struct {
	Seq      uint64
	Snapshot *core.Grid
	Channel  core.Channel
}

// MeanResult carries the mean computed for the request with the same Seq.
// Err is set when the computation failed and Value is then meaningless.
type MeanResult struct {
	Seq     uint64
	Channel core.Channel
	Value   float64
	Err     error
}

func (ComputeMeanRequest) message() {}
func (MeanResult) message()         {}
