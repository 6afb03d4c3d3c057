package aggregate

import (
	"math"
	"sync/atomic"
)

// Latest holds the most recent successful result. Results older than the one
// already accepted are ignored. The zero value holds 0 with nothing accepted.
type Latest struct {
	bits atomic.Uint64
	seq  atomic.Uint64
}

// Accept stores res when it succeeded and is newer than the held value.
func (l *Latest) Accept(res MeanResult) bool {
	if res.Err != nil || res.Seq <= l.seq.Load() {
		return false
	}
	l.bits.Store(math.Float64bits(res.Value))
	l.seq.Store(res.Seq)
	return true
}

// Value returns the held mean.
func (l *Latest) Value() float64 { return math.Float64frombits(l.bits.Load()) }

// Seq returns the sequence number of the held mean, 0 when none.
func (l *Latest) Seq() uint64 { return l.seq.Load() }

// Reset forgets the held value.
func (l *Latest) Reset() {
	l.bits.Store(0)
	l.seq.Store(0)
}
