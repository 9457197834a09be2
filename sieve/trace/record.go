// Package trace records how the parallel sieve engine dispatched its
// workers. It has no dependency on the sieve package; it stores plain data.
package trace

import "time"

// Phase identifies which elimination phase launched a worker.
type Phase string

const (
	// PhaseSeed is the initial one-seed-prime-per-worker phase.
	PhaseSeed Phase = "seed"
	// PhaseSweep is the sequential scan for further base primes.
	PhaseSweep Phase = "sweep"
)

// DispatchRecord captures a single worker launch.
type DispatchRecord struct {
	Phase       Phase
	Prime       uint64
	Batch       int
	Outstanding int // workers in flight including this one
}

// BatchRecord captures one join barrier.
type BatchRecord struct {
	Batch    int
	Tasks    int
	Duration time.Duration // first launch to barrier release
}
