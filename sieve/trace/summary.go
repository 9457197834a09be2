package trace

import "time"

// DispatchSummary aggregates statistics from a DispatchTrace.
type DispatchSummary struct {
	SeedTasks      int
	SweepTasks     int
	Batches        int
	MaxOutstanding int
	LargestPrime   uint64 // largest base prime handed to a worker
	BatchDurations []time.Duration
}

// Summarize computes aggregate statistics from a DispatchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *DispatchTrace) *DispatchSummary {
	summary := &DispatchSummary{}
	if t == nil {
		return summary
	}

	for _, d := range t.Dispatches {
		switch d.Phase {
		case PhaseSeed:
			summary.SeedTasks++
		case PhaseSweep:
			summary.SweepTasks++
		}
		if d.Outstanding > summary.MaxOutstanding {
			summary.MaxOutstanding = d.Outstanding
		}
		if d.Prime > summary.LargestPrime {
			summary.LargestPrime = d.Prime
		}
	}

	summary.Batches = len(t.Batches)
	summary.BatchDurations = make([]time.Duration, 0, len(t.Batches))
	for _, b := range t.Batches {
		summary.BatchDurations = append(summary.BatchDurations, b.Duration)
	}
	return summary
}
