// Tracks per-run sieve statistics for the final report.

package sieve

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/primerange/primerange/sieve/trace"
)

// RunMetrics aggregates what one sieve call did, for reporting.
type RunMetrics struct {
	Engine     Kind
	Threads    int // 0 for the sequential engine
	Left       uint64
	Right      uint64
	PrimeCount int
	StoreBytes uint64
	Elapsed    time.Duration // sieve only, excludes enumeration

	// Populated only when a dispatch trace was recorded.
	Batches        int
	MaxOutstanding int
	BatchMicros    []int64 // barrier durations in microseconds
}

// NewRunMetrics collects metrics for a finished run over [lo, hi].
func NewRunMetrics(cfg Config, s Store, lo, hi uint64, elapsed time.Duration) *RunMetrics {
	m := &RunMetrics{
		Engine:     cfg.Engine,
		Left:       lo,
		Right:      hi,
		PrimeCount: CountPrimes(s, int64(lo), int64(hi)),
		StoreBytes: s.SizeBytes(),
		Elapsed:    elapsed,
	}
	if m.Engine == "" {
		m.Engine = KindSequential
	}
	if m.Engine == KindParallel {
		m.Threads = cfg.Threads
	}
	if cfg.Trace != nil {
		summary := trace.Summarize(cfg.Trace)
		m.Batches = summary.Batches
		m.MaxOutstanding = summary.MaxOutstanding
		m.BatchMicros = make([]int64, 0, len(summary.BatchDurations))
		for _, d := range summary.BatchDurations {
			m.BatchMicros = append(m.BatchMicros, d.Microseconds())
		}
	}
	return m
}

// Print writes the report to w.
func (m *RunMetrics) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Sieve Metrics ===")
	_, _ = fmt.Fprintf(w, "Engine               : %s\n", m.Engine)
	if m.Engine == KindParallel {
		_, _ = fmt.Fprintf(w, "Threads              : %d\n", m.Threads)
	}
	_, _ = fmt.Fprintf(w, "Range                : [%d, %d]\n", m.Left, m.Right)
	_, _ = fmt.Fprintf(w, "Primes Found         : %d\n", m.PrimeCount)
	_, _ = fmt.Fprintf(w, "Store Size           : %s\n", humanize.IBytes(m.StoreBytes))
	_, _ = fmt.Fprintf(w, "Sieve Time           : %s\n", m.Elapsed.Round(time.Microsecond))
	if m.Batches > 0 {
		sorted := sortedMicros(m.BatchMicros)
		_, _ = fmt.Fprintf(w, "Batches              : %d\n", m.Batches)
		_, _ = fmt.Fprintf(w, "Peak Workers         : %d\n", m.MaxOutstanding)
		_, _ = fmt.Fprintf(w, "Mean Batch Time      : %.3f ms\n", CalculateMean(sorted))
		_, _ = fmt.Fprintf(w, "P99 Batch Time       : %.3f ms\n", CalculatePercentile(sorted, 99))
	}
}
