package trace

import (
	"testing"
	"time"
)

func TestSummarize_EmptyTrace_ReturnsZeroSummary(t *testing.T) {
	// GIVEN an empty trace
	dt := NewDispatchTrace()

	// WHEN summarized
	summary := Summarize(dt)

	// THEN all counts are zero
	if summary.SeedTasks != 0 || summary.SweepTasks != 0 {
		t.Errorf("expected no tasks, got seed=%d sweep=%d", summary.SeedTasks, summary.SweepTasks)
	}
	if summary.Batches != 0 {
		t.Errorf("expected 0 batches, got %d", summary.Batches)
	}
	if summary.MaxOutstanding != 0 {
		t.Errorf("expected max outstanding 0, got %d", summary.MaxOutstanding)
	}
}

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	if summary == nil {
		t.Fatal("expected non-nil summary for nil trace")
	}
	if summary.Batches != 0 {
		t.Errorf("expected 0 batches, got %d", summary.Batches)
	}
}

func TestSummarize_CountsPhasesAndPeak(t *testing.T) {
	// GIVEN two seed workers followed by a sweep batch of three
	dt := NewDispatchTrace()
	dt.RecordDispatch(DispatchRecord{Phase: PhaseSeed, Prime: 2, Batch: 0, Outstanding: 1})
	dt.RecordDispatch(DispatchRecord{Phase: PhaseSeed, Prime: 3, Batch: 0, Outstanding: 2})
	dt.RecordBatch(BatchRecord{Batch: 0, Tasks: 2, Duration: 2 * time.Millisecond})
	dt.RecordDispatch(DispatchRecord{Phase: PhaseSweep, Prime: 5, Batch: 1, Outstanding: 1})
	dt.RecordDispatch(DispatchRecord{Phase: PhaseSweep, Prime: 7, Batch: 1, Outstanding: 2})
	dt.RecordDispatch(DispatchRecord{Phase: PhaseSweep, Prime: 11, Batch: 1, Outstanding: 3})
	dt.RecordBatch(BatchRecord{Batch: 1, Tasks: 3, Duration: time.Millisecond})

	// WHEN summarized
	summary := Summarize(dt)

	// THEN phases, batches and the peak are reported
	if summary.SeedTasks != 2 {
		t.Errorf("expected 2 seed tasks, got %d", summary.SeedTasks)
	}
	if summary.SweepTasks != 3 {
		t.Errorf("expected 3 sweep tasks, got %d", summary.SweepTasks)
	}
	if summary.Batches != 2 {
		t.Errorf("expected 2 batches, got %d", summary.Batches)
	}
	if summary.MaxOutstanding != 3 {
		t.Errorf("expected max outstanding 3, got %d", summary.MaxOutstanding)
	}
	if summary.LargestPrime != 11 {
		t.Errorf("expected largest prime 11, got %d", summary.LargestPrime)
	}
	if len(summary.BatchDurations) != 2 || summary.BatchDurations[0] != 2*time.Millisecond {
		t.Errorf("unexpected batch durations %v", summary.BatchDurations)
	}
}
