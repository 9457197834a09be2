package sieve

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/primerange/primerange/sieve/trace"
)

const (
	// MinThreads and MaxThreads bound the parallel engine's worker count.
	MinThreads = 1
	MaxThreads = 16
)

// seedPrimes are handed out one per worker before the sweep starts.
var seedPrimes = [MaxThreads]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

func validateThreads(threads int) error {
	if threads < MinThreads || threads > MaxThreads {
		return fmt.Errorf("%w: thread count %d outside [%d, %d]",
			ErrInvalidConfiguration, threads, MinThreads, MaxThreads)
	}
	return nil
}

// Parallel sieves [0, n] over a FlatStore with at most threads concurrent
// workers. threads must be in [MinThreads, MaxThreads]; the check happens
// before anything is allocated.
func Parallel(n uint64, threads int) (*FlatStore, error) {
	return parallel(n, Config{Engine: KindParallel, Threads: threads})
}

func parallel(n uint64, cfg Config) (*FlatStore, error) {
	if err := validateThreads(cfg.Threads); err != nil {
		return nil, err
	}
	s, err := newFlatStore(n, cfg.MaxMemory)
	if err != nil {
		return nil, err
	}
	log := logrus.WithFields(logrus.Fields{"engine": KindParallel, "n": n, "threads": cfg.Threads})
	log.Debugf("allocated flat store (%s)", humanize.IBytes(s.SizeBytes()))

	s.Fill()
	d := &dispatcher{store: s, threads: cfg.Threads, trace: cfg.Trace}

	// Phase A: one seed prime per worker.
	for _, p := range seedPrimes[:cfg.Threads] {
		d.launch(trace.PhaseSeed, p)
	}
	d.join()

	// Phase B: every remaining candidate below the limit is a base prime.
	limit := sieveLimit(n)
	for p := seedPrimes[cfg.Threads-1] + 1; p < limit; p++ {
		if s.Test(p) {
			d.launch(trace.PhaseSweep, p)
		}
	}
	d.join()

	log.Debugf("elimination finished after %d batches", d.batch)
	return s, nil
}

// dispatcher launches elimination workers in batches of at most threads and
// waits for the whole batch before starting the next one. It is driven from
// a single goroutine.
type dispatcher struct {
	store   *FlatStore
	threads int
	trace   *trace.DispatchTrace

	group       *errgroup.Group
	outstanding int
	batch       int
	started     time.Time
}

func (d *dispatcher) launch(phase trace.Phase, p uint64) {
	if d.outstanding == d.threads {
		d.join()
	}
	if d.group == nil {
		d.group = new(errgroup.Group)
		d.started = time.Now()
	}
	d.outstanding++
	d.trace.RecordDispatch(trace.DispatchRecord{
		Phase:       phase,
		Prime:       p,
		Batch:       d.batch,
		Outstanding: d.outstanding,
	})
	s := d.store
	d.group.Go(func() error {
		s.clearMultiples(p)
		return nil
	})
}

// join is the batch barrier.
func (d *dispatcher) join() {
	if d.group == nil {
		return
	}
	// Workers only write memory and always return nil.
	_ = d.group.Wait()
	d.trace.RecordBatch(trace.BatchRecord{
		Batch:    d.batch,
		Tasks:    d.outstanding,
		Duration: time.Since(d.started),
	})
	d.group = nil
	d.outstanding = 0
	d.batch++
}
