package sieve

import (
	"fmt"
	"strings"

	"github.com/primerange/primerange/sieve/trace"
)

// Kind selects a sieve engine.
type Kind string

const (
	// KindSequential runs the single-goroutine packed-bit engine.
	KindSequential Kind = "sequential"
	// KindParallel runs the batched worker engine over a byte store.
	KindParallel Kind = "parallel"
)

// validKinds maps accepted engine names. Empty means sequential.
var validKinds = map[Kind]bool{
	KindSequential: true,
	KindParallel:   true,
	"":             true,
}

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !validKinds[k] {
		return "", fmt.Errorf("%w: unknown engine %q (want %q or %q)",
			ErrInvalidConfiguration, s, KindSequential, KindParallel)
	}
	if k == "" {
		k = KindSequential
	}
	return k, nil
}

// Config selects and tunes an engine for Run.
type Config struct {
	Engine    Kind
	Threads   int    // parallel only, 1..16
	MaxMemory uint64 // store size ceiling in bytes; 0 = physical memory
	Trace     *trace.DispatchTrace
}

// Validate reports configuration errors without allocating anything.
func (c Config) Validate() error {
	if !validKinds[c.Engine] {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidConfiguration, c.Engine)
	}
	if c.Engine == KindParallel {
		return validateThreads(c.Threads)
	}
	return nil
}

// Run sieves [0, n] with the engine named by cfg.
func Run(n uint64, cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Engine == KindParallel {
		s, err := parallel(n, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := sequential(n, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}
