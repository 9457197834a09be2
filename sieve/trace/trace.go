package trace

// TraceLevel controls whether dispatch decisions are recorded.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDispatch records every worker launch and batch barrier.
	TraceLevelDispatch TraceLevel = "dispatch"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelDispatch: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// DispatchTrace collects records during one parallel sieve run.
// All methods are no-ops on a nil trace. Not safe for concurrent use: the
// engine records from its dispatching goroutine only.
type DispatchTrace struct {
	Dispatches []DispatchRecord
	Batches    []BatchRecord
}

// NewDispatchTrace creates a DispatchTrace ready for recording.
func NewDispatchTrace() *DispatchTrace {
	return &DispatchTrace{
		Dispatches: make([]DispatchRecord, 0),
		Batches:    make([]BatchRecord, 0),
	}
}

// RecordDispatch appends a worker launch.
func (t *DispatchTrace) RecordDispatch(record DispatchRecord) {
	if t == nil {
		return
	}
	t.Dispatches = append(t.Dispatches, record)
}

// RecordBatch appends a barrier release.
func (t *DispatchTrace) RecordBatch(record BatchRecord) {
	if t == nil {
		return
	}
	t.Batches = append(t.Batches, record)
}
