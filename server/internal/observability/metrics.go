package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics aggregates counters for the AutoTask pipeline: how many
// instructions were processed, and per action kind how many dispatches
// succeeded, failed and how long they took.
type Metrics struct {
	mu sync.Mutex

	instructionTotal  atomic.Int64
	instructionFailed atomic.Int64

	kindMetrics map[string]*KindMetrics
}

// KindMetrics holds dispatch counters for one action kind.
type KindMetrics struct {
	dispatchCount atomic.Int64
	failureCount  atomic.Int64
	totalDuration atomic.Int64 // milliseconds
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		kindMetrics: make(map[string]*KindMetrics),
	}
}

var globalMetrics = NewMetrics()

// GlobalMetrics returns the process-wide metrics instance.
func GlobalMetrics() *Metrics {
	return globalMetrics
}

// RecordInstruction records one processed instruction.
func (m *Metrics) RecordInstruction() {
	m.instructionTotal.Add(1)
}

// RecordInstructionFailure records an instruction that short-circuited
// before dispatch.
func (m *Metrics) RecordInstructionFailure() {
	m.instructionFailed.Add(1)
}

// RecordDispatch records one action dispatch for a kind.
func (m *Metrics) RecordDispatch(kind string, duration time.Duration, failed bool) {
	km := m.getKindMetrics(kind)
	km.dispatchCount.Add(1)
	km.totalDuration.Add(duration.Milliseconds())
	if failed {
		km.failureCount.Add(1)
	}
}

func (m *Metrics) getKindMetrics(kind string) *KindMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	km, ok := m.kindMetrics[kind]
	if !ok {
		km = &KindMetrics{}
		m.kindMetrics[kind] = km
	}
	return km
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.instructionTotal.Store(0)
	m.instructionFailed.Store(0)

	m.mu.Lock()
	m.kindMetrics = make(map[string]*KindMetrics)
	m.mu.Unlock()
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() *MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	kinds := make(map[string]*KindMetricsSnapshot, len(m.kindMetrics))
	for kind, km := range m.kindMetrics {
		count := km.dispatchCount.Load()
		snapshot := &KindMetricsSnapshot{
			DispatchCount: count,
			FailureCount:  km.failureCount.Load(),
			TotalDuration: km.totalDuration.Load(),
		}
		if count > 0 {
			snapshot.AverageDuration = snapshot.TotalDuration / count
		}
		kinds[kind] = snapshot
	}

	return &MetricsSnapshot{
		InstructionTotal:  m.instructionTotal.Load(),
		InstructionFailed: m.instructionFailed.Load(),
		Kinds:             kinds,
	}
}

// MetricsSnapshot is a point-in-time view of the pipeline counters.
type MetricsSnapshot struct {
	InstructionTotal  int64                           `json:"instructionTotal"`
	InstructionFailed int64                           `json:"instructionFailed"`
	Kinds             map[string]*KindMetricsSnapshot `json:"kinds"`
}

// KindMetricsSnapshot is the per-kind view.
type KindMetricsSnapshot struct {
	DispatchCount   int64 `json:"dispatchCount"`
	FailureCount    int64 `json:"failureCount"`
	TotalDuration   int64 `json:"totalDurationMs"`
	AverageDuration int64 `json:"averageDurationMs"`
}

// SuccessRate returns the dispatch success rate as a percentage.
func (s *KindMetricsSnapshot) SuccessRate() float64 {
	if s.DispatchCount == 0 {
		return 100.0
	}
	return float64(s.DispatchCount-s.FailureCount) / float64(s.DispatchCount) * 100.0
}
