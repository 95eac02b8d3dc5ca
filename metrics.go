package qfold

import (
	"sync"
	"time"
)

/*
Metrics accumulates counters across the runs of a device: how many
circuits were executed, how many gates and channel insertions they
applied, and how long simulation took.
*/
type Metrics struct {
	mu             sync.RWMutex
	RunCount       int64
	GateCount      int64
	ChannelCount   int64
	TotalRunTime   time.Duration
	AverageRunTime time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// recordRun folds one finished run into the counters.
func (m *Metrics) recordRun(start time.Time, gates, channels int) {
	elapsed := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCount++
	m.GateCount += int64(gates)
	m.ChannelCount += int64(channels)
	m.TotalRunTime += elapsed
	m.AverageRunTime = m.TotalRunTime / time.Duration(m.RunCount)
}

// Snapshot returns a copy safe to read while runs continue.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MetricsSnapshot{
		RunCount:       m.RunCount,
		GateCount:      m.GateCount,
		ChannelCount:   m.ChannelCount,
		TotalRunTime:   m.TotalRunTime,
		AverageRunTime: m.AverageRunTime,
	}
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	RunCount       int64
	GateCount      int64
	ChannelCount   int64
	TotalRunTime   time.Duration
	AverageRunTime time.Duration
}

// ExportMetrics renders the counters as a flat map for logging.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	s := m.Snapshot()
	return map[string]interface{}{
		"run_count":     s.RunCount,
		"gate_count":    s.GateCount,
		"channel_count": s.ChannelCount,
		"total_ms":      s.TotalRunTime.Milliseconds(),
		"avg_us":        s.AverageRunTime.Microseconds(),
	}
}
