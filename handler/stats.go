package handler

import (
	"sync/atomic"

	"github.com/philipp01105/svclog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level
	FailedDebug   uint64
	FailedInfo    uint64
	FailedWarning uint64
	FailedError   uint64
	// ProcessedTotal counts total processed logs
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) failedCounter(level core.Level) *uint64 {
	switch level {
	case core.DebugLevel:
		return &s.FailedDebug
	case core.InfoLevel:
		return &s.FailedInfo
	case core.WarningLevel:
		return &s.FailedWarning
	default:
		return &s.FailedError
	}
}

// Record counts a handled line as processed or failed.
func (s *Stats) Record(level core.Level, err error) {
	if err != nil {
		s.IncrementFailed(level)
		return
	}
	s.IncrementProcessed()
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	atomic.AddUint64(s.failedCounter(level), 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	return atomic.LoadUint64(s.failedCounter(level))
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetTotalFailed returns the total failed across all levels
func (s *Stats) GetTotalFailed() uint64 {
	return atomic.LoadUint64(&s.FailedDebug) +
		atomic.LoadUint64(&s.FailedInfo) +
		atomic.LoadUint64(&s.FailedWarning) +
		atomic.LoadUint64(&s.FailedError)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.FailedDebug, 0)
	atomic.StoreUint64(&s.FailedInfo, 0)
	atomic.StoreUint64(&s.FailedWarning, 0)
	atomic.StoreUint64(&s.FailedError, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	FailedTotal    map[core.Level]uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		FailedTotal: map[core.Level]uint64{
			core.DebugLevel:   s.GetFailed(core.DebugLevel),
			core.InfoLevel:    s.GetFailed(core.InfoLevel),
			core.WarningLevel: s.GetFailed(core.WarningLevel),
			core.ErrorLevel:   s.GetFailed(core.ErrorLevel),
		},
		ProcessedTotal: s.GetProcessed(),
	}
}

// StatsProvider is implemented by handlers that keep Stats.
type StatsProvider interface {
	Stats() *Stats
}
