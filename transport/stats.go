package transport

import "sync/atomic"

// Stats tracks transport delivery statistics
type Stats struct {
	delivered atomic.Uint64
	failed    atomic.Uint64
	fallbacks atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered atomically increments the delivered counter
func (s *Stats) IncrementDelivered() {
	s.delivered.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementFallback atomically increments the fallback counter
func (s *Stats) IncrementFallback() {
	s.fallbacks.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.delivered.Store(0)
	s.failed.Store(0)
	s.fallbacks.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	// Delivered counts records handed to the destination successfully
	Delivered uint64
	// Failed counts records lost to errors or panics
	Failed uint64
	// Fallbacks counts console writes that needed the plain-text fallback
	Fallbacks uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Delivered: s.delivered.Load(),
		Failed:    s.failed.Load(),
		Fallbacks: s.fallbacks.Load(),
	}
}

// StatsProvider is implemented by transports that expose their Stats
type StatsProvider interface {
	Stats() Snapshot
}
