package utils

import (
	"sort"
	"sync"
	"time"
)

// LatencyTracker keeps a bounded ring of recent duration samples and answers
// percentile queries over them. Safe for concurrent use.
type LatencyTracker struct {
	mu       sync.RWMutex
	ring     []time.Duration
	next     int
	filled   bool
	capacity int
}

// NewLatencyTracker returns a tracker bounded to capacity samples; once full,
// new observations overwrite the oldest.
func NewLatencyTracker(capacity int) *LatencyTracker {
	if capacity <= 0 {
		capacity = 512
	}
	return &LatencyTracker{ring: make([]time.Duration, 0, capacity), capacity: capacity}
}

// Observe records one duration sample.
func (l *LatencyTracker) Observe(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.ring) < l.capacity {
		l.ring = append(l.ring, d)
		return
	}
	l.filled = true
	l.ring[l.next] = d
	l.next = (l.next + 1) % l.capacity
}

// Percentile returns the p-th percentile (0-100) of the retained samples,
// or zero when nothing has been observed yet.
func (l *LatencyTracker) Percentile(p float64) time.Duration {
	l.mu.RLock()
	sorted := append([]time.Duration(nil), l.ring...)
	l.mu.RUnlock()

	if len(sorted) == 0 {
		return 0
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int((p / 100.0) * float64(len(sorted)-1))
	return sorted[idx]
}

// Count reports how many samples are currently retained.
func (l *LatencyTracker) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ring)
}
