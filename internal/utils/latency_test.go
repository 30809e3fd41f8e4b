package utils

import (
	"testing"
	"time"
)

func TestLatencyTrackerPercentile(t *testing.T) {
	tracker := NewLatencyTracker(10)
	for _, d := range []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
		50 * time.Millisecond,
	} {
		tracker.Observe(d)
	}

	if tracker.Count() != 5 {
		t.Fatalf("expected 5 samples, got %d", tracker.Count())
	}
	if p95 := tracker.Percentile(95); p95 < 40*time.Millisecond {
		t.Fatalf("expected p95 >= 40ms, got %v", p95)
	}
	if p0 := tracker.Percentile(0); p0 != 10*time.Millisecond {
		t.Fatalf("expected fastest sample at p0, got %v", p0)
	}
	if p100 := tracker.Percentile(100); p100 != 50*time.Millisecond {
		t.Fatalf("expected slowest sample at p100, got %v", p100)
	}
}

func TestLatencyTrackerEmpty(t *testing.T) {
	if got := NewLatencyTracker(4).Percentile(95); got != 0 {
		t.Fatalf("expected zero on empty tracker, got %v", got)
	}
}

func TestLatencyTrackerBounded(t *testing.T) {
	tracker := NewLatencyTracker(3)
	for i := 0; i < 10; i++ {
		tracker.Observe(time.Duration(i) * time.Millisecond)
	}
	if tracker.Count() != 3 {
		t.Fatalf("expected 3 retained samples, got %d", tracker.Count())
	}
}

func TestWithin(t *testing.T) {
	start := time.Date(2024, 11, 4, 22, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)

	if !Within(start, start, end) || !Within(end, start, end) {
		t.Fatalf("bounds must be inclusive")
	}
	if !Within(start.Add(time.Hour), start, end) {
		t.Fatalf("instant inside the window must match")
	}
	if Within(start.Add(-time.Second), start, end) || Within(end.Add(time.Second), start, end) {
		t.Fatalf("instants outside the window must not match")
	}
}

func TestParseRFC3339(t *testing.T) {
	got, err := ParseRFC3339("2024-11-04T22:00:00Z")
	if err != nil {
		t.Fatalf("ParseRFC3339: %v", err)
	}
	if !got.Equal(time.Date(2024, 11, 4, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", got)
	}
	if _, err := ParseRFC3339(""); err == nil {
		t.Fatalf("expected error for empty value")
	}
	if _, err := ParseRFC3339("yesterday"); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
