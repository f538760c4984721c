package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type countingPurger struct {
	mu    sync.Mutex
	calls int
	last  time.Time
	err   error
}

func (p *countingPurger) PurgeExpired(now time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.last = now
	if p.err != nil {
		return 0, p.err
	}
	return 2, nil
}

func (p *countingPurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestSweepExpiredSessions(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &countingPurger{}
	s := NewScheduler(p, time.Hour)
	s.now = func() time.Time { return fixed }

	n, err := s.SweepExpiredSessions()
	if err != nil || n != 2 {
		t.Fatalf("SweepExpiredSessions = %d, %v", n, err)
	}
	if !p.last.Equal(fixed) {
		t.Errorf("purged with %v, want %v", p.last, fixed)
	}

	p.err = errors.New("db down")
	if _, err := s.SweepExpiredSessions(); err == nil {
		t.Error("expected the store error to surface")
	}
}

func TestStartRunsOnIntervalAndStops(t *testing.T) {
	p := &countingPurger{}
	s := NewScheduler(p, 5*time.Millisecond)
	s.Start()

	deadline := time.Now().Add(2 * time.Second)
	for p.count() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()
	s.Stop()

	if p.count() < 3 {
		t.Fatalf("expected at least 3 sweeps, got %d", p.count())
	}
}

func TestDefaultInterval(t *testing.T) {
	s := NewScheduler(&countingPurger{}, 0)
	if s.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, want 24h", s.Interval)
	}
}
