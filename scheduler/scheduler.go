package scheduler

import (
	"sync"
	"time"

	"fortio.org/log"
)

// Purger removes expired entries and reports how many were removed.
type Purger interface {
	PurgeExpired(now time.Time) (int64, error)
}

// Scheduler sweeps expired sessions out of the key value store on a fixed interval.
type Scheduler struct {
	Store    Purger
	Interval time.Duration
	ticker   *time.Ticker
	done     chan bool
	stopOnce sync.Once
	now      func() time.Time
}

func NewScheduler(store Purger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		Store:    store,
		Interval: interval,
		done:     make(chan bool),
		now:      time.Now,
	}
}

// Start sweeps once immediately, then every Interval until Stop.
func (s *Scheduler) Start() {
	log.Infof("Scheduler started. Sweeping expired sessions every %v", s.Interval)

	s.SweepExpiredSessions()

	s.ticker = time.NewTicker(s.Interval)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.SweepExpiredSessions()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop stops the scheduler. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		log.Infof("Scheduler stopped")
	})
}

// SweepExpiredSessions deletes every expired key and returns the count.
func (s *Scheduler) SweepExpiredSessions() (int64, error) {
	purged, err := s.Store.PurgeExpired(s.now())
	if err != nil {
		log.Errf("Error sweeping expired sessions: %v", err)
		return 0, err
	}
	if purged > 0 {
		log.Infof("Swept %d expired sessions", purged)
	}
	return purged, nil
}
