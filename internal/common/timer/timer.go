package timer

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_timer.go github.com/cadavrebot/cadavre/internal/common/timer Scheduler

// Scheduler schedules callbacks. One-shot callbacks are never
// cancelled once scheduled; callers are expected to guard against
// firing on stale state themselves.
type Scheduler interface {
	// Once runs fn after d has elapsed.
	Once(d time.Duration, fn func())

	// Every runs fn every d until the returned stop function is
	// called.
	Every(d time.Duration, fn func()) (stop func())
}

// DefaultScheduler implements Scheduler on the process clock.
type DefaultScheduler struct{}

// Once runs fn after d has elapsed.
func (s *DefaultScheduler) Once(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Every runs fn every d until stopped.
func (s *DefaultScheduler) Every(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
