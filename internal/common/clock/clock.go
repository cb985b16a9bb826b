package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/cadavrebot/cadavre/internal/common/clock Clock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *DefaultClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
