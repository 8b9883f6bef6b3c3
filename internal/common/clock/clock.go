package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/hidayahlabs/dhikrd/internal/common/clock Clock

// Clock supplies the current instant. Injected wherever timestamps are
// written so tests can pin time.
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock.
type DefaultClock struct{}

// Now returns the current system time.
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
