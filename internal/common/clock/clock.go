package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/linewidth/internal/common/clock Clock

// Clock stamps when a session is created, a round starts and a stroke
// begins or ends. Round durations are differences of these stamps.
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the wall clock. Stamps carry no monotonic reading
// and are in UTC, so a session loaded back from Redis compares equal to
// the one that was saved.
type DefaultClock struct{}

// New returns the wall clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
