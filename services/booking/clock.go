package booking

import "time"

// Clock supplies "today" at day granularity. Injected so the sweep and the
// history classification can be driven deterministically in tests.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return Day(time.Now())
}
