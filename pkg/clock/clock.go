// Package clock abstracts wall-clock time so schedule and session math
// stays deterministic in tests.
package clock

import "time"

// Clock supplies the current instant. All calendar and timer logic must
// route through a Clock instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in the local timezone.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
