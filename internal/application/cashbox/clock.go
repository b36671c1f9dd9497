package cashbox

import "time"

// Clock abstracts the current time so that "today" rules (extra drawer
// eligibility) stay testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
