package clock

import "time"

// Clock returns the current wall-clock time. Use cases receive a Clock
// instead of calling time.Now directly so tests can pin "now".
type Clock func() time.Time

func System() time.Time {
	return time.Now()
}
