package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Report describes what a single interpreter run did.
type Report struct {
	RunID     string
	Steps     int // nodes visited by the trampoline
	Effects   int // suspended effects invoked
	Recovered int // failures resumed by a Recover fallback
	MaxFrames int // deepest pending continuation stack
	Span      TimeSpan
}
