package booking

import (
	"fmt"
	"time"
)

// storagePrecision matches timestamptz, so a range compares the same before and after a round trip.
const storagePrecision = time.Microsecond

// TimeRange is the half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	start = normalize(start)
	end = normalize(end)
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

func normalize(t time.Time) time.Time {
	return t.Truncate(storagePrecision).UTC()
}

func (r TimeRange) Start() time.Time {
	return r.start
}

func (r TimeRange) End() time.Time {
	return r.end
}

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Overlaps reports whether both ranges share at least one instant.
// Back-to-back ranges (r.end == other.start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return other.start.Before(r.end) && r.start.Before(other.end)
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339Nano), r.end.Format(time.RFC3339Nano))
}
