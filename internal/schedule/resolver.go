package schedule

import (
	"fmt"
	"time"
)

// OpenInterval is an absolute [Start, End) window (UTC) during which the
// owner accepts bookings.
type OpenInterval struct {
	Start time.Time
	End   time.Time
}

// ResolveDay merges the weekly schedule with any date exception for one civil
// date and returns the day's open intervals on the absolute timeline.
//
// Precedence: a closed exception yields no intervals, an exception with
// replacement ranges overrides the weekday defaults, otherwise the weekly
// schedule applies. Malformed stored ranges are never merged or dropped; they
// surface as ErrScheduleIntegrity because they indicate corrupted data
// upstream of the resolver.
func ResolveDay(loc *time.Location, date time.Time, week WeeklySchedule, exc *DateException) ([]OpenInterval, error) {
	var ranges []TimeRange
	switch {
	case exc != nil && exc.Closed:
		return nil, nil
	case exc != nil:
		ranges = exc.Ranges
	default:
		ranges = week[date.Weekday()]
	}

	if err := ValidateRanges(ranges); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", date.Format(time.DateOnly), err, ErrScheduleIntegrity)
	}

	out := make([]OpenInterval, 0, len(ranges))
	y, m, d := date.Date()
	for _, r := range ranges {
		start, err := Instant(loc, y, m, d, r.Start)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", date.Format(time.DateOnly), r.Start, err)
		}
		end, err := Instant(loc, y, m, d, r.End)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", date.Format(time.DateOnly), r.End, err)
		}
		if !end.After(start) {
			// Cannot happen for a well-formed zone, but a DST fold must
			// never produce an inverted interval silently.
			return nil, fmt.Errorf("%s: inverted interval: %w", date.Format(time.DateOnly), ErrScheduleIntegrity)
		}
		out = append(out, OpenInterval{Start: start, End: end})
	}
	return out, nil
}
