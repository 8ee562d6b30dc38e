package schedule

import (
	"time"
)

// LoadZone resolves an IANA timezone identifier.
func LoadZone(tz string) (*time.Location, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// Instant converts a wall-clock "HH:MM" on the given civil date to an absolute
// UTC instant in loc.
//
// A wall-clock time skipped by a spring-forward transition does not exist and
// is rejected with ErrNonexistentTime. A wall-clock time that occurs twice
// during a fall-back transition resolves to the first occurrence.
func Instant(loc *time.Location, year int, month time.Month, day int, wall string) (time.Time, error) {
	m, err := minuteOfDay(wall)
	if err != nil {
		return time.Time{}, err
	}
	h, min := m/60, m%60

	t := time.Date(year, month, day, h, min, 0, 0, loc)
	if t.Hour() != h || t.Minute() != min || t.Day() != day {
		// time.Date normalized the requested wall clock away: it falls in a
		// DST gap for this zone.
		return time.Time{}, ErrNonexistentTime
	}

	// If the same wall clock also occurred earlier, the zone fell back and
	// the time is ambiguous; pick the earlier instant. The shift is read off
	// the zone offsets rather than assumed to be an hour, since some zones
	// fall back by other amounts (Lord Howe Island moves 30 minutes).
	_, off := t.Zone()
	for _, lookback := range []time.Duration{time.Hour, 3 * time.Hour} {
		_, before := t.Add(-lookback).Zone()
		shift := time.Duration(before-off) * time.Second
		if shift <= 0 {
			continue
		}
		if prev := t.Add(-shift); prev.Hour() == h && prev.Minute() == min && prev.Day() == day {
			t = prev
		}
		break
	}

	return t.UTC(), nil
}

// Wall converts an absolute instant to the owner-local civil date and
// wall-clock time for display.
func Wall(t time.Time, loc *time.Location) (date string, hhmm string) {
	local := t.In(loc)
	return local.Format(time.DateOnly), local.Format("15:04")
}

// CivilDate returns the owner-local calendar date of an instant as a
// midnight-UTC time value, matching how dates are handled elsewhere.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
