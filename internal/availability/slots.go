package availability

import "time"

// Slot is a candidate bookable [Start, End) window of exactly one booking
// type's duration. Times are UTC.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval is an occupied [Start, End) window on the absolute timeline.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Generate slices one open interval into consecutive candidate slots.
//
// The cursor starts at the interval start; each step consumes
// bufBefore + duration + bufAfter, and the emitted slot covers only the
// duration portion. The remainder at the end of the interval that cannot fit
// a full step is unused; no slot ever crosses the interval boundary. Slots
// starting before notBefore (now + lead time) are discarded.
func Generate(intervalStart, intervalEnd time.Time, duration, bufBefore, bufAfter time.Duration, notBefore time.Time) []Slot {
	if duration <= 0 || bufBefore < 0 || bufAfter < 0 {
		return nil
	}
	if !intervalEnd.After(intervalStart) {
		return nil
	}

	step := bufBefore + duration + bufAfter

	var slots []Slot
	for t := intervalStart; !t.Add(step).After(intervalEnd); t = t.Add(step) {
		start := t.Add(bufBefore)
		if start.Before(notBefore) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: start.Add(duration)})
	}
	return slots
}

// Free returns the candidate slots that have zero overlap with every busy
// interval. Half-open semantics: a slot ending exactly when an appointment
// starts (or vice versa) does not conflict, so back-to-back bookings are
// allowed.
//
// This filter is advisory for display only; it races with concurrent
// bookings between query time and submission time. Booking safety is
// enforced by the insert-time exclusion constraint.
func Free(slots []Slot, busy []Interval) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if !overlapsAny(s.Start, s.End, busy) {
			free = append(free, s)
		}
	}
	return free
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		// [start,end) overlaps [b.Start,b.End) iff start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
