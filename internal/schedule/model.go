package schedule

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/pkg/apperror"
)

var (
	ErrInvalidTimezone   = apperror.New(http.StatusBadRequest, "invalid timezone identifier")
	ErrNonexistentTime   = apperror.New(http.StatusBadRequest, "wall-clock time does not exist in this timezone")
	ErrMalformedTime     = apperror.New(http.StatusBadRequest, "time must be in HH:MM format")
	ErrInvalidRange      = apperror.New(http.StatusBadRequest, "range start must be before range end")
	ErrUnorderedRanges   = apperror.New(http.StatusBadRequest, "ranges must be ordered by start time")
	ErrOverlappingRanges = apperror.New(http.StatusBadRequest, "ranges must not overlap")
	ErrClosedWithRanges  = apperror.New(http.StatusBadRequest, "a closed date cannot carry replacement ranges")
	ErrScheduleIntegrity = apperror.New(http.StatusInternalServerError, "schedule data is corrupted")
	ErrExceptionNotFound = apperror.New(http.StatusNotFound, "date exception not found")
	ErrExceptionConflict = apperror.New(http.StatusConflict, "date exception was modified concurrently, retry")
)

// TimeRange is a wall-clock [Start, End) window in the owner's timezone,
// both bounds in "HH:MM" format.
type TimeRange struct {
	Start string
	End   string
}

// minuteOfDay parses "HH:MM" into minutes since midnight.
func minuteOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrMalformedTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrMalformedTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrMalformedTime
	}
	return h*60 + m, nil
}

// Minutes returns the range bounds as minutes since midnight.
func (r TimeRange) Minutes() (start, end int, err error) {
	start, err = minuteOfDay(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = minuteOfDay(r.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ValidateRanges enforces the per-day invariant: every range has start < end,
// ranges are ordered by start, and no two ranges overlap. Back-to-back ranges
// (one ending exactly when the next starts) are allowed.
func ValidateRanges(ranges []TimeRange) error {
	prevEnd := -1
	prevStart := -1
	for _, r := range ranges {
		start, end, err := r.Minutes()
		if err != nil {
			return err
		}
		if start >= end {
			return fmt.Errorf("range %s-%s: %w", r.Start, r.End, ErrInvalidRange)
		}
		if start < prevStart {
			return ErrUnorderedRanges
		}
		if start < prevEnd {
			return fmt.Errorf("range %s-%s: %w", r.Start, r.End, ErrOverlappingRanges)
		}
		prevStart = start
		prevEnd = end
	}
	return nil
}

// WeeklySchedule maps a weekday to its ordered open ranges. A weekday with no
// entry (or an empty slice) accepts no bookings.
type WeeklySchedule map[time.Weekday][]TimeRange

// Validate checks every weekday's ranges.
func (ws WeeklySchedule) Validate() error {
	for wd, ranges := range ws {
		if err := ValidateRanges(ranges); err != nil {
			return fmt.Errorf("%s: %w", wd, err)
		}
	}
	return nil
}

// DateException overrides the weekly schedule for one calendar date: either
// the date is closed entirely, or its ranges replace the weekday's defaults.
type DateException struct {
	Date   time.Time // civil date, midnight UTC
	Closed bool
	Ranges []TimeRange
}

// Validate checks the exception's internal consistency.
func (e DateException) Validate() error {
	if e.Closed {
		if len(e.Ranges) > 0 {
			return ErrClosedWithRanges
		}
		return nil
	}
	return ValidateRanges(e.Ranges)
}
