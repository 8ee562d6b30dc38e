package http

import (
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/schedule"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type TimeRangeDTO struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// WeeklyScheduleBody is the wire shape of a weekly schedule, keyed by
// lowercase weekday name. Missing weekdays mean "closed".
type WeeklyScheduleBody map[string][]TimeRangeDTO

// ToModel converts the body into the domain type, rejecting unknown weekday keys.
func (b WeeklyScheduleBody) ToModel() (schedule.WeeklySchedule, bool) {
	ws := schedule.WeeklySchedule{}
	for name, ranges := range b {
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, false
		}
		out := make([]schedule.TimeRange, len(ranges))
		for i, r := range ranges {
			out[i] = schedule.TimeRange{Start: r.Start, End: r.End}
		}
		ws[wd] = out
	}
	return ws, true
}

// NewWeeklyScheduleBody renders the domain type for responses.
func NewWeeklyScheduleBody(ws schedule.WeeklySchedule) WeeklyScheduleBody {
	body := WeeklyScheduleBody{}
	for name, wd := range weekdayNames {
		ranges, ok := ws[wd]
		if !ok {
			continue
		}
		out := make([]TimeRangeDTO, len(ranges))
		for i, r := range ranges {
			out[i] = TimeRangeDTO{Start: r.Start, End: r.End}
		}
		body[name] = out
	}
	return body
}

type DateExceptionBody struct {
	Date     string         `json:"date" binding:"required,datetime=2006-01-02"`
	IsClosed bool           `json:"is_closed"`
	Ranges   []TimeRangeDTO `json:"ranges"`
}

func (b DateExceptionBody) ToModel() (schedule.DateException, error) {
	date, err := time.Parse(time.DateOnly, b.Date)
	if err != nil {
		return schedule.DateException{}, err
	}
	exc := schedule.DateException{
		Date:   date,
		Closed: b.IsClosed,
	}
	for _, r := range b.Ranges {
		exc.Ranges = append(exc.Ranges, schedule.TimeRange{Start: r.Start, End: r.End})
	}
	return exc, nil
}

type DateExceptionResponse struct {
	Date     string         `json:"date"`
	IsClosed bool           `json:"is_closed"`
	Ranges   []TimeRangeDTO `json:"ranges"`
}

func NewDateExceptionResponse(exc schedule.DateException) DateExceptionResponse {
	resp := DateExceptionResponse{
		Date:     exc.Date.Format(time.DateOnly),
		IsClosed: exc.Closed,
		Ranges:   make([]TimeRangeDTO, 0, len(exc.Ranges)),
	}
	for _, r := range exc.Ranges {
		resp.Ranges = append(resp.Ranges, TimeRangeDTO{Start: r.Start, End: r.End})
	}
	return resp
}

type ListExceptionsRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}
