package http

import (
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/availability"
)

type DaysRequest struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

type SlotsRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewSlotResponses(slots []availability.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Start: s.Start, End: s.End}
	}
	return out
}
