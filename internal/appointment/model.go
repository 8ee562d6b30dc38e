package appointment

import (
	"net/http"
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "appointment not found")
	ErrSlotConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid appointment status")
	ErrInvalidTransition   = apperror.New(http.StatusConflict, "status transition not allowed")
	ErrStartTimeRequired   = apperror.New(http.StatusBadRequest, "start time is required")
	ErrGuestNameRequired   = apperror.New(http.StatusBadRequest, "guest name is required")
	ErrInvalidGuestEmail   = apperror.New(http.StatusBadRequest, "a valid guest email is required")
	ErrCancellerRequired   = apperror.New(http.StatusBadRequest, "cancelled_by is required when cancelling")
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

// NonTerminalStatuses are the statuses that block overlapping slots.
var NonTerminalStatuses = []Status{StatusScheduled, StatusConfirmed}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// Terminal reports whether s frees its interval. Terminal appointments are
// kept for history but excluded from overlap checks.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// CanTransition reports whether an appointment may move from -> to.
// Appointments are never deleted; status transitions are the only mutation
// path after creation.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusScheduled:
		return to == StatusConfirmed || to.Terminal()
	case StatusConfirmed:
		return to.Terminal()
	}
	return false
}

// Guest holds the contact details collected from the anonymous booker.
type Guest struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
}

type Appointment struct {
	ID                 string
	HostID             string
	BookingTypeID      string
	BookingTypeName    string
	StartTime          time.Time // UTC
	EndTime            time.Time // UTC, always StartTime + booking type duration
	Status             Status
	Guest              Guest
	CancelledBy        string
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter defines parameters for listing appointments.
type Filter struct {
	HostID        string
	BookingTypeID string
	Status        string
	From          *time.Time
	To            *time.Time
	Page          int
	PageSize      int
	SortOrder     string
}

// BookingCreated is the event payload emitted when a booking commits, for
// the external notification collaborator.
type BookingCreated struct {
	AppointmentID   string    `json:"appointment_id"`
	HostID          string    `json:"host_id"`
	HostName        string    `json:"host_name"`
	HostEmail       string    `json:"host_email"`
	BookingTypeID   string    `json:"booking_type_id"`
	BookingTypeName string    `json:"booking_type_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone,omitempty"`
	GuestCompany    string    `json:"guest_company,omitempty"`
	GuestNotes      string    `json:"guest_notes,omitempty"`
}
