package http

import (
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/appointment"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/request"
)

type GuestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

type CreateBookingBody struct {
	BookingTypeSlug string    `json:"booking_type_slug" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	Guest           GuestBody `json:"guest" binding:"required"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=scheduled confirmed completed cancelled no_show rescheduled"`
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

type ListRequest struct {
	request.ListParams
	Status        string     `form:"status" binding:"omitempty,oneof=scheduled confirmed completed cancelled no_show rescheduled"`
	BookingTypeID string     `form:"booking_type_id" binding:"omitempty,uuid"`
	From          *time.Time `form:"from" binding:"omitempty" time_format:"2006-01-02T15:04:05Z07:00"`
	To            *time.Time `form:"to" binding:"omitempty" time_format:"2006-01-02T15:04:05Z07:00"`
}

type GuestResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID                 string        `json:"id"`
	BookingTypeID      string        `json:"booking_type_id"`
	BookingTypeName    string        `json:"booking_type_name"`
	StartTime          time.Time     `json:"start_time"`
	EndTime            time.Time     `json:"end_time"`
	Status             string        `json:"status"`
	Guest              GuestResponse `json:"guest"`
	CancelledBy        string        `json:"cancelled_by,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func NewAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		BookingTypeID:   a.BookingTypeID,
		BookingTypeName: a.BookingTypeName,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Status:          string(a.Status),
		Guest: GuestResponse{
			Name:    a.Guest.Name,
			Email:   a.Guest.Email,
			Phone:   a.Guest.Phone,
			Company: a.Guest.Company,
			Notes:   a.Guest.Notes,
		},
		CancelledBy:        a.CancelledBy,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// BookingConfirmationResponse is the reduced shape returned to anonymous
// guests after a successful booking.
type BookingConfirmationResponse struct {
	ID              string    `json:"id"`
	BookingTypeName string    `json:"booking_type_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
}

func NewBookingConfirmationResponse(a *appointment.Appointment) BookingConfirmationResponse {
	return BookingConfirmationResponse{
		ID:              a.ID,
		BookingTypeName: a.BookingTypeName,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Status:          string(a.Status),
	}
}
