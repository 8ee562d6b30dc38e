package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gravitymeet/scheduling-backend/internal/appointment"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createFn func(ctx context.Context, req appointment.CreateRequest) (*appointment.Appointment, error)
}

func (s *stubService) Create(ctx context.Context, req appointment.CreateRequest) (*appointment.Appointment, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) GetByID(ctx context.Context, hostID, id string) (*appointment.Appointment, error) {
	return nil, appointment.ErrNotFound
}

func (s *stubService) List(ctx context.Context, filter appointment.Filter) ([]*appointment.Appointment, int, error) {
	return nil, 0, nil
}

func (s *stubService) UpdateStatus(ctx context.Context, hostID, id string, req appointment.UpdateStatusRequest) (*appointment.Appointment, error) {
	return nil, appointment.ErrNotFound
}

func bookingRouter(svc appointment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterPublicRoutes(router.Group("/v1/public"), NewHandler(svc))
	return router
}

func postBooking(t *testing.T, router *gin.Engine, body CreateBookingBody) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/public/bookings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBookingBody() CreateBookingBody {
	return CreateBookingBody{
		BookingTypeSlug: "intro-call",
		StartTime:       time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		Guest: GuestBody{
			Name:  "Dana Guest",
			Email: "dana@example.com",
		},
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubService{
			createFn: func(ctx context.Context, req appointment.CreateRequest) (*appointment.Appointment, error) {
				return &appointment.Appointment{
					ID:              "apt-1",
					BookingTypeName: "Intro Call",
					StartTime:       req.StartTime,
					EndTime:         req.StartTime.Add(30 * time.Minute),
					Status:          appointment.StatusScheduled,
				}, nil
			},
		}

		rec := postBooking(t, bookingRouter(svc), validBookingBody())

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp BookingConfirmationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "apt-1", resp.ID)
		assert.Equal(t, "scheduled", resp.Status)
	})

	t.Run("unknown booking type is 404", func(t *testing.T) {
		svc := &stubService{
			createFn: func(ctx context.Context, req appointment.CreateRequest) (*appointment.Appointment, error) {
				return nil, bookingtype.ErrNotFound
			},
		}

		rec := postBooking(t, bookingRouter(svc), validBookingBody())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("taken slot is 409", func(t *testing.T) {
		svc := &stubService{
			createFn: func(ctx context.Context, req appointment.CreateRequest) (*appointment.Appointment, error) {
				return nil, appointment.ErrSlotConflict
			},
		}

		rec := postBooking(t, bookingRouter(svc), validBookingBody())

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing guest email is 400", func(t *testing.T) {
		body := validBookingBody()
		body.Guest.Email = ""

		rec := postBooking(t, bookingRouter(&stubService{}), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
