package outbox

import "time"

// Event types carried through the booking_events table.
const EventTypeBookingCreated = "booking.created"

// Event is one queued integration event. Rows are written in the same
// transaction as the state change they describe and drained by the Publisher;
// delivery (email, SMS, webhooks) is the notification collaborator's job.
type Event struct {
	ID          string
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
