package host

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("host not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidTimezone = errors.New("invalid timezone identifier")
)

// Host is the scheduling owner: the agency or individual whose weekly
// schedule, timezone, and booking types govern availability.
type Host struct {
	ID        string // UUID
	Name      string
	Email     string
	Slug      string
	Timezone  string // IANA zone identifier, e.g. "Asia/Dubai"
	CreatedAt time.Time
	UpdatedAt time.Time
}
