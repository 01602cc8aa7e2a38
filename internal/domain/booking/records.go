package booking

import (
	"time"

	"github.com/google/uuid"
)

// Approval is the immutable record of a pending→approved/denied decision.
type Approval struct {
	ID               uuid.UUID
	BookingID        uuid.UUID
	Action           ApprovalAction
	Actor            string
	Reason           string
	OverrideReason   *string
	ConflictSnapshot []Conflict
	CreatedAt        time.Time
}

// Reschedule links a booking's prior slot to its new one. NewBookingID is
// reserved for a split-identity model and left nil by in-place reschedules.
type Reschedule struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	OldInterval  Interval
	NewInterval  Interval
	Actor        string
	Reason       string
	NewBookingID *uuid.UUID
	CreatedAt    time.Time
}
