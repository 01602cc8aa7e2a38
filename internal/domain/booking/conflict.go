package booking

import (
	"time"

	"github.com/google/uuid"
)

// Conflict is one (other booking, shared resource) pair.
type Conflict struct {
	BookingID   uuid.UUID `json:"booking_id"`
	RequestCode string    `json:"request_code"`
	Status      Status    `json:"status"`
	ResourceID  string    `json:"resource_id"`
	GroupName   string    `json:"group_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// NearbyBooking is an active booking on the same local day sharing a
// resource but not overlapping. Advisory only.
type NearbyBooking struct {
	BookingID   uuid.UUID `json:"booking_id"`
	RequestCode string    `json:"request_code"`
	Status      Status    `json:"status"`
	ResourceIDs []string  `json:"resource_ids"`
	GroupName   string    `json:"group_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

func ConflictsWith(other *Booking, shared []string) []Conflict {
	out := make([]Conflict, 0, len(shared))
	for _, rid := range shared {
		out = append(out, Conflict{
			BookingID:   other.ID(),
			RequestCode: other.RequestCode(),
			Status:      other.Status(),
			ResourceID:  rid,
			GroupName:   other.Requester().GroupName,
			Start:       other.Interval().Start(),
			End:         other.Interval().End(),
		})
	}
	return out
}

// DistinctBookingIDs returns the conflicting booking ids in first-seen order.
func DistinctBookingIDs(conflicts []Conflict) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(conflicts))
	var ids []uuid.UUID
	for _, c := range conflicts {
		if _, ok := seen[c.BookingID]; ok {
			continue
		}
		seen[c.BookingID] = struct{}{}
		ids = append(ids, c.BookingID)
	}
	return ids
}

// BumpTargets returns the distinct conflicting bookings that are currently
// approved. Pending conflicts are left for their own approval to surface.
func BumpTargets(conflicts []Conflict) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(conflicts))
	var ids []uuid.UUID
	for _, c := range conflicts {
		if c.Status != StatusApproved {
			continue
		}
		if _, ok := seen[c.BookingID]; ok {
			continue
		}
		seen[c.BookingID] = struct{}{}
		ids = append(ids, c.BookingID)
	}
	return ids
}
