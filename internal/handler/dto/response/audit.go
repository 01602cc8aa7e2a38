package response

import (
	"time"

	"range-booking/internal/usecase/queries"
)

type AuditEntryResponse struct {
	ID        string         `json:"id"`
	BookingID string         `json:"booking_id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	OldStatus *string        `json:"old_status"`
	NewStatus string         `json:"new_status"`
	Reason    string         `json:"reason,omitempty"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromAuditEntries(vs []*queries.AuditEntryView) []*AuditEntryResponse {
	res := make([]*AuditEntryResponse, len(vs))
	for i, v := range vs {
		item := &AuditEntryResponse{}
		copyView(item, v)
		res[i] = item
	}
	return res
}
