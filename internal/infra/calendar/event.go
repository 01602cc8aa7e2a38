package calendar

import (
	"time"

	"range-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Header keys shared by every transport.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"

	source = "range-booking"
)

// Event is the wire payload sent to the calendar integration.
type Event struct {
	EventID            uuid.UUID `json:"event_id"`
	Action             string    `json:"action"`
	BookingID          uuid.UUID `json:"booking_id"`
	RequestCode        string    `json:"request_code"`
	Status             string    `json:"status"`
	GroupName          string    `json:"group_name"`
	ResourceIDs        []string  `json:"resource_ids"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	LocalDate          string    `json:"local_date"`
	LocalStart         string    `json:"local_start"`
	LocalEnd           string    `json:"local_end"`
	Timezone           string    `json:"timezone"`
	RelatedRequestCode string    `json:"related_request_code,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func NewEvent(ev commands.CalendarEvent) Event {
	b := ev.Booking
	return Event{
		EventID:            uuid.New(),
		Action:             string(ev.Action),
		BookingID:          b.ID,
		RequestCode:        b.RequestCode,
		Status:             b.Status.String(),
		GroupName:          b.Requester.GroupName,
		ResourceIDs:        b.ResourceIDs,
		Start:              b.Schedule.Interval.Start(),
		End:                b.Schedule.Interval.End(),
		LocalDate:          b.Schedule.Local.Date,
		LocalStart:         b.Schedule.Local.Start,
		LocalEnd:           b.Schedule.Local.End,
		Timezone:           b.Schedule.Local.Timezone,
		RelatedRequestCode: ev.RelatedRequestCode,
		OccurredAt:         ev.OccurredAt,
	}
}

// RoutingKey is "booking.<action>", used as the RabbitMQ routing key and the
// Kafka event-type header.
func (e Event) RoutingKey() string {
	return "booking." + e.Action
}
