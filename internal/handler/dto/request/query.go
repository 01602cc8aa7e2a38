package request

import (
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/usecase/shared"
)

type ResourceBookingsQuery struct {
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Status string     `form:"status"`
}

func (q *ResourceBookingsQuery) ToFilter() shared.ResourceBookingFilter {
	f := shared.ResourceBookingFilter{From: q.From, To: q.To}
	if q.Status != "" {
		s := booking.Status(q.Status)
		f.Status = &s
	}
	return f
}

type AuditSearchQuery struct {
	Actor  string     `form:"actor"`
	Action string     `form:"action"`
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int        `form:"limit" binding:"omitempty,min=0"`
}

func (q *AuditSearchQuery) ToFilter() audit.Filter {
	return audit.Filter{
		Actor:  q.Actor,
		Action: audit.Action(q.Action),
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
	}
}

type SuggestionQuery struct {
	Days int `form:"days" binding:"omitempty,min=0"`
}
