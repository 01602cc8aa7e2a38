package queries

import (
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingView is the read shape of a booking.
type BookingView struct {
	ID                   uuid.UUID `json:"id"`
	RequestCode          string    `json:"request_code"`
	Status               string    `json:"status"`
	GroupName            string    `json:"group_name"`
	ContactName          string    `json:"contact_name"`
	ContactEmail         string    `json:"contact_email"`
	ContactPhone         string    `json:"contact_phone"`
	OfficerName          string    `json:"officer_name"`
	OfficerQualification string    `json:"officer_qualification"`
	OfficerWhitelisted   bool      `json:"officer_whitelisted"`
	Start                time.Time `json:"start"`
	End                  time.Time `json:"end"`
	LocalDate            string    `json:"local_date"`
	LocalStart           string    `json:"local_start"`
	LocalEnd             string    `json:"local_end"`
	Timezone             string    `json:"timezone"`
	ResourceIDs          []string  `json:"resource_ids"`
	SafetyAttested       bool      `json:"safety_attested"`
	WaiverAttested       bool      `json:"waiver_attested"`
	InsuranceAttested    bool      `json:"insurance_attested"`
	AttestationDetails   string    `json:"attestation_details"`
	Purpose              string    `json:"purpose"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewBookingView(s booking.Snapshot) *BookingView {
	return &BookingView{
		ID:                   s.ID,
		RequestCode:          s.RequestCode,
		Status:               s.Status.String(),
		GroupName:            s.Requester.GroupName,
		ContactName:          s.Requester.ContactName,
		ContactEmail:         s.Requester.ContactEmail,
		ContactPhone:         s.Requester.ContactPhone,
		OfficerName:          s.Officer.Name,
		OfficerQualification: s.Officer.Qualification,
		OfficerWhitelisted:   s.Officer.Whitelisted,
		Start:                s.Schedule.Interval.Start(),
		End:                  s.Schedule.Interval.End(),
		LocalDate:            s.Schedule.Local.Date,
		LocalStart:           s.Schedule.Local.Start,
		LocalEnd:             s.Schedule.Local.End,
		Timezone:             s.Schedule.Local.Timezone,
		ResourceIDs:          s.ResourceIDs,
		SafetyAttested:       s.Attestation.Safety,
		WaiverAttested:       s.Attestation.Waiver,
		InsuranceAttested:    s.Attestation.Insurance,
		AttestationDetails:   s.Attestation.Details,
		Purpose:              s.Purpose,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

type AuditEntryView struct {
	ID        uuid.UUID      `json:"id"`
	BookingID uuid.UUID      `json:"booking_id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	OldStatus *string        `json:"old_status"`
	NewStatus string         `json:"new_status"`
	Reason    string         `json:"reason"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewAuditEntryView(e *audit.Entry) *AuditEntryView {
	var old *string
	if e.OldStatus != nil {
		s := e.OldStatus.String()
		old = &s
	}
	return &AuditEntryView{
		ID:        e.ID,
		BookingID: e.BookingID,
		Action:    string(e.Action),
		Actor:     e.Actor,
		OldStatus: old,
		NewStatus: e.NewStatus.String(),
		Reason:    e.Reason,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
}

// Suggestion is one candidate slot at the booking's original local time.
type Suggestion struct {
	Date      string             `json:"date"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Available bool               `json:"available"`
	Conflicts []booking.Conflict `json:"conflicts"`
}

type ConflictCheckInput struct {
	Date             string   `validate:"required"`
	StartTime        string   `validate:"required"`
	EndTime          string   `validate:"required"`
	Timezone         string   `validate:"omitempty,max=64"`
	ResourceIDs      []string `validate:"required,min=1,dive,required"`
	ExcludeBookingID *uuid.UUID
}
