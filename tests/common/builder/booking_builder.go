//go:build unit || e2e

package builder

import (
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	reqdto "range-booking/internal/handler/dto/request"
	"range-booking/internal/pkg/localtime"
	"range-booking/internal/usecase/commands"
	"range-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// DefaultNow is the creation instant used by builders; request codes built
// from it start with RB-20250601-.
var DefaultNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID                   uuid.UUID
	Actor                string
	GroupName            string
	ContactName          string
	ContactEmail         string
	ContactPhone         string
	OfficerName          string
	OfficerQualification string
	Whitelisted          bool
	Date                 string
	StartTime            string
	EndTime              string
	Timezone             string
	ResourceIDs          []string
	Safety               bool
	Waiver               bool
	Insurance            bool
	Details              string
	Purpose              string
	Status               booking.Status
	Now                  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Actor:                "requester@range.test",
		GroupName:            "County Sheriff Qualification",
		ContactName:          "Dana Reyes",
		ContactEmail:         "dana.reyes@example.com",
		ContactPhone:         "555-0100",
		OfficerName:          "Sam Ortiz",
		OfficerQualification: "NRA RSO",
		Date:                 "2025-06-14",
		StartTime:            "09:00",
		EndTime:              "12:00",
		Timezone:             "UTC",
		ResourceIDs:          []string{"bay-1"},
		Safety:               true,
		Waiver:               true,
		Insurance:            true,
		Details:              "Policy #A-100",
		Purpose:              "Quarterly qualification",
		Status:               booking.StatusPending,
		Now:                  DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSchedule() (booking.Schedule, error) {
	start, err := localtime.Combine(b.Date, b.StartTime, b.Timezone)
	if err != nil {
		return booking.Schedule{}, err
	}
	end, err := localtime.Combine(b.Date, b.EndTime, b.Timezone)
	if err != nil {
		return booking.Schedule{}, err
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return booking.Schedule{}, err
	}
	return booking.Schedule{
		Interval: interval,
		Local:    booking.LocalSlot{Date: b.Date, Start: b.StartTime, End: b.EndTime, Timezone: b.Timezone},
	}, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	schedule, err := b.BuildSchedule()
	if err != nil {
		return nil, err
	}
	bk, err := booking.NewBooking(booking.NewBookingParams{
		ID: b.ID,
		Requester: booking.Requester{
			GroupName:    b.GroupName,
			ContactName:  b.ContactName,
			ContactEmail: b.ContactEmail,
			ContactPhone: b.ContactPhone,
		},
		Officer: booking.Officer{
			Name:          b.OfficerName,
			Qualification: b.OfficerQualification,
			Whitelisted:   b.Whitelisted,
		},
		Schedule:    schedule,
		ResourceIDs: b.ResourceIDs,
		Attestation: booking.Attestation{
			Safety:    b.Safety,
			Waiver:    b.Waiver,
			Insurance: b.Insurance,
			Details:   b.Details,
		},
		Purpose: b.Purpose,
		Now:     b.Now,
	})
	if err != nil {
		return nil, err
	}
	if b.Status == booking.StatusPending || b.Status == "" {
		return bk, nil
	}
	snap := bk.Snapshot()
	snap.Status = b.Status
	return booking.ReconstructBooking(snap), nil
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Actor:                b.Actor,
		GroupName:            b.GroupName,
		ContactName:          b.ContactName,
		ContactEmail:         b.ContactEmail,
		ContactPhone:         b.ContactPhone,
		OfficerName:          b.OfficerName,
		OfficerQualification: b.OfficerQualification,
		Date:                 b.Date,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		Timezone:             b.Timezone,
		ResourceIDs:          append([]string(nil), b.ResourceIDs...),
		SafetyAttested:       b.Safety,
		WaiverAttested:       b.Waiver,
		InsuranceAttested:    b.Insurance,
		AttestationDetails:   b.Details,
		Purpose:              b.Purpose,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	safety, waiver, insurance := b.Safety, b.Waiver, b.Insurance
	return reqdto.CreateBookingRequest{
		GroupName:            b.GroupName,
		ContactName:          b.ContactName,
		ContactEmail:         b.ContactEmail,
		ContactPhone:         b.ContactPhone,
		OfficerName:          b.OfficerName,
		OfficerQualification: b.OfficerQualification,
		Date:                 b.Date,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		Timezone:             b.Timezone,
		ResourceIDs:          append([]string(nil), b.ResourceIDs...),
		SafetyAttested:       &safety,
		WaiverAttested:       &waiver,
		InsuranceAttested:    &insurance,
		AttestationDetails:   b.Details,
		Purpose:              b.Purpose,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.MustBuildDomain().Snapshot())
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithResources(ids ...string) *BookingBuilder {
	b.ResourceIDs = ids
	return b
}

func (b *BookingBuilder) WithSlot(date, start, end string) *BookingBuilder {
	b.Date = date
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithTimezone(tz string) *BookingBuilder {
	b.Timezone = tz
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithGroupName(name string) *BookingBuilder {
	b.GroupName = name
	return b
}

func (b *BookingBuilder) WithOfficer(name string) *BookingBuilder {
	b.OfficerName = name
	return b
}

func (b *BookingBuilder) WithActor(actor string) *BookingBuilder {
	b.Actor = actor
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = booking.StatusApproved
	return b
}

// NewResource builds an active resource of the given type.
func NewResource(id string, kind resource.Type) *resource.Resource {
	r, err := resource.NewResource(id, "Resource "+id, kind, DefaultNow)
	if err != nil {
		panic(err)
	}
	return r
}
