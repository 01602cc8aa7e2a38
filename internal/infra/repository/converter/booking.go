package converter

import (
	"encoding/json"

	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	s := b.Snapshot()
	return sqlc.CreateBookingParams{
		ID:                   s.ID,
		RequestCode:          s.RequestCode,
		Status:               s.Status.String(),
		GroupName:            s.Requester.GroupName,
		ContactName:          s.Requester.ContactName,
		ContactEmail:         s.Requester.ContactEmail,
		ContactPhone:         pgconv.OptionalText(s.Requester.ContactPhone),
		OfficerName:          s.Officer.Name,
		OfficerQualification: s.Officer.Qualification,
		OfficerWhitelisted:   s.Officer.Whitelisted,
		StartAt:              pgconv.TimeToPgtype(s.Schedule.Interval.Start()),
		EndAt:                pgconv.TimeToPgtype(s.Schedule.Interval.End()),
		LocalDate:            s.Schedule.Local.Date,
		LocalStart:           s.Schedule.Local.Start,
		LocalEnd:             s.Schedule.Local.End,
		Timezone:             s.Schedule.Local.Timezone,
		SafetyAttested:       s.Attestation.Safety,
		WaiverAttested:       s.Attestation.Waiver,
		InsuranceAttested:    s.Attestation.Insurance,
		AttestationDetails:   s.Attestation.Details,
		Purpose:              s.Purpose,
		CreatedAt:            pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:            pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func BookingToScheduleParams(b *booking.Booking, from booking.Status) sqlc.UpdateBookingScheduleParams {
	schedule := b.Schedule()
	return sqlc.UpdateBookingScheduleParams{
		Status:     b.Status().String(),
		StartAt:    pgconv.TimeToPgtype(schedule.Interval.Start()),
		EndAt:      pgconv.TimeToPgtype(schedule.Interval.End()),
		LocalDate:  schedule.Local.Date,
		LocalStart: schedule.Local.Start,
		LocalEnd:   schedule.Local.End,
		Timezone:   schedule.Local.Timezone,
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		FromStatus: from.String(),
	}
}

// BookingFromDetails rebuilds the aggregate from a booking_details row.
func BookingFromDetails(row sqlc.BookingDetails) (*booking.Booking, error) {
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booking %s has unknown status %q", row.ID, row.Status)
	}
	interval, err := booking.NewInterval(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has a corrupt interval", row.ID)
	}
	return booking.ReconstructBooking(booking.Snapshot{
		ID:          row.ID,
		RequestCode: row.RequestCode,
		Status:      status,
		Requester: booking.Requester{
			GroupName:    row.GroupName,
			ContactName:  row.ContactName,
			ContactEmail: row.ContactEmail,
			ContactPhone: pgconv.TextOrEmpty(row.ContactPhone),
		},
		Officer: booking.Officer{
			Name:          row.OfficerName,
			Qualification: row.OfficerQualification,
			Whitelisted:   row.OfficerWhitelisted,
		},
		Schedule: booking.Schedule{
			Interval: interval,
			Local: booking.LocalSlot{
				Date:     row.LocalDate,
				Start:    row.LocalStart,
				End:      row.LocalEnd,
				Timezone: row.Timezone,
			},
		},
		ResourceIDs: row.ResourceIds,
		Attestation: booking.Attestation{
			Safety:    row.SafetyAttested,
			Waiver:    row.WaiverAttested,
			Insurance: row.InsuranceAttested,
			Details:   row.AttestationDetails,
		},
		Purpose:   row.Purpose,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BookingsFromDetails(rows []sqlc.BookingDetails) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromDetails(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func ApprovalToParams(a *booking.Approval) (sqlc.CreateApprovalParams, error) {
	snapshot := a.ConflictSnapshot
	if snapshot == nil {
		snapshot = []booking.Conflict{}
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return sqlc.CreateApprovalParams{}, errs.Wrap(err, "encode conflict snapshot")
	}
	return sqlc.CreateApprovalParams{
		ID:               a.ID,
		BookingID:        a.BookingID,
		Action:           string(a.Action),
		Actor:            a.Actor,
		Reason:           a.Reason,
		OverrideReason:   pgconv.StringPtrToPgtype(a.OverrideReason),
		ConflictSnapshot: raw,
		CreatedAt:        pgconv.TimeToPgtype(a.CreatedAt),
	}, nil
}

func ApprovalFromRow(row sqlc.Approvals) (*booking.Approval, error) {
	var snapshot []booking.Conflict
	if len(row.ConflictSnapshot) > 0 {
		if err := json.Unmarshal(row.ConflictSnapshot, &snapshot); err != nil {
			return nil, errs.Wrap(err, "decode conflict snapshot")
		}
	}
	return &booking.Approval{
		ID:               row.ID,
		BookingID:        row.BookingID,
		Action:           booking.ApprovalAction(row.Action),
		Actor:            row.Actor,
		Reason:           row.Reason,
		OverrideReason:   pgconv.StringPtrFromPgtype(row.OverrideReason),
		ConflictSnapshot: snapshot,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func RescheduleToParams(r *booking.Reschedule) sqlc.CreateRescheduleParams {
	return sqlc.CreateRescheduleParams{
		ID:           r.ID,
		BookingID:    r.BookingID,
		OldStartAt:   pgconv.TimeToPgtype(r.OldInterval.Start()),
		OldEndAt:     pgconv.TimeToPgtype(r.OldInterval.End()),
		NewStartAt:   pgconv.TimeToPgtype(r.NewInterval.Start()),
		NewEndAt:     pgconv.TimeToPgtype(r.NewInterval.End()),
		Actor:        r.Actor,
		Reason:       r.Reason,
		NewRequestID: r.NewBookingID,
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		resource.Type(row.Type),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ResourceToParams(r *resource.Resource) sqlc.UpsertResourceParams {
	return sqlc.UpsertResourceParams{
		ID:        r.ID(),
		Name:      r.Name(),
		Type:      string(r.Type()),
		Active:    r.Active(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
