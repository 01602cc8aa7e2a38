package response

import (
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/usecase/commands"
	"range-booking/internal/usecase/queries"
	"range-booking/internal/usecase/shared"
)

type BookingResponse struct {
	ID                   string    `json:"id"`
	RequestCode          string    `json:"request_code"`
	Status               string    `json:"status"`
	GroupName            string    `json:"group_name"`
	ContactName          string    `json:"contact_name"`
	ContactEmail         string    `json:"contact_email"`
	ContactPhone         string    `json:"contact_phone,omitempty"`
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
	AttestationDetails   string    `json:"attestation_details,omitempty"`
	Purpose              string    `json:"purpose,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	copyView(res, v)
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type ConflictResponse struct {
	BookingID   string    `json:"booking_id"`
	RequestCode string    `json:"request_code"`
	Status      string    `json:"status"`
	ResourceID  string    `json:"resource_id"`
	GroupName   string    `json:"group_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

func FromConflicts(cs []booking.Conflict) []ConflictResponse {
	res := make([]ConflictResponse, len(cs))
	for i, c := range cs {
		res[i] = ConflictResponse{
			BookingID:   c.BookingID.String(),
			RequestCode: c.RequestCode,
			Status:      c.Status.String(),
			ResourceID:  c.ResourceID,
			GroupName:   c.GroupName,
			Start:       c.Start,
			End:         c.End,
		}
	}
	return res
}

type NearbyResponse struct {
	BookingID   string    `json:"booking_id"`
	RequestCode string    `json:"request_code"`
	Status      string    `json:"status"`
	ResourceIDs []string  `json:"resource_ids"`
	GroupName   string    `json:"group_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

func FromNearby(ns []booking.NearbyBooking) []NearbyResponse {
	res := make([]NearbyResponse, len(ns))
	for i, n := range ns {
		res[i] = NearbyResponse{
			BookingID:   n.BookingID.String(),
			RequestCode: n.RequestCode,
			Status:      n.Status.String(),
			ResourceIDs: n.ResourceIDs,
			GroupName:   n.GroupName,
			Start:       n.Start,
			End:         n.End,
		}
	}
	return res
}

// BookingResultResponse is returned by every lifecycle command.
type BookingResultResponse struct {
	Booking   *BookingResponse   `json:"booking"`
	Conflicts []ConflictResponse `json:"conflicts"`
	Nearby    []NearbyResponse   `json:"nearby"`
	Bumped    []*BookingResponse `json:"bumped,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResultResponse {
	res := &BookingResultResponse{
		Booking:   FromBookingView(queries.NewBookingView(r.Booking)),
		Conflicts: FromConflicts(r.Conflicts),
		Nearby:    FromNearby(r.Nearby),
	}
	for _, b := range r.Bumped {
		res.Bumped = append(res.Bumped, FromBookingView(queries.NewBookingView(b)))
	}
	return res
}

type ConflictReportResponse struct {
	HasConflicts bool               `json:"has_conflicts"`
	Conflicts    []ConflictResponse `json:"conflicts"`
	Nearby       []NearbyResponse   `json:"nearby"`
}

func FromConflictReport(r *shared.ConflictReport) *ConflictReportResponse {
	return &ConflictReportResponse{
		HasConflicts: r.HasConflicts(),
		Conflicts:    FromConflicts(r.Conflicts),
		Nearby:       FromNearby(r.Nearby),
	}
}

type SuggestionResponse struct {
	Date      string             `json:"date"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func FromSuggestions(ss []queries.Suggestion) []SuggestionResponse {
	res := make([]SuggestionResponse, len(ss))
	for i, s := range ss {
		res[i] = SuggestionResponse{
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
			Conflicts: FromConflicts(s.Conflicts),
		}
	}
	return res
}
