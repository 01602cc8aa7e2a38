package request

import (
	"range-booking/internal/usecase/commands"
	"range-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateBookingRequest uses pointer attestations so an omitted flag is
// rejected at binding while an explicit false reaches the engine.
type CreateBookingRequest struct {
	GroupName            string   `json:"group_name" binding:"required,max=200"`
	ContactName          string   `json:"contact_name" binding:"required,max=200"`
	ContactEmail         string   `json:"contact_email" binding:"required,email,max=320"`
	ContactPhone         string   `json:"contact_phone" binding:"omitempty,max=50"`
	OfficerName          string   `json:"officer_name" binding:"required,max=200"`
	OfficerQualification string   `json:"officer_qualification" binding:"required,max=200"`
	Date                 string   `json:"date" binding:"required" example:"2025-06-14"`
	StartTime            string   `json:"start_time" binding:"required" example:"09:00"`
	EndTime              string   `json:"end_time" binding:"required" example:"12:00"`
	Timezone             string   `json:"timezone" binding:"omitempty,max=64" example:"America/Chicago"`
	ResourceIDs          []string `json:"resource_ids" binding:"required,min=1,dive,required"`
	SafetyAttested       *bool    `json:"safety_attested" binding:"required"`
	WaiverAttested       *bool    `json:"waiver_attested" binding:"required"`
	InsuranceAttested    *bool    `json:"insurance_attested" binding:"required"`
	AttestationDetails   string   `json:"attestation_details" binding:"max=2000"`
	Purpose              string   `json:"purpose" binding:"max=2000"`
}

func (r *CreateBookingRequest) ToInput(actor string) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Actor:                actor,
		GroupName:            r.GroupName,
		ContactName:          r.ContactName,
		ContactEmail:         r.ContactEmail,
		ContactPhone:         r.ContactPhone,
		OfficerName:          r.OfficerName,
		OfficerQualification: r.OfficerQualification,
		Date:                 r.Date,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		Timezone:             r.Timezone,
		ResourceIDs:          r.ResourceIDs,
		SafetyAttested:       deref(r.SafetyAttested),
		WaiverAttested:       deref(r.WaiverAttested),
		InsuranceAttested:    deref(r.InsuranceAttested),
		AttestationDetails:   r.AttestationDetails,
		Purpose:              r.Purpose,
	}
}

type DecisionRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

func (r *DecisionRequest) ToInput(actor string) commands.DecisionInput {
	return commands.DecisionInput{Actor: actor, Reason: r.Reason}
}

type OverrideRequest struct {
	OverrideReason string `json:"override_reason" binding:"required,max=2000"`
	Reason         string `json:"reason" binding:"max=2000"`
}

func (r *OverrideRequest) ToInput(actor string) commands.OverrideInput {
	return commands.OverrideInput{Actor: actor, Reason: r.Reason, OverrideReason: r.OverrideReason}
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Timezone  string `json:"timezone" binding:"omitempty,max=64"`
	Reason    string `json:"reason" binding:"max=2000"`
}

func (r *RescheduleRequest) ToInput(actor string) commands.RescheduleInput {
	return commands.RescheduleInput{
		Actor:     actor,
		Reason:    r.Reason,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Timezone:  r.Timezone,
	}
}

type ConflictCheckRequest struct {
	Date             string     `json:"date" binding:"required"`
	StartTime        string     `json:"start_time" binding:"required"`
	EndTime          string     `json:"end_time" binding:"required"`
	Timezone         string     `json:"timezone" binding:"omitempty,max=64"`
	ResourceIDs      []string   `json:"resource_ids" binding:"required,min=1,dive,required"`
	ExcludeBookingID *uuid.UUID `json:"exclude_booking_id"`
}

func (r *ConflictCheckRequest) ToInput() queries.ConflictCheckInput {
	return queries.ConflictCheckInput{
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Timezone:         r.Timezone,
		ResourceIDs:      r.ResourceIDs,
		ExcludeBookingID: r.ExcludeBookingID,
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}
