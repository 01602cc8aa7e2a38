package booking

import (
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Requester struct {
	GroupName    string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

type Officer struct {
	Name          string
	Qualification string
	Whitelisted   bool
}

type Attestation struct {
	Safety    bool
	Waiver    bool
	Insurance bool
	Details   string
}

func (a Attestation) Complete() bool {
	return a.Safety && a.Waiver && a.Insurance
}

// LocalSlot is the wall-clock form the requester entered.
type LocalSlot struct {
	Date     string // YYYY-MM-DD
	Start    string // HH:MM
	End      string // HH:MM
	Timezone string
}

type Schedule struct {
	Interval Interval
	Local    LocalSlot
}

type NewBookingParams struct {
	ID          uuid.UUID
	Requester   Requester
	Officer     Officer
	Schedule    Schedule
	ResourceIDs []string
	Attestation Attestation
	Purpose     string
	Now         time.Time
}

// Snapshot is the full persisted state of a booking.
type Snapshot struct {
	ID          uuid.UUID
	RequestCode string
	Status      Status
	Requester   Requester
	Officer     Officer
	Schedule    Schedule
	ResourceIDs []string
	Attestation Attestation
	Purpose     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Booking struct {
	id          uuid.UUID
	requestCode string
	status      Status
	requester   Requester
	officer     Officer
	schedule    Schedule
	resourceIDs []string
	attestation Attestation
	purpose     string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(p NewBookingParams) (*Booking, error) {
	if strings.TrimSpace(p.Requester.GroupName) == "" {
		return nil, ErrGroupNameRequired
	}
	if strings.TrimSpace(p.Requester.ContactName) == "" || strings.TrimSpace(p.Requester.ContactEmail) == "" {
		return nil, ErrContactRequired
	}
	if strings.TrimSpace(p.Officer.Name) == "" || strings.TrimSpace(p.Officer.Qualification) == "" {
		return nil, ErrOfficerRequired
	}
	if !p.Attestation.Complete() {
		return nil, ErrAttestationIncomplete
	}
	if p.Schedule.Interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	ids, err := NormalizeResourceIDs(p.ResourceIDs)
	if err != nil {
		return nil, err
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := p.Now.UTC()

	return &Booking{
		id:          id,
		requestCode: NewRequestCode(now, id),
		status:      StatusPending,
		requester:   p.Requester,
		officer:     p.Officer,
		schedule:    p.Schedule,
		resourceIDs: ids,
		attestation: p.Attestation,
		purpose:     strings.TrimSpace(p.Purpose),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(s Snapshot) *Booking {
	return &Booking{
		id:          s.ID,
		requestCode: s.RequestCode,
		status:      s.Status,
		requester:   s.Requester,
		officer:     s.Officer,
		schedule:    s.Schedule,
		resourceIDs: slices.Clone(s.ResourceIDs),
		attestation: s.Attestation,
		purpose:     s.Purpose,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

// requestCodeBytes is how much of the booking id goes into the request code.
// The first six bytes of a v4 uuid are fully random.
const requestCodeBytes = 6

// NewRequestCode formats RB-YYYYMMDD-XXXXXXXXXXXX from the creation date and
// the leading bytes of the booking id.
func NewRequestCode(createdAt time.Time, id uuid.UUID) string {
	return "RB-" + createdAt.UTC().Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(id[:requestCodeBytes]))
}

// NormalizeResourceIDs trims, de-duplicates and sorts resource ids.
func NormalizeResourceIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyResourceSet
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrEmptyResourceID
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:          b.id,
		RequestCode: b.requestCode,
		Status:      b.status,
		Requester:   b.requester,
		Officer:     b.officer,
		Schedule:    b.schedule,
		ResourceIDs: slices.Clone(b.resourceIDs),
		Attestation: b.attestation,
		Purpose:     b.purpose,
		CreatedAt:   b.createdAt,
		UpdatedAt:   b.updatedAt,
	}
}

// CanApply reports whether action is permitted from the current status.
func (b *Booking) CanApply(action Action) error {
	if !action.permits(b.status) {
		return &InvalidStateTransitionError{Current: b.status, Action: action}
	}
	return nil
}

// Apply moves the booking along the transition table and returns the status
// it left. Reschedule has its own entry point because it also moves the slot.
func (b *Booking) Apply(action Action, now time.Time) (Status, error) {
	if action == ActionReschedule {
		return "", &InvalidStateTransitionError{Current: b.status, Action: action}
	}
	if err := b.CanApply(action); err != nil {
		return "", err
	}
	from := b.status
	b.status = action.target()
	b.updatedAt = now.UTC()
	return from, nil
}

// Reschedule replaces the slot in place and stamps the rescheduled status.
// The resource set never changes. Returns the status and schedule it left.
func (b *Booking) Reschedule(next Schedule, now time.Time) (Status, Schedule, error) {
	if err := b.CanApply(ActionReschedule); err != nil {
		return "", Schedule{}, err
	}
	if next.Interval.IsZero() {
		return "", Schedule{}, ErrInvalidInterval
	}
	from, prev := b.status, b.schedule
	b.schedule = next
	b.status = StatusRescheduled
	b.updatedAt = now.UTC()
	return from, prev, nil
}

// SharedResources returns the ids present both on the booking and in ids,
// in sorted order. ids must already be sorted.
func (b *Booking) SharedResources(ids []string) []string {
	var shared []string
	for _, id := range b.resourceIDs {
		if _, found := slices.BinarySearch(ids, id); found {
			shared = append(shared, id)
		}
	}
	return shared
}

func (b *Booking) IsActive() bool { return b.status.IsActive() }

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) RequestCode() string      { return b.requestCode }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Requester() Requester     { return b.requester }
func (b *Booking) Officer() Officer         { return b.officer }
func (b *Booking) Schedule() Schedule       { return b.schedule }
func (b *Booking) Interval() Interval       { return b.schedule.Interval }
func (b *Booking) ResourceIDs() []string    { return slices.Clone(b.resourceIDs) }
func (b *Booking) Attestation() Attestation { return b.attestation }
func (b *Booking) Purpose() string          { return b.purpose }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
