package resource

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyResourceID     = errors.New("resource id cannot be empty")
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidResourceType = errors.New("resource type must be a lowercase token")
)

const (
	MaxResourceNameLength = 255
)

// Type is open-ended; these are the kinds a range typically books.
type Type string

const (
	TypeBay      Type = "bay"
	TypeBuilding Type = "building"
	TypeTarget   Type = "target"
)

var typePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (t Type) IsValid() bool {
	return typePattern.MatchString(string(t))
}

// Resource is never deleted, only deactivated. Deactivation leaves existing
// bookings alone but blocks new ones.
type Resource struct {
	id        string
	name      string
	kind      Type
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(id, name string, kind Type, now time.Time) (*Resource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyResourceID
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, ErrInvalidResourceType
	}
	return &Resource{
		id:        id,
		name:      strings.TrimSpace(name),
		kind:      kind,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructResource(id, name string, kind Type, active bool, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		kind:      kind,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Resource) Deactivate(now time.Time) {
	r.active = false
	r.updatedAt = now
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() string           { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Type() Type           { return r.kind }
func (r *Resource) Active() bool         { return r.active }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
