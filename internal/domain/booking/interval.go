package booking

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open range [start, end) of absolute instants.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start.UTC(), end: end.UTC()}, nil
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Overlaps is symmetric; touching endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && i.end.After(o.start)
}

func (i Interval) Equal(o Interval) bool {
	return i.start.Equal(o.start) && i.end.Equal(o.end)
}

// Cover returns the smallest interval containing both.
func (i Interval) Cover(o Interval) Interval {
	c := i
	if o.start.Before(c.start) {
		c.start = o.start
	}
	if o.end.After(c.end) {
		c.end = o.end
	}
	return c
}
