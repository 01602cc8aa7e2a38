// Package localtime turns the calendar date, wall-clock time and IANA zone a
// requester types into absolute instants.
package localtime

import (
	"regexp"
	"strconv"
	"time"

	"range-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var timeOfDayPattern = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// ErrNonexistentTime marks wall-clock times skipped by a DST transition.
var ErrNonexistentTime = errs.New("wall-clock time does not exist in timezone")

// TimeOfDay is a validated HH:MM wall-clock reading.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return pad2(t.Hour) + ":" + pad2(t.Minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, errs.Validationf("time %q must be formatted HH:MM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return TimeOfDay{}, errs.Validationf("hour %d out of range 00-23", hour)
	}
	if minute > 59 {
		return TimeOfDay{}, errs.Validationf("minute %d out of range 00-59", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Validationf("date %q must be formatted YYYY-MM-DD", s)
	}
	return d, nil
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, errs.Validationf("timezone is required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Validation(errs.Wrapf(err, "unknown timezone %q", name))
	}
	return loc, nil
}

// Combine resolves date + HH:MM in the named zone to a UTC instant. A wall
// time inside a spring-forward gap is rejected with ErrNonexistentTime; a
// repeated fall-back time resolves to whichever instant the time package picks.
func Combine(date, timeOfDay, timezone string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), tod.Hour, tod.Minute, 0, 0, loc)
	if t.Hour() != tod.Hour || t.Minute() != tod.Minute {
		return time.Time{}, errs.Validation(errs.Mark(
			errs.Newf("%s %s does not exist in %s (daylight saving transition)", date, tod, timezone),
			ErrNonexistentTime))
	}
	return t.UTC(), nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}

// DayBounds returns the half-open [midnight, next midnight) of the calendar
// day containing t in loc, expressed in UTC.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
