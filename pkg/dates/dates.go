// Package dates provides a calendar-date value type with no time-of-day
// component. Travel dates are calendar days: parsing a literal like
// "2025-03-01" must yield March 1st regardless of the host timezone, which
// rules out handing the raw string to a generic timestamp parser.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format")

var calendarLiteral = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// freeformLayouts are tried in order when the input is not a plain
// YYYY-MM-DD literal. Timestamps are truncated to their calendar day.
var freeformLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
	"01/02/2006",
}

// Date is a calendar day. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates a timestamp to its calendar day in the timestamp's
// own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

// Time returns the instant at local midnight of d in loc. This is the
// representation persisted to the store.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsValid reports whether d names a real calendar day. time.Date normalizes
// out-of-range components (February 31st becomes March 3rd), so a round-trip
// comparison catches them.
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

// Parse converts user-supplied text into a Date. A strict YYYY-MM-DD literal
// is decomposed into integer components and constructed directly, so the
// result cannot shift across a timezone boundary. Anything else falls back
// to freeform layout parsing. Returns ErrInvalidDate when neither variant
// yields a real calendar day.
func Parse(s string) (Date, error) {
	if m := calendarLiteral.FindStringSubmatch(s); m != nil {
		d := Date{
			Year:  atoi(m[1]),
			Month: time.Month(atoi(m[2])),
			Day:   atoi(m[3]),
		}
		if !d.IsValid() {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return d, nil
	}

	for _, layout := range freeformLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// atoi is safe here: inputs are regexp-matched digit runs.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
