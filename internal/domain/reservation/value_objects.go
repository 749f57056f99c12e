package reservation

import (
	"regexp"
	"strings"
	"time"

	"visit-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone. The zero value is invalid.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar components of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate accepts exactly YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.Formatf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Time() time.Time    { return d.time() }
func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) String() string     { return d.time().Format(DateLayout) }
func (d Date) AddDays(n int) Date { return DateOf(d.time().AddDate(0, 0, n)) }

func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) Before(o Date) bool {
	return d.time().Before(o.time())
}

func (d Date) After(o Date) bool {
	return d.time().After(o.time())
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive window of calendar days.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) DateRange {
	return DateRange{start: start, end: end}
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

func (r DateRange) IsEmpty() bool {
	return r.start.After(r.end)
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Days returns the number of calendar days in the window, 0 when empty.
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	const secondsPerDay = 24 * 60 * 60
	return int((r.end.time().Unix()-r.start.time().Unix())/secondsPerDay) + 1
}

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,}$`)

type Attendee struct {
	value string
}

func NewAttendee(value string) (Attendee, error) {
	if strings.TrimSpace(value) == "" {
		return Attendee{}, errs.Validation("missing attendee identifier")
	}
	if !emailPattern.MatchString(value) {
		return Attendee{}, errs.Formatf("malformed email address %q", value)
	}
	return Attendee{value: value}, nil
}

func (a Attendee) String() string {
	return a.value
}
