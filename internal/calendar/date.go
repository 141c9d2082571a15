package calendar

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// Weekday numbers days Monday = 0 through Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// FromTimeWeekday converts a time.Weekday (Sunday = 0) into a Weekday.
func FromTimeWeekday(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// TimeWeekday converts w back into a time.Weekday.
func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// Date is a calendar day without a time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day. Out of range values are
// normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an 8 digit "yyyymmdd" string.
func ParseDate(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, fmt.Errorf("invalid date %q, expected yyyymmdd", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	year, month, day := n/10000, time.Month(n/100%100), n%100
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month in %q", s)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("invalid day in %q", s)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustParseDate is like ParseDate but panics on error. Intended for tests and
// static tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// Valid reports whether the date names a real calendar day.
func (d Date) Valid() bool {
	return d.Month >= time.January && d.Month <= time.December &&
		d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At returns d at clock c in loc.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

func (d Date) AddWeeks(n int) Date {
	return d.AddDays(7 * n)
}

// AddMonths moves d by n months, clamping the day to the end of the target
// month (Jan 31 + 1 month is Feb 28 or 29).
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.Year, d.Month+time.Month(n), 1)
	return Date{Year: first.Year, Month: first.Month, Day: min(d.Day, DaysIn(first.Year, first.Month))}
}

// AddYears moves d by n years; Feb 29 becomes Feb 28 in non leap years.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	return Date{Year: year, Month: d.Month, Day: min(d.Day, DaysIn(year, d.Month))}
}

// Weekday returns the day of the week with Monday = 0.
func (d Date) Weekday() Weekday {
	return FromTimeWeekday(d.Time(time.UTC).Weekday())
}

func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// OnOrAfter returns the first date on or after d that falls on wd.
func (d Date) OnOrAfter(wd Weekday) Date {
	return d.AddDays((int(wd) - int(d.Weekday()) + 7) % 7)
}

// NextWeekday returns the first date strictly after d that falls on wd.
func (d Date) NextWeekday(wd Weekday) Date {
	return d.AddDays(1).OnOrAfter(wd)
}

// OnOrBefore returns the last date on or before d that falls on wd.
func (d Date) OnOrBefore(wd Weekday) Date {
	return d.AddDays(-((int(d.Weekday()) - int(wd) + 7) % 7))
}

// NthWeekday returns the nth wd of d's month. n = -1 selects the last one.
// The result may spill into the next month when n is too large.
func (d Date) NthWeekday(n int, wd Weekday) Date {
	if n < 0 {
		return d.LastOfMonth().OnOrBefore(wd)
	}
	return d.FirstOfMonth().OnOrAfter(wd).AddWeeks(n - 1)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// DaysUntil returns the number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time(time.UTC).Sub(d.Time(time.UTC)).Hours() / 24)
}

// String returns d as "2006-01-02".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compact returns d as "20060102".
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ParseMonth parses a month name or an abbreviation of at least three letters.
func ParseMonth(s string) (time.Month, bool) {
	if len(s) < 3 {
		return 0, false
	}
	if s == "sept" {
		return time.September, true
	}
	m, err := datetime.ParseMonth(s)
	if err != nil {
		return 0, false
	}
	// ParseMonth accepts any prefix; reject prefixes longer than three letters
	// that are not the full name, e.g. "marc".
	full := time.Month(m).String()
	if len(s) > 3 && len(s) != len(full) {
		return 0, false
	}
	return time.Month(m), true
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
