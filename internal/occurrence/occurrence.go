package occurrence

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

// Kind is the recurrence shape of an Occurrence.
type Kind int

const (
	Single Kind = iota
	Daily
	Weekly
	DateMonthly // fixed day of the month, e.g. the 22nd
	DayMonthly  // nth weekday of the month, e.g. the second tuesday
)

var kindNames = map[Kind]string{
	Single:      "single",
	Daily:       "daily",
	Weekly:      "weekly",
	DateMonthly: "datemonthly",
	DayMonthly:  "daymonthly",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// LastWeek is the WeekOfMonth value for "the last <weekday> of the month".
const LastWeek = -1

// Occurrence is one resolved event timing.
type Occurrence struct {
	Kind        Kind
	StartDate   calendar.Date
	EndDate     mo.Option[calendar.Date]
	StartTime   mo.Option[calendar.Clock]
	EndTime     mo.Option[calendar.Clock]
	Interval    int                         // 0 for Single
	DayOfWeek   mo.Option[calendar.Weekday] // Weekly and DayMonthly
	WeekOfMonth int                         // DayMonthly: 1-4 or LastWeek
	DateOfMonth int                         // DateMonthly: 1-31
}

// Validate checks the field combinations each Kind requires.
func (o Occurrence) Validate() error {
	if !o.StartDate.Valid() {
		return fmt.Errorf("invalid start date %s", o.StartDate)
	}
	if end, ok := o.EndDate.Get(); ok && end.Before(o.StartDate) {
		return fmt.Errorf("end date %s before start date %s", end, o.StartDate)
	}
	if o.EndTime.IsPresent() && o.StartTime.IsAbsent() {
		return fmt.Errorf("end time without start time")
	}
	switch o.Kind {
	case Single:
		if o.Interval != 0 || o.DayOfWeek.IsPresent() || o.WeekOfMonth != 0 || o.DateOfMonth != 0 {
			return fmt.Errorf("single occurrence carries recurrence fields")
		}
	case Daily:
		if o.Interval < 1 {
			return fmt.Errorf("daily occurrence needs interval >= 1, got %d", o.Interval)
		}
	case Weekly:
		if o.Interval < 1 || o.DayOfWeek.IsAbsent() {
			return fmt.Errorf("weekly occurrence needs a day of week and interval >= 1")
		}
	case DateMonthly:
		if o.Interval < 1 || o.DateOfMonth < 1 || o.DateOfMonth > 31 {
			return fmt.Errorf("datemonthly occurrence needs date of month 1-31 and interval >= 1")
		}
	case DayMonthly:
		if o.DayOfWeek.IsAbsent() || (o.WeekOfMonth != LastWeek && (o.WeekOfMonth < 1 || o.WeekOfMonth > 4)) {
			return fmt.Errorf("daymonthly occurrence needs a day of week and week of month 1-4 or -1")
		}
	default:
		return fmt.Errorf("unknown occurrence kind %d", int(o.Kind))
	}
	return nil
}

// WithTimes returns o with its time of day set.
func (o Occurrence) WithTimes(start calendar.Clock, end mo.Option[calendar.Clock]) Occurrence {
	o.StartTime = mo.Some(start)
	o.EndTime = end
	return o
}

// Overnight reports whether the end time falls on the following day.
func (o Occurrence) Overnight() bool {
	start, okStart := o.StartTime.Get()
	end, okEnd := o.EndTime.Get()
	return okStart && okEnd && end.Before(start)
}
