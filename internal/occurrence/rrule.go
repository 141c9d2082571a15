package occurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

var rruleWeekdays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// rruleWeekday maps a calendar weekday onto rrule's, optionally pinned to
// the nth week of the month (negative counts from the end).
func rruleWeekday(wd calendar.Weekday, nth int) rrule.Weekday {
	day := rruleWeekdays[wd]
	if nth != 0 {
		return day.Nth(nth)
	}
	return day
}

// ROption returns the recurrence rule options of o. DTSTART is the first day
// at its start time (midnight without one) in loc; an end date becomes an
// UNTIL at the last second of that day.
func (o Occurrence) ROption(loc *time.Location) rrule.ROption {
	start := o.StartDate.Time(loc)
	if c, ok := o.StartTime.Get(); ok {
		start = o.StartDate.At(c, loc)
	}
	opts := rrule.ROption{
		Dtstart:  start,
		Interval: max(o.Interval, 1),
	}

	switch o.Kind {
	case Single:
		opts.Freq = rrule.DAILY
		opts.Count = 1
	case Daily:
		opts.Freq = rrule.DAILY
	case Weekly:
		opts.Freq = rrule.WEEKLY
		opts.Byweekday = []rrule.Weekday{rruleWeekday(o.DayOfWeek.OrEmpty(), 0)}
	case DateMonthly:
		opts.Freq = rrule.MONTHLY
		opts.Bymonthday = []int{o.DateOfMonth}
	case DayMonthly:
		opts.Freq = rrule.MONTHLY
		opts.Byweekday = []rrule.Weekday{rruleWeekday(o.DayOfWeek.OrEmpty(), o.WeekOfMonth)}
	}

	if end, ok := o.EndDate.Get(); ok && o.Kind != Single {
		opts.Until = time.Date(end.Year, end.Month, end.Day, 23, 59, 59, 0, loc)
	}
	return opts
}

// RRule builds the rrule-go rule for o in loc.
func (o Occurrence) RRule(loc *time.Location) (*rrule.RRule, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	r, err := rrule.NewRRule(o.ROption(loc))
	if err != nil {
		return nil, fmt.Errorf("building rule for %s occurrence: %w", o.Kind, err)
	}
	return r, nil
}

// RRuleString returns the RRULE value of o without its DTSTART, e.g.
// "FREQ=WEEKLY;INTERVAL=1;BYDAY=MO".
func (o Occurrence) RRuleString(loc *time.Location) string {
	opts := o.ROption(loc)
	return opts.RRuleString()
}
