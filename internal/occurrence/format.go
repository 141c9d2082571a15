package occurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

// FormatTimeRange formats clocks as "9AM - 5PM", or a single "9AM" when
// there is no end.
func FormatTimeRange(start calendar.Clock, end *calendar.Clock) string {
	if end == nil {
		return start.Kitchen()
	}
	return fmt.Sprintf("%s - %s", start.Kitchen(), end.Kitchen())
}

// Describe returns a human-readable line for o, such as
// "every Monday at 2PM" or "the last Friday of every month, 9AM - 5PM".
func Describe(o Occurrence) string {
	var b strings.Builder
	b.WriteString(describeDays(o))

	if start, ok := o.StartTime.Get(); ok {
		if end, ok := o.EndTime.Get(); ok {
			b.WriteString(", ")
			b.WriteString(FormatTimeRange(start, &end))
			if o.Overnight() {
				b.WriteString(" (next day)")
			}
		} else {
			b.WriteString(" at ")
			b.WriteString(start.Kitchen())
		}
	}
	return b.String()
}

func describeDays(o Occurrence) string {
	if o.Kind == Single {
		return "on " + formatDate(o.StartDate)
	}

	var s string
	switch o.Kind {
	case Daily:
		s = "every " + plural(o.Interval, "day")
	case Weekly:
		day := dayName(o.DayOfWeek.OrEmpty())
		if o.Interval > 1 {
			s = fmt.Sprintf("every %d weeks on %s", o.Interval, day)
		} else {
			s = "every " + day
		}
	case DateMonthly:
		s = fmt.Sprintf("the %s of every %s", ordinal(o.DateOfMonth), plural(o.Interval, "month"))
	case DayMonthly:
		week := "last"
		if o.WeekOfMonth != LastWeek {
			week = ordinal(o.WeekOfMonth)
		}
		s = fmt.Sprintf("the %s %s of every %s", week, dayName(o.DayOfWeek.OrEmpty()), plural(o.Interval, "month"))
	}

	if end, ok := o.EndDate.Get(); ok {
		return fmt.Sprintf("%s from %s to %s", s, formatDate(o.StartDate), formatDate(end))
	}
	return fmt.Sprintf("%s starting %s", s, formatDate(o.StartDate))
}

// FormatDay formats a Day as "Mon Sep 22 2008:  2PM, 4PM - 5PM".
func FormatDay(d Day) string {
	parts := make([]string, len(d.Slots))
	for i, s := range d.Slots {
		start, ok := s.Start.Get()
		if !ok {
			parts[i] = "all day"
			continue
		}
		if end, ok := s.End.Get(); ok {
			parts[i] = FormatTimeRange(start, &end)
		} else {
			parts[i] = FormatTimeRange(start, nil)
		}
	}
	return fmt.Sprintf("%s:  %s", formatDate(d.Date), strings.Join(parts, ", "))
}

func formatDate(d calendar.Date) string {
	return d.Time(time.UTC).Format("Mon Jan 2 2006")
}

func dayName(wd calendar.Weekday) string {
	return wd.TimeWeekday().String()
}

// plural renders "day", "other day" or "3 days" for an interval.
func plural(n int, unit string) string {
	switch {
	case n <= 1:
		return unit
	case n == 2:
		return "other " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
