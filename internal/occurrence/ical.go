package occurrence

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const productID = "-//nickel//Natural Language Events//EN"

// CalendarOptions controls how occurrences are written as VEVENTs.
type CalendarOptions struct {
	Summary  string
	Location *time.Location // clocks are interpreted here; defaults to time.Local
	Stamp    time.Time      // DTSTAMP of every event; defaults to now
	NewUID   func() string  // defaults to a random UUID
}

// Calendar builds a VCALENDAR holding one VEVENT per occurrence. Recurring
// occurrences carry an RRULE, events without a time of day are all-day, and
// an end time before the start time ends on the following day.
func Calendar(occs []Occurrence, opts CalendarOptions) (*ical.Calendar, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	newUID := opts.NewUID
	if newUID == nil {
		newUID = uuid.NewString
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, o := range occs {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("exporting %s occurrence: %w", o.Kind, err)
		}
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, newUID())
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		if opts.Summary != "" {
			event.Props.SetText(ical.PropSummary, opts.Summary)
		}
		setEventTimes(event, o, loc)
		if o.Kind != Single {
			rule := ical.NewProp(ical.PropRecurrenceRule)
			rule.Value = eventRRule(o, loc)
			event.Props.Set(rule)
		}
		cal.Children = append(cal.Children, event.Component)
	}
	return cal, nil
}

// WriteCalendar encodes cal as an iCalendar stream.
func WriteCalendar(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func setEventTimes(event *ical.Event, o Occurrence, loc *time.Location) {
	start, ok := o.StartTime.Get()
	if !ok {
		event.Props.SetDate(ical.PropDateTimeStart, o.StartDate.Time(loc))
		event.Props.SetDate(ical.PropDateTimeEnd, o.StartDate.AddDays(1).Time(loc))
		return
	}
	event.Props.SetDateTime(ical.PropDateTimeStart, o.StartDate.At(start, loc))
	if end, ok := o.EndTime.Get(); ok {
		endDate := o.StartDate
		if o.Overnight() {
			endDate = endDate.AddDays(1)
		}
		event.Props.SetDateTime(ical.PropDateTimeEnd, endDate.At(end, loc))
	}
}

// eventRRule renders the RRULE of o. All-day events need a DATE valued
// UNTIL to match their DTSTART.
func eventRRule(o Occurrence, loc *time.Location) string {
	end, bounded := o.EndDate.Get()
	if o.StartTime.IsPresent() || !bounded {
		return o.RRuleString(loc)
	}
	opts := o.ROption(loc)
	opts.Until = time.Time{}
	return opts.RRuleString() + ";UNTIL=" + end.Compact()
}
