// Package nickel extracts the message and the occurrences of an event from
// a plain English sentence:
//
//	res := nickel.Parse("lunch with bob tomorrow at noon", time.Now())
//	res.Message     // "lunch with bob"
//	res.Occurrences // one Single occurrence tomorrow at 12:00
package nickel

import (
	"io"
	"time"

	"github.com/copiousfreetime/nickel/internal/calendar"
	"github.com/copiousfreetime/nickel/internal/nlp"
	"github.com/copiousfreetime/nickel/internal/occurrence"
)

type (
	Result          = nlp.Result
	Phrase          = nlp.Phrase
	Occurrence      = occurrence.Occurrence
	Kind            = occurrence.Kind
	Day             = occurrence.Day
	Slot            = occurrence.Slot
	CalendarOptions = occurrence.CalendarOptions
	Date            = calendar.Date
	Clock           = calendar.Clock
	Weekday         = calendar.Weekday
)

const (
	Single      = occurrence.Single
	Daily       = occurrence.Daily
	Weekly      = occurrence.Weekly
	DateMonthly = occurrence.DateMonthly
	DayMonthly  = occurrence.DayMonthly
	LastWeek    = occurrence.LastWeek
)

// Parse resolves text against ref. It is safe for concurrent use.
func Parse(text string, ref time.Time) Result {
	return nlp.Parse(text, ref)
}

// Expand lists the days between from and to (inclusive) on which occs happen.
func Expand(occs []Occurrence, from, to Date, loc *time.Location) ([]Day, error) {
	return occurrence.Expand(occs, from, to, loc)
}

// Describe returns a one-line English description of o.
func Describe(o Occurrence) string {
	return occurrence.Describe(o)
}

// FormatDay returns a one-line summary of the slots on d.
func FormatDay(d Day) string {
	return occurrence.FormatDay(d)
}

// WriteICS writes occs as an iCalendar stream with one VEVENT each.
func WriteICS(w io.Writer, occs []Occurrence, opts CalendarOptions) error {
	cal, err := occurrence.Calendar(occs, opts)
	if err != nil {
		return err
	}
	return occurrence.WriteCalendar(w, cal)
}
