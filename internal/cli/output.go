package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/copiousfreetime/nickel"
)

type occurrenceView struct {
	Kind        string `json:"kind" yaml:"kind"`
	StartDate   string `json:"start_date" yaml:"start_date"`
	EndDate     string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	StartTime   string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Interval    int    `json:"interval,omitempty" yaml:"interval,omitempty"`
	DayOfWeek   string `json:"day_of_week,omitempty" yaml:"day_of_week,omitempty"`
	WeekOfMonth int    `json:"week_of_month,omitempty" yaml:"week_of_month,omitempty"`
	DateOfMonth int    `json:"date_of_month,omitempty" yaml:"date_of_month,omitempty"`
	RRule       string `json:"rrule" yaml:"rrule"`
	Description string `json:"description" yaml:"description"`
}

type phraseView struct {
	Text    string `json:"text" yaml:"text"`
	Matcher string `json:"matcher" yaml:"matcher"`
}

type resultView struct {
	Message     string           `json:"message" yaml:"message"`
	RunDate     string           `json:"run_date" yaml:"run_date"`
	Occurrences []occurrenceView `json:"occurrences" yaml:"occurrences"`
	Phrases     []phraseView     `json:"phrases,omitempty" yaml:"phrases,omitempty"`
}

type slotView struct {
	AllDay     bool   `json:"all_day,omitempty" yaml:"all_day,omitempty"`
	Start      string `json:"start,omitempty" yaml:"start,omitempty"`
	End        string `json:"end,omitempty" yaml:"end,omitempty"`
	Occurrence int    `json:"occurrence" yaml:"occurrence"`
}

type dayView struct {
	Date    string     `json:"date" yaml:"date"`
	Weekday string     `json:"weekday" yaml:"weekday"`
	Slots   []slotView `json:"slots" yaml:"slots"`
}

type agendaView struct {
	Message string    `json:"message" yaml:"message"`
	From    string    `json:"from" yaml:"from"`
	To      string    `json:"to" yaml:"to"`
	Days    []dayView `json:"days" yaml:"days"`
}

func newOccurrenceView(o nickel.Occurrence, loc *time.Location) occurrenceView {
	v := occurrenceView{
		Kind:        o.Kind.String(),
		StartDate:   o.StartDate.String(),
		Interval:    o.Interval,
		WeekOfMonth: o.WeekOfMonth,
		DateOfMonth: o.DateOfMonth,
		RRule:       o.RRuleString(loc),
		Description: nickel.Describe(o),
	}
	if d, ok := o.EndDate.Get(); ok {
		v.EndDate = d.String()
	}
	if c, ok := o.StartTime.Get(); ok {
		v.StartTime = c.String()
	}
	if c, ok := o.EndTime.Get(); ok {
		v.EndTime = c.String()
	}
	if wd, ok := o.DayOfWeek.Get(); ok {
		v.DayOfWeek = wd.String()
	}
	return v
}

func newResultView(res nickel.Result, ref time.Time, explain bool) resultView {
	v := resultView{
		Message:     res.Message,
		RunDate:     ref.Format(time.RFC3339),
		Occurrences: make([]occurrenceView, len(res.Occurrences)),
	}
	for i, o := range res.Occurrences {
		v.Occurrences[i] = newOccurrenceView(o, ref.Location())
	}
	if explain {
		for _, p := range res.Phrases {
			v.Phrases = append(v.Phrases, phraseView(p))
		}
	}
	return v
}

func newAgendaView(a agenda) agendaView {
	v := agendaView{
		Message: a.message,
		From:    a.from.String(),
		To:      a.to.String(),
		Days:    make([]dayView, len(a.days)),
	}
	for i, d := range a.days {
		dv := dayView{
			Date:    d.Date.String(),
			Weekday: d.Date.Weekday().String(),
			Slots:   make([]slotView, len(d.Slots)),
		}
		for j, s := range d.Slots {
			sv := slotView{AllDay: s.AllDay(), Occurrence: s.Index + 1}
			if c, ok := s.Start.Get(); ok {
				sv.Start = c.String()
			}
			if c, ok := s.End.Get(); ok {
				sv.End = c.String()
			}
			dv.Slots[j] = sv
		}
		v.Days[i] = dv
	}
	return v
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("cannot encode as %q", format)
}
