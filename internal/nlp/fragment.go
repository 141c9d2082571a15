package nlp

import (
	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
	"github.com/copiousfreetime/nickel/internal/occurrence"
)

// Span is a half-open range of token indices.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and o share a token.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Fragment is the partial date or time value produced by a matcher. The set of
// implementations is closed: DateFragment, DateRangeFragment,
// RecurrenceFragment, TimeFragment, TimeRangeFragment and TimeListFragment.
type Fragment interface {
	fragment()
}

// Role says how a DateFragment applies to its neighbours.
type Role int

const (
	RolePlain Role = iota
	RoleStart      // "starting tomorrow"
	RoleUntil      // "until friday"
)

type DateFragment struct {
	Date calendar.Date
	At   mo.Option[calendar.Clock] // set by hour and minute offsets
	Role Role
}

type DateRangeFragment struct {
	Start calendar.Date
	End   calendar.Date
}

type RecurrenceFragment struct {
	Kind        occurrence.Kind
	Interval    int
	DayOfWeek   mo.Option[calendar.Weekday]
	WeekOfMonth int
	DateOfMonth int
	Start       calendar.Date
	Until       mo.Option[calendar.Date]
}

type TimeFragment struct {
	Clock calendar.Clock
}

type TimeRangeFragment struct {
	Start calendar.Clock
	End   calendar.Clock
}

// TimeItem is one element of a time list: a point, or a range when End is set.
type TimeItem struct {
	Start calendar.Clock
	End   mo.Option[calendar.Clock]
}

type TimeListFragment struct {
	Items []TimeItem
}

func (DateFragment) fragment()       {}
func (DateRangeFragment) fragment()  {}
func (RecurrenceFragment) fragment() {}
func (TimeFragment) fragment()       {}
func (TimeRangeFragment) fragment()  {}
func (TimeListFragment) fragment()   {}

// isTime reports whether f describes a time of day rather than a date.
func isTime(f Fragment) bool {
	switch f.(type) {
	case TimeFragment, TimeRangeFragment, TimeListFragment:
		return true
	case DateFragment, DateRangeFragment, RecurrenceFragment:
		return false
	}
	panic("nlp: unknown fragment type")
}

// timeItems flattens a time fragment into its items.
func timeItems(f Fragment) []TimeItem {
	switch v := f.(type) {
	case TimeFragment:
		return []TimeItem{{Start: v.Clock}}
	case TimeRangeFragment:
		return []TimeItem{{Start: v.Start, End: mo.Some(v.End)}}
	case TimeListFragment:
		return v.Items
	}
	return nil
}
