package occurrence

import (
	"sort"
	"time"

	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

// Slot is one concrete happening of an occurrence on a day.
type Slot struct {
	Start mo.Option[calendar.Clock]
	End   mo.Option[calendar.Clock]
	Index int // position of the producing occurrence in the input
}

// AllDay reports whether the slot has no time of day.
func (s Slot) AllDay() bool {
	return s.Start.IsAbsent()
}

// Day holds every slot that falls on a date.
type Day struct {
	Date  calendar.Date
	Slots []Slot
}

// Expand evaluates occurrences into concrete days between from and to
// (inclusive), interpreting clocks in loc. The result is sorted by date, and
// slots within a day by start time with all-day slots first.
func Expand(occs []Occurrence, from, to calendar.Date, loc *time.Location) ([]Day, error) {
	if loc == nil {
		loc = time.Local
	}
	dayMap := make(map[calendar.Date][]Slot)

	rangeStart := from.Time(loc)
	rangeEnd := time.Date(to.Year, to.Month, to.Day, 23, 59, 59, 0, loc)

	for i, o := range occs {
		r, err := o.RRule(loc)
		if err != nil {
			return nil, err
		}
		slot := Slot{Start: o.StartTime, End: o.EndTime, Index: i}
		for _, t := range r.Between(rangeStart, rangeEnd, true) {
			d := calendar.DateOf(t.In(loc))
			dayMap[d] = append(dayMap[d], slot)
		}
	}

	result := make([]Day, 0, len(dayMap))
	for d, slots := range dayMap {
		sort.SliceStable(slots, func(i, j int) bool {
			return slotMinutes(slots[i]) < slotMinutes(slots[j])
		})
		result = append(result, Day{Date: d, Slots: slots})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result, nil
}

func slotMinutes(s Slot) int {
	if c, ok := s.Start.Get(); ok {
		return c.Minutes()
	}
	return -1
}
