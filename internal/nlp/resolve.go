package nlp

import (
	"slices"

	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
	"github.com/copiousfreetime/nickel/internal/occurrence"
)

// entry is one accepted fragment and the index of the match that produced it.
type entry struct {
	frag  Fragment
	match int
}

func flatten(matches []Match) []entry {
	var out []entry
	for n, m := range matches {
		for _, f := range m.Fragments {
			out = append(out, entry{frag: f, match: n})
		}
	}
	return out
}

// resolve turns accepted matches into occurrences.
func resolve(matches []Match, ref Reference) []occurrence.Occurrence {
	entries := attachBounds(flatten(matches), ref)
	if len(entries) == 0 {
		return nil
	}
	groups := groupEntries(entries)
	kinds := make([]bool, len(groups))
	for n, g := range groups {
		kinds[n] = g.time
	}
	targets := bindGroups(kinds)

	var out []occurrence.Occurrence
	dated := false
	for n, g := range groups {
		if g.time {
			continue
		}
		dated = true
		var times []entry
		for t, target := range targets {
			if groups[t].time && target == n {
				times = append(times, groups[t].entries...)
			}
		}
		out = append(out, expand(g.entries, times)...)
	}
	if !dated {
		today := []entry{{frag: DateFragment{Date: ref.Date}, match: -1}}
		out = expand(today, entries)
	}
	return out
}

// attachBounds folds "starting X" and "until X" into the nearest recurrence or
// range, preferring one before the bound. Bounds with nothing to attach to
// become a plain date or a range from the reference date.
func attachBounds(entries []entry, ref Reference) []entry {
	res := slices.Clone(entries)
	drop := make([]bool, len(res))
	for i, e := range res {
		df, ok := e.frag.(DateFragment)
		if !ok || df.Role == RolePlain {
			continue
		}
		t := boundTarget(res, drop, i)
		if t < 0 {
			res[i].frag = unboundDate(df, ref)
			continue
		}
		res[t].frag = applyBound(res[t].frag, df)
		drop[i] = true
	}
	var out []entry
	for i, e := range res {
		if !drop[i] {
			out = append(out, e)
		}
	}
	return out
}

func boundTarget(entries []entry, drop []bool, i int) int {
	boundable := func(j int) bool {
		if drop[j] {
			return false
		}
		switch entries[j].frag.(type) {
		case RecurrenceFragment, DateRangeFragment:
			return true
		}
		return false
	}
	for j := i - 1; j >= 0; j-- {
		if boundable(j) {
			return j
		}
	}
	for j := i + 1; j < len(entries); j++ {
		if boundable(j) {
			return j
		}
	}
	return -1
}

func applyBound(target Fragment, bound DateFragment) Fragment {
	from, until := mo.None[calendar.Date](), mo.None[calendar.Date]()
	if bound.Role == RoleStart {
		from = mo.Some(bound.Date)
	} else {
		until = mo.Some(bound.Date)
	}
	switch t := target.(type) {
	case RecurrenceFragment:
		return boundRecurrence(t, from, until)
	case DateRangeFragment:
		if d, ok := from.Get(); ok {
			t.Start = d
		}
		if d, ok := until.Get(); ok {
			t.End = d
		}
		return t
	}
	return target
}

func unboundDate(bound DateFragment, ref Reference) Fragment {
	if bound.Role == RoleUntil && bound.Date.After(ref.Date) {
		return DateRangeFragment{Start: ref.Date, End: bound.Date}
	}
	bound.Role = RolePlain
	return bound
}

// group is a maximal run of date fragments or of time fragments.
type group struct {
	time    bool
	entries []entry
}

func groupEntries(entries []entry) []group {
	var groups []group
	for _, e := range entries {
		t := isTime(e.frag)
		if len(groups) == 0 || groups[len(groups)-1].time != t {
			groups = append(groups, group{time: t})
		}
		groups[len(groups)-1].entries = append(groups[len(groups)-1].entries, e)
	}
	return groups
}

// bindGroups decides which date group each time group applies to. isTime
// lists the groups in sentence order. The result holds, for a time group, the
// index of its date group or -1 when there is none, and for a date group its
// own index.
//
// When the sentence opens with a time group, times bind forward to the next
// date group ("at 4pm on monday"); otherwise they bind backward to the
// previous one ("monday at 4pm"). A time group with nothing in its preferred
// direction takes the other one.
func bindGroups(isTime []bool) []int {
	targets := make([]int, len(isTime))
	forward := len(isTime) > 0 && isTime[0]
	prev := func(i int) int {
		for j := i - 1; j >= 0; j-- {
			if !isTime[j] {
				return j
			}
		}
		return -1
	}
	next := func(i int) int {
		for j := i + 1; j < len(isTime); j++ {
			if !isTime[j] {
				return j
			}
		}
		return -1
	}
	for i, t := range isTime {
		if !t {
			targets[i] = i
			continue
		}
		first, second := prev, next
		if forward {
			first, second = next, prev
		}
		targets[i] = first(i)
		if targets[i] < 0 {
			targets[i] = second(i)
		}
	}
	return targets
}

// template is an occurrence without its time of day.
type template struct {
	occ occurrence.Occurrence
	at  mo.Option[calendar.Clock]
}

// templates converts a date group. An open-ended daily recurrence and a date
// range in the same group merge: "every day next week".
func templates(entries []entry) []template {
	rec, rng := -1, -1
	for n, e := range entries {
		switch f := e.frag.(type) {
		case RecurrenceFragment:
			if rec < 0 && f.Kind == occurrence.Daily && f.Until.IsAbsent() {
				rec = n
			}
		case DateRangeFragment:
			if rng < 0 {
				rng = n
			}
		}
	}

	var out []template
	for n, e := range entries {
		if rec >= 0 && rng >= 0 && (n == rec || n == rng) {
			if n == min(rec, rng) {
				r := entries[rec].frag.(RecurrenceFragment)
				span := entries[rng].frag.(DateRangeFragment)
				out = append(out, template{occ: occurrence.Occurrence{
					Kind:      occurrence.Daily,
					StartDate: span.Start,
					EndDate:   mo.Some(span.End),
					Interval:  r.Interval,
				}})
			}
			continue
		}
		out = append(out, templateOf(e.frag))
	}
	return out
}

func templateOf(f Fragment) template {
	switch v := f.(type) {
	case DateFragment:
		return template{occ: occurrence.Occurrence{Kind: occurrence.Single, StartDate: v.Date}, at: v.At}
	case DateRangeFragment:
		return template{occ: occurrence.Occurrence{
			Kind:      occurrence.Daily,
			StartDate: v.Start,
			EndDate:   mo.Some(v.End),
			Interval:  1,
		}}
	case RecurrenceFragment:
		return template{occ: occurrence.Occurrence{
			Kind:        v.Kind,
			StartDate:   v.Start,
			EndDate:     v.Until,
			Interval:    v.Interval,
			DayOfWeek:   v.DayOfWeek,
			WeekOfMonth: v.WeekOfMonth,
			DateOfMonth: v.DateOfMonth,
		}}
	}
	panic("nlp: time fragment in a date group")
}

// expand combines a date group with the time fragments bound to it. Every
// date gets every time, except that a single list of dates meeting a single
// list of as many times pairs them up in order.
func expand(dates, times []entry) []occurrence.Occurrence {
	temps := templates(dates)
	var items []TimeItem
	for _, t := range times {
		items = append(items, timeItems(t.frag)...)
	}

	var out []occurrence.Occurrence
	if len(items) == 0 {
		for _, t := range temps {
			occ := t.occ
			if at, ok := t.at.Get(); ok {
				occ = occ.WithTimes(at, mo.None[calendar.Clock]())
			}
			out = append(out, occ)
		}
		return out
	}
	if pairwise(dates, times, len(temps)) {
		for n, t := range temps {
			out = append(out, t.occ.WithTimes(items[n].Start, items[n].End))
		}
		return out
	}
	for _, t := range temps {
		for _, item := range items {
			out = append(out, t.occ.WithTimes(item.Start, item.End))
		}
	}
	return out
}

func pairwise(dates, times []entry, n int) bool {
	if n < 2 || len(times) != 1 || len(dates) != n {
		return false
	}
	list, ok := times[0].frag.(TimeListFragment)
	if !ok || len(list.Items) != n {
		return false
	}
	for _, d := range dates {
		if d.match != dates[0].match {
			return false
		}
	}
	return true
}
