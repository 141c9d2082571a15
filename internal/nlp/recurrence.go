package nlp

import (
	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
	"github.com/copiousfreetime/nickel/internal/occurrence"
)

// matchRecurrence reads "every ..." phrases, "daily"/"weekly"/"monthly" and
// "the 22nd/last tuesday of every month", each with optional bounds.
func matchRecurrence(tokens []Token, ref Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		end, recs, ok := parseEvery(tokens, i, ref)
		if !ok {
			end, recs, ok = parseMonthlyOrdinal(tokens, i, ref)
		}
		if !ok {
			return 0, nil, false
		}
		end, recs = recurrenceBounds(tokens, end, ref, recs)
		frags := make([]Fragment, len(recs))
		for n, r := range recs {
			frags[n] = r
		}
		return end, frags, true
	})
}

func weekly(ref Reference, wd calendar.Weekday, interval int) RecurrenceFragment {
	return RecurrenceFragment{
		Kind:      occurrence.Weekly,
		Interval:  interval,
		DayOfWeek: mo.Some(wd),
		Start:     ref.Date.OnOrAfter(wd),
	}
}

func daily(ref Reference, interval int) RecurrenceFragment {
	return RecurrenceFragment{Kind: occurrence.Daily, Interval: interval, Start: ref.Date}
}

func dateMonthly(ref Reference, day, interval int) (RecurrenceFragment, bool) {
	start, ok := dayOfMonth(ref.Date, day, 0, false)
	if !ok {
		return RecurrenceFragment{}, false
	}
	return RecurrenceFragment{Kind: occurrence.DateMonthly, Interval: interval, DateOfMonth: day, Start: start}, true
}

// nthWeekdayOnOrAfter is the first nth wd of a month on or after d.
func nthWeekdayOnOrAfter(d calendar.Date, n int, wd calendar.Weekday) calendar.Date {
	c := d.NthWeekday(n, wd)
	if c.Before(d) || c.Month != d.Month {
		c = d.FirstOfMonth().AddMonths(1).NthWeekday(n, wd)
	}
	return c
}

var (
	workWeek = []calendar.Weekday{calendar.Monday, calendar.Tuesday, calendar.Wednesday, calendar.Thursday, calendar.Friday}
	weekend  = []calendar.Weekday{calendar.Saturday, calendar.Sunday}
)

// parseEvery reads "every [other|N] <unit or weekdays>" and the single word
// forms.
func parseEvery(tokens []Token, i int, ref Reference) (int, []RecurrenceFragment, bool) {
	switch word(tokens, i) {
	case "everyday", "daily", "nightly":
		return i + 1, []RecurrenceFragment{daily(ref, 1)}, true
	case "weekly":
		return i + 1, []RecurrenceFragment{weekly(ref, ref.Date.Weekday(), 1)}, true
	case "monthly":
		r, ok := dateMonthly(ref, ref.Date.Day, 1)
		return i + 1, []RecurrenceFragment{r}, ok
	case "every", "each":
	default:
		return 0, nil, false
	}

	j := i + 1
	interval := 1
	if isWord(tokens, j, "other") {
		interval, j = 2, j+1
	} else if n, ok := number(tokens, j); ok && !n.Ordinal && n.Value >= 1 && durationUnits[word(tokens, j+1)] {
		interval, j = n.Value, j+1
	}

	if _, ok := weekdayAt(tokens, j); ok {
		var recs []RecurrenceFragment
		end := j
		for {
			wd, ok := weekdayAt(tokens, end)
			if !ok {
				break
			}
			recs = append(recs, weekly(ref, wd, interval))
			end++
			k := end
			if isPunct(tokens, k, ",") {
				k++
			}
			k = skip(tokens, k, "and", "every", "other", "on")
			if _, ok := weekdayAt(tokens, k); ok {
				end = k
			}
		}
		return end, recs, true
	}

	switch word(tokens, j) {
	case "weekday", "weekdays":
		return j + 1, weeklyAll(ref, workWeek, interval), true
	case "weekend", "weekends":
		return j + 1, weeklyAll(ref, weekend, interval), true
	case "day", "days", "night", "nights":
		return j + 1, []RecurrenceFragment{daily(ref, interval)}, true
	case "week", "weeks":
		return j + 1, []RecurrenceFragment{weekly(ref, ref.Date.Weekday(), interval)}, true
	case "month", "months":
		end := j + 1
		day := ref.Date.Day
		k := optional(tokens, end, "on")
		k = optional(tokens, k, "the")
		if n, ok := dayNumber(tokens, k); ok && (n.Ordinal || k > end) && !timeFollows(tokens, k+1) {
			day, end = n.Value, k+1
		}
		r, ok := dateMonthly(ref, day, interval)
		return end, []RecurrenceFragment{r}, ok
	}
	return 0, nil, false
}

func weeklyAll(ref Reference, days []calendar.Weekday, interval int) []RecurrenceFragment {
	recs := make([]RecurrenceFragment, len(days))
	for n, wd := range days {
		recs[n] = weekly(ref, wd, interval)
	}
	return recs
}

// everyMonth reads "of every [other] month" and returns the interval.
func everyMonth(tokens []Token, i int) (int, int, bool) {
	if !isWord(tokens, i, "of") || !isWord(tokens, i+1, "every", "each") {
		return 0, i, false
	}
	j := i + 2
	interval := 1
	if isWord(tokens, j, "other") {
		interval, j = 2, j+1
	}
	if !isWord(tokens, j, "month") {
		return 0, i, false
	}
	return interval, j + 1, true
}

// parseMonthlyOrdinal reads "the 22nd [day] of every month" and "the second
// tuesday of every month".
func parseMonthlyOrdinal(tokens []Token, i int, ref Reference) (int, []RecurrenceFragment, bool) {
	j := optional(tokens, i, "the")
	if n, ok := weekOrdinal(tokens, j); ok {
		if wd, ok := weekdayAt(tokens, j+1); ok {
			interval, end, ok := everyMonth(tokens, j+2)
			if !ok {
				return 0, nil, false
			}
			r := RecurrenceFragment{
				Kind:        occurrence.DayMonthly,
				Interval:    interval,
				DayOfWeek:   mo.Some(wd),
				WeekOfMonth: n,
				Start:       nthWeekdayOnOrAfter(ref.Date, n, wd),
			}
			return end, []RecurrenceFragment{r}, true
		}
	}
	day, ok := dayNumber(tokens, j)
	if !ok || !day.Ordinal {
		return 0, nil, false
	}
	k := optional(tokens, j+1, "day")
	interval, end, ok := everyMonth(tokens, k)
	if !ok {
		return 0, nil, false
	}
	r, ok := dateMonthly(ref, day.Value, interval)
	return end, []RecurrenceFragment{r}, ok
}

// parseBoundDate reads the date after "until". A month name on its own
// excludes that month: "until december" ends on november 30. Likewise
// "until next month" ends on the last day of this month and "until next week"
// the day before the next-week window opens; "until this month" keeps this
// month.
func parseBoundDate(tokens []Token, i int, ref Reference) (calendar.Date, int, bool) {
	switch {
	case isWord(tokens, i, "next", "this") && isWord(tokens, i+1, "month"):
		return ref.Date.LastOfMonth(), i + 2, true
	case isWord(tokens, i, "next") && isWord(tokens, i+1, "week"):
		return ref.Date.AddDays(6), i + 2, true
	}
	if m, ok := monthAt(tokens, i); ok {
		if _, isDay := dayNumber(tokens, i+1); !isDay {
			year := ref.Date.Year
			if m <= ref.Date.Month {
				year++
			}
			return calendar.NewDate(year, m, 1).AddDays(-1), i + 1, true
		}
	}
	d, ok := parseDate(tokens, i, ref)
	if !ok {
		return calendar.Date{}, i, false
	}
	return d.date, d.end, true
}

// monthWindow reads "next month", "this month" and "in|during <month>" after a
// recurrence.
func monthWindow(tokens []Token, i int, ref Reference) (calendar.Date, calendar.Date, int, bool) {
	today := ref.Date
	switch {
	case isWord(tokens, i, "next") && isWord(tokens, i+1, "month"):
		first := today.FirstOfMonth().AddMonths(1)
		return first, first.LastOfMonth(), i + 2, true
	case isWord(tokens, i, "this") && isWord(tokens, i+1, "month"):
		return today, today.LastOfMonth(), i + 2, true
	case isWord(tokens, i, "in", "during"):
		m, ok := monthAt(tokens, i+1)
		if !ok {
			break
		}
		if _, isDay := dayNumber(tokens, i+2); isDay {
			break
		}
		first := calendar.NewDate(yearFor(today, m), m, 1)
		start := first
		if start.Before(today) {
			start = today
		}
		return start, first.LastOfMonth(), i + 2, true
	}
	return calendar.Date{}, calendar.Date{}, i, false
}

// recurrenceBounds consumes an optional "until <date>" or month window after
// a recurrence and applies it to every recurrence of the phrase.
func recurrenceBounds(tokens []Token, i int, ref Reference, recs []RecurrenceFragment) (int, []RecurrenceFragment) {
	from, until := mo.None[calendar.Date](), mo.None[calendar.Date]()
	end := i
	if isWord(tokens, i, "until", "till", "through", "thru") {
		if d, e, ok := parseBoundDate(tokens, i+1, ref); ok {
			until, end = mo.Some(d), e
		}
	} else if start, stop, e, ok := monthWindow(tokens, i, ref); ok {
		from, until, end = mo.Some(start), mo.Some(stop), e
	}
	if end == i {
		return i, recs
	}
	out := make([]RecurrenceFragment, len(recs))
	for n, r := range recs {
		out[n] = boundRecurrence(r, from, until)
	}
	return end, out
}

// boundRecurrence moves the start of r to its first occurrence on or after
// from, and its end to its last occurrence on or before until.
func boundRecurrence(r RecurrenceFragment, from, until mo.Option[calendar.Date]) RecurrenceFragment {
	if d, ok := from.Get(); ok {
		switch r.Kind {
		case occurrence.Weekly:
			r.Start = d.OnOrAfter(r.DayOfWeek.MustGet())
		case occurrence.DateMonthly:
			if start, ok := dayOfMonth(d, r.DateOfMonth, 0, false); ok {
				r.Start = start
			}
		case occurrence.DayMonthly:
			r.Start = nthWeekdayOnOrAfter(d, r.WeekOfMonth, r.DayOfWeek.MustGet())
		default:
			r.Start = d
		}
	}
	if d, ok := until.Get(); ok {
		if r.Kind == occurrence.Weekly {
			d = d.OnOrBefore(r.DayOfWeek.MustGet())
		}
		r.Until = mo.Some(d)
	}
	return r
}

// matchBound reads "starting [on] <date>" and "until <date>" when they are not
// part of a longer recurrence or range.
func matchBound(tokens []Token, ref Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		switch {
		case isWord(tokens, i, "starting", "beginning", "starts", "begins"):
			j := optional(tokens, i+1, "on", "from")
			d, ok := parseDate(tokens, j, ref)
			if !ok {
				return 0, nil, false
			}
			return d.end, []Fragment{DateFragment{Date: d.date, Role: RoleStart}}, true
		case isWord(tokens, i, "until", "till"):
			d, end, ok := parseBoundDate(tokens, i+1, ref)
			if !ok {
				return 0, nil, false
			}
			return end, []Fragment{DateFragment{Date: d, Role: RoleUntil}}, true
		}
		return 0, nil, false
	})
}
