package nlp

import (
	"github.com/copiousfreetime/nickel/internal/calendar"
)

var rangeConnectors = []string{"through", "thru", "until", "till", "to"}

// rangeConnector reads the word or dash joining the two ends of a range.
func rangeConnector(tokens []Token, i int) (int, bool) {
	if isWord(tokens, i, rangeConnectors...) || isPunct(tokens, i, "-") {
		return i + 1, true
	}
	return i, false
}

// matchDateRange reads "<date> (through|until|to|-) <date>", where the right
// side may be a bare day that inherits the left side's month, and spans such
// as "for the next three days".
func matchDateRange(tokens []Token, ref Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		if end, start, stop, ok := parseSpan(tokens, i, ref); ok {
			return end, []Fragment{DateRangeFragment{Start: start, End: stop}}, true
		}
		j := optional(tokens, i, "from")
		left, ok := parseDate(tokens, j, ref)
		if !ok {
			return 0, nil, false
		}
		k, ok := rangeConnector(tokens, left.end)
		if !ok {
			return 0, nil, false
		}
		k = optional(tokens, k, "the")
		right, ok := parseDate(tokens, k, ref)
		if !ok || (right.kind == exprDay && right.end == k+1) {
			right, ok = bareRightDay(tokens, k, left)
		}
		if !ok {
			return 0, nil, false
		}
		start, stop := alignRange(left, right)
		return right.end, []Fragment{DateRangeFragment{Start: start, End: stop}}, true
	})
}

// bareRightDay reads "5th" in "october 2nd-5th" as a day in the left side's
// month.
func bareRightDay(tokens []Token, i int, left dateExpr) (dateExpr, bool) {
	day, ok := dayNumber(tokens, i)
	if !ok || timeFollows(tokens, i+1) || durationUnits[word(tokens, i+1)] || isPunct(tokens, i+1, "/") {
		return dateExpr{}, false
	}
	d := left.date
	d.Day = day.Value
	if !d.Valid() {
		return dateExpr{}, false
	}
	if d.Before(left.date) {
		d = d.AddMonths(1)
	}
	return dateExpr{date: d, end: i + 1, kind: exprAbsolute, explicitYear: left.explicitYear}, true
}

// alignRange fixes up yearless ends so that start <= end.
func alignRange(left, right dateExpr) (calendar.Date, calendar.Date) {
	start, stop := left.date, right.date
	if left.kind == exprAbsolute && right.kind == exprAbsolute {
		switch {
		case right.explicitYear && !left.explicitYear:
			start.Year = stop.Year
			if start.After(stop) {
				start = start.AddYears(-1)
			}
		case left.explicitYear && !right.explicitYear:
			stop.Year = start.Year
		}
	}
	for stop.Before(start) {
		switch right.kind {
		case exprWeekday:
			stop = stop.AddWeeks(1)
		case exprDay:
			stop = stop.AddMonths(1)
		default:
			stop = stop.AddYears(1)
		}
	}
	return start, stop
}

var spanUnits = map[string]string{
	"day": "day", "days": "day",
	"week": "week", "weeks": "week",
	"month": "month", "months": "month",
}

func addSpan(d calendar.Date, n int, unit string) calendar.Date {
	switch unit {
	case "week":
		return d.AddWeeks(n)
	case "month":
		return d.AddMonths(n)
	}
	return d.AddDays(n)
}

// parseSpan reads "for [the next] N days", "(in|over|during) the next N days"
// and "the next N days".
func parseSpan(tokens []Token, i int, ref Reference) (int, calendar.Date, calendar.Date, bool) {
	j := i
	next := false
	switch {
	case isWord(tokens, j, "for"):
		j++
		if isWord(tokens, j, "the") && isWord(tokens, j+1, "next", "coming") {
			j, next = j+2, true
		}
	case isWord(tokens, j, "in", "over", "during") && isWord(tokens, j+1, "the") && isWord(tokens, j+2, "next", "coming"):
		j, next = j+3, true
	case isWord(tokens, j, "the") && isWord(tokens, j+1, "next", "coming"):
		j, next = j+2, true
	default:
		return 0, calendar.Date{}, calendar.Date{}, false
	}
	count := 0
	if n, ok := number(tokens, j); ok && !n.Ordinal && n.Value >= 1 {
		count = n.Value
	} else if isWord(tokens, j, "a", "an") && !next {
		// "for a week"
		count = 1
	} else {
		return 0, calendar.Date{}, calendar.Date{}, false
	}
	unit, ok := spanUnits[word(tokens, j+1)]
	if !ok {
		return 0, calendar.Date{}, calendar.Date{}, false
	}
	return j + 2, ref.Date, addSpan(ref.Date, count, unit), true
}

// matchWindow reads calendar windows: this/next week, this/next weekend,
// this/next/all month and "the week of/ending <date>".
func matchWindow(tokens []Token, ref Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		end, start, stop, ok := parseWindow(tokens, i, ref)
		if !ok {
			return 0, nil, false
		}
		return end, []Fragment{DateRangeFragment{Start: start, End: stop}}, true
	})
}

func parseWindow(tokens []Token, i int, ref Reference) (int, calendar.Date, calendar.Date, bool) {
	today := ref.Date
	switch {
	case isWord(tokens, i, "this", "all") && isWord(tokens, i+1, "week"):
		return i + 2, today, today.AddDays(7), true
	case isWord(tokens, i, "next") && isWord(tokens, i+1, "week"):
		return i + 2, today.AddDays(7), today.AddDays(14), true
	case isWord(tokens, i, "this", "next") && isWord(tokens, i+1, "weekend"):
		sat := today.OnOrAfter(calendar.Saturday)
		if today.Weekday() == calendar.Sunday {
			sat = today.AddDays(-1)
		}
		if isWord(tokens, i, "next") {
			sat = sat.AddWeeks(1)
		}
		return i + 2, sat, sat.AddDays(1), true
	case isWord(tokens, i, "this", "all") && isWord(tokens, i+1, "month"):
		return i + 2, today, today.LastOfMonth(), true
	case isWord(tokens, i, "next") && isWord(tokens, i+1, "month"):
		first := today.FirstOfMonth().AddMonths(1)
		return i + 2, first, first.LastOfMonth(), true
	}
	j := optional(tokens, i, "the")
	if !isWord(tokens, j, "week") || !isWord(tokens, j+1, "of", "ending") {
		return 0, calendar.Date{}, calendar.Date{}, false
	}
	k := optional(tokens, j+2, "the")
	d, ok := parseDate(tokens, k, ref)
	if !ok {
		return 0, calendar.Date{}, calendar.Date{}, false
	}
	if isWord(tokens, j+1, "ending") {
		return d.end, d.date.AddDays(-7), d.date, true
	}
	return d.end, d.date, d.date.AddDays(7), true
}
