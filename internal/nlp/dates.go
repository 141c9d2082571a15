package nlp

import (
	"time"

	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

type exprKind int

const (
	exprRelative exprKind = iota // today, tomorrow, offsets
	exprWeekday                  // monday, this monday, next monday
	exprAbsolute                 // october 2nd, 10/2, 2008-10-02
	exprDay                      // the 28th
)

// dateExpr is a date read from the token stream.
type dateExpr struct {
	date         calendar.Date
	at           mo.Option[calendar.Clock]
	end          int
	kind         exprKind
	weekday      calendar.Weekday // exprWeekday only
	explicitYear bool
}

type dateParser func(tokens []Token, i int, ref Reference) (dateExpr, bool)

// dateParsers are every form of a single date expression.
var dateParsers = []dateParser{
	parseRelativeDay,
	parseLastWeekday,
	parseNthWeekday,
	parseWeekday,
	parseMonthDay,
	parseDayMonth,
	parseNumericDate,
	parseISODate,
	parseOffset,
	parseDayOfMonth,
}

// parseDate reads the longest date expression starting at i.
func parseDate(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	var best dateExpr
	found := false
	for _, p := range dateParsers {
		if e, ok := p(tokens, i, ref); ok && (!found || e.end > best.end) {
			best, found = e, true
		}
	}
	return best, found
}

func dateMatcher(parsers ...dateParser) matchFunc {
	return func(tokens []Token, ref Reference) []Match {
		return scanAll(tokens, func(i int) (int, []Fragment, bool) {
			var best dateExpr
			found := false
			for _, p := range parsers {
				if e, ok := p(tokens, i, ref); ok && (!found || e.end > best.end) {
					best, found = e, true
				}
			}
			if !found {
				return 0, nil, false
			}
			return best.end, []Fragment{DateFragment{Date: best.date, At: best.at}}, true
		})
	}
}

var (
	matchRelativeDate = dateMatcher(parseRelativeDay, parseLastWeekday, parseNthWeekday)
	matchAbsoluteDate = dateMatcher(parseMonthDay, parseDayMonth, parseNumericDate, parseISODate)
	matchOffset       = dateMatcher(parseOffset)
	matchDayOfMonth   = dateMatcher(parseDayOfMonth)
)

// parseRelativeDay reads "today", "tonight" and "tomorrow".
func parseRelativeDay(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	switch word(tokens, i) {
	case "today", "tonight":
		return dateExpr{date: ref.Date, end: i + 1, kind: exprRelative}, true
	case "tomorrow":
		return dateExpr{date: ref.Date.AddDays(1), end: i + 1, kind: exprRelative}, true
	}
	return dateExpr{}, false
}

// weekdayMode is the modifier in front of a weekday name.
type weekdayMode int

const (
	modeBare weekdayMode = iota // monday: strictly after the reference date
	modeThis                    // this monday: on or after
	modeNext                    // next monday: a week after "this monday"
)

func resolveWeekday(ref calendar.Date, wd calendar.Weekday, mode weekdayMode) calendar.Date {
	switch mode {
	case modeThis:
		return ref.OnOrAfter(wd)
	case modeNext:
		return ref.OnOrAfter(wd).AddWeeks(1)
	}
	return ref.NextWeekday(wd)
}

func weekdayModeAt(tokens []Token, i int) (weekdayMode, int) {
	switch word(tokens, i) {
	case "this":
		return modeThis, i + 1
	case "next":
		return modeNext, i + 1
	}
	return modeBare, i
}

// parseWeekday reads "[this|next] <weekday>".
func parseWeekday(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	mode, j := weekdayModeAt(tokens, i)
	wd, ok := weekdayAt(tokens, j)
	if !ok {
		return dateExpr{}, false
	}
	return dateExpr{date: resolveWeekday(ref.Date, wd, mode), end: j + 1, kind: exprWeekday, weekday: wd}, true
}

// monthQualifier reads "this month", "next month" and "the month", optionally
// preceded by "of". It returns the month offset (0 or 1), whether the month
// was explicit, and the index after the phrase.
func monthQualifier(tokens []Token, i int) (offset int, explicit bool, end int, ok bool) {
	j := optional(tokens, i, "of")
	switch {
	case isWord(tokens, j, "this") && isWord(tokens, j+1, "month"):
		return 0, true, j + 2, true
	case isWord(tokens, j, "next") && isWord(tokens, j+1, "month"):
		return 1, true, j + 2, true
	case j > i && isWord(tokens, j, "the") && isWord(tokens, j+1, "month"):
		return 0, false, j + 2, true
	}
	return 0, false, i, false
}

// parseLastWeekday reads "[the] last <weekday> [of] this month".
func parseLastWeekday(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	j := optional(tokens, i, "the")
	if !isWord(tokens, j, "last") {
		return dateExpr{}, false
	}
	wd, ok := weekdayAt(tokens, j+1)
	if !ok {
		return dateExpr{}, false
	}
	offset, explicit, end, ok := monthQualifier(tokens, j+2)
	if !ok || !explicit || offset != 0 {
		return dateExpr{}, false
	}
	d := ref.Date.OnOrBefore(wd)
	if d.Before(ref.Date.FirstOfMonth()) {
		d = d.AddWeeks(1)
	}
	return dateExpr{date: d, end: end, kind: exprRelative}, true
}

// weekOrdinal reads an ordinal usable as a week of the month: 1st-4th and last.
func weekOrdinal(tokens []Token, i int) (int, bool) {
	if isWord(tokens, i, "last") {
		return -1, true
	}
	if n, ok := number(tokens, i); ok && n.Ordinal && n.Value >= 1 && n.Value <= 4 {
		return n.Value, true
	}
	return 0, false
}

// parseNthWeekday reads "[the] <ordinal> <weekday> [of] next month",
// "... of this month" and "... of <month>". A fifth weekday the month lacks
// rolls forward to the next month that has one.
func parseNthWeekday(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	j := optional(tokens, i, "the")
	n, ok := weekOrdinal(tokens, j)
	if !ok {
		if t, isNum := number(tokens, j); isNum && t.Ordinal && t.Value == 5 {
			n, ok = 5, true
		}
	}
	if !ok || n < 0 {
		return dateExpr{}, false
	}
	wd, ok := weekdayAt(tokens, j+1)
	if !ok {
		return dateExpr{}, false
	}
	if offset, explicit, end, ok := monthQualifier(tokens, j+2); ok && explicit {
		month := ref.Date.FirstOfMonth().AddMonths(offset)
		return dateExpr{date: nthWeekdayFrom(month, n, wd), end: end, kind: exprRelative}, true
	}
	k := optional(tokens, j+2, "of", "in")
	if m, ok := monthAt(tokens, k); ok && k > j+2 {
		month := calendar.NewDate(yearFor(ref.Date, m), m, 1)
		return dateExpr{date: nthWeekdayFrom(month, n, wd), end: k + 1, kind: exprAbsolute}, true
	}
	return dateExpr{}, false
}

// nthWeekdayFrom is the nth wd of month, or of the first later month that
// has an nth wd.
func nthWeekdayFrom(month calendar.Date, n int, wd calendar.Weekday) calendar.Date {
	for {
		if d := month.NthWeekday(n, wd); d.Month == month.Month {
			return d
		}
		month = month.AddMonths(1)
	}
}

// yearFor picks the year of a yearless month: this year, or next year when the
// month has already passed.
func yearFor(ref calendar.Date, m time.Month) int {
	if m < ref.Month {
		return ref.Year + 1
	}
	return ref.Year
}

// dayNumber reads a day of the month 1-31.
func dayNumber(tokens []Token, i int) (Token, bool) {
	n, ok := number(tokens, i)
	if !ok || n.Value < 1 || n.Value > 31 || n.Digits > 2 {
		return Token{}, false
	}
	return n, true
}

// yearNumber reads a 4 digit year, or a 2 digit one when short is set.
func yearNumber(tokens []Token, i int, short bool) (int, bool) {
	n, ok := number(tokens, i)
	if !ok || n.Ordinal {
		return 0, false
	}
	switch {
	case n.Digits == 4:
		return n.Value, true
	case n.Digits == 2 && short:
		if timeFollows(tokens, i+1) {
			return 0, false
		}
		return 2000 + n.Value, true
	}
	return 0, false
}

// timeFollows reports whether the token at i continues a clock or time range,
// which means the number before it is not a date part.
func timeFollows(tokens []Token, i int) bool {
	return meridiemAt(tokens, i) != "" ||
		isPunct(tokens, i, ":") ||
		(isPunct(tokens, i, ".") && i+1 < len(tokens) && tokens[i+1].Kind == Number && tokens[i+1].Digits == 2) ||
		isWord(tokens, i, "o")
}

func isPunct(tokens []Token, i int, text string) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Kind == Punct && tokens[i].Text == text
}

func absoluteDate(ref Reference, year int, explicitYear bool, m time.Month, day int, end int) (dateExpr, bool) {
	if !explicitYear {
		year = yearFor(ref.Date, m)
	}
	d := calendar.Date{Year: year, Month: m, Day: day}
	if !d.Valid() {
		return dateExpr{}, false
	}
	return dateExpr{date: d, end: end, kind: exprAbsolute, explicitYear: explicitYear}, true
}

// parseMonthDay reads "[<weekday>[,]] <month> <day>[[,] <year>]".
func parseMonthDay(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	j := i
	if _, ok := weekdayAt(tokens, j); ok {
		j++
		if isPunct(tokens, j, ",") {
			j++
		}
	}
	m, ok := monthAt(tokens, j)
	if !ok {
		return dateExpr{}, false
	}
	j = optional(tokens, j+1, "the")
	day, ok := dayNumber(tokens, j)
	if !ok || timeFollows(tokens, j+1) {
		return dateExpr{}, false
	}
	end := j + 1
	year, explicit := 0, false
	if isPunct(tokens, end, ",") {
		if y, ok := yearNumber(tokens, end+1, false); ok {
			year, explicit, end = y, true, end+2
		}
	} else if y, ok := yearNumber(tokens, end, true); ok {
		year, explicit, end = y, true, end+1
	}
	return absoluteDate(ref, year, explicit, m, day.Value, end)
}

// parseDayMonth reads "<day> [of] <month> [<year>]".
func parseDayMonth(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	j := optional(tokens, i, "the")
	day, ok := dayNumber(tokens, j)
	if !ok {
		return dateExpr{}, false
	}
	k := optional(tokens, j+1, "of")
	m, ok := monthAt(tokens, k)
	if !ok {
		return dateExpr{}, false
	}
	end := k + 1
	year, explicit := 0, false
	if y, ok := yearNumber(tokens, end, false); ok {
		year, explicit, end = y, true, end+1
	}
	return absoluteDate(ref, year, explicit, m, day.Value, end)
}

// parseNumericDate reads "m/d" and "m/d/y". Day first is never tried.
func parseNumericDate(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	mon, ok := number(tokens, i)
	if !ok || mon.Ordinal || mon.Digits > 2 || mon.Value < 1 || mon.Value > 12 || !isPunct(tokens, i+1, "/") {
		return dateExpr{}, false
	}
	day, ok := dayNumber(tokens, i+2)
	if !ok || day.Ordinal {
		return dateExpr{}, false
	}
	end := i + 3
	year, explicit := 0, false
	if isPunct(tokens, end, "/") {
		y, ok := number(tokens, end+1)
		if !ok || (y.Digits != 2 && y.Digits != 4) {
			return dateExpr{}, false
		}
		year, explicit, end = y.Value, true, end+2
		if y.Digits == 2 {
			year += 2000
		}
	}
	return absoluteDate(ref, year, explicit, time.Month(mon.Value), day.Value, end)
}

// parseISODate reads "yyyy-mm-dd".
func parseISODate(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	y, ok := number(tokens, i)
	if !ok || y.Digits != 4 || !isPunct(tokens, i+1, "-") || !isPunct(tokens, i+3, "-") {
		return dateExpr{}, false
	}
	mon, ok1 := number(tokens, i+2)
	day, ok2 := number(tokens, i+4)
	if !ok1 || !ok2 || mon.Value < 1 || mon.Value > 12 {
		return dateExpr{}, false
	}
	return absoluteDate(ref, y.Value, true, time.Month(mon.Value), day.Value, i+5)
}

// dayOfMonth resolves a bare day: this month when the day has not passed,
// otherwise the next month that has such a day. offset forces this month (0)
// or next month (1) when explicit is set.
func dayOfMonth(ref calendar.Date, day, offset int, explicit bool) (calendar.Date, bool) {
	first := ref.FirstOfMonth()
	if explicit {
		d := first.AddMonths(offset)
		d.Day = day
		return d, d.Valid()
	}
	if day < ref.Day {
		first = first.AddMonths(1)
	}
	for range 12 {
		d := first
		d.Day = day
		if d.Valid() {
			return d, true
		}
		first = first.AddMonths(1)
	}
	return calendar.Date{}, false
}

var durationUnits = map[string]bool{
	"day": true, "days": true, "week": true, "weeks": true,
	"month": true, "months": true, "year": true, "years": true,
	"hour": true, "hours": true, "hr": true, "hrs": true,
	"minute": true, "minutes": true, "min": true, "mins": true,
}

// parseDayOfMonth reads a bare day of the month. Digit ordinals ("28th")
// stand alone; cardinals and spelled ordinals need "the", a month qualifier,
// or to be the whole input.
func parseDayOfMonth(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	offset, explicit := 0, false
	j := i
	prefixed := false
	if isWord(tokens, j, "this", "next") && isWord(tokens, j+1, "month") {
		offset, explicit, prefixed = 0, true, true
		if isWord(tokens, j, "next") {
			offset = 1
		}
		j += 2
	}
	the := isWord(tokens, j, "the")
	j = optional(tokens, j, "the")
	day, ok := dayNumber(tokens, j)
	if !ok {
		return dateExpr{}, false
	}
	end := j + 1
	if timeFollows(tokens, end) || isPunct(tokens, end, "/") || isPunct(tokens, end, "-") && !day.Ordinal {
		return dateExpr{}, false
	}
	if w := word(tokens, end); durationUnits[w] {
		return dateExpr{}, false
	}
	qualified := prefixed
	if !prefixed {
		if o, e, qEnd, ok := monthQualifier(tokens, end); ok {
			offset, explicit, end, qualified = o, e, qEnd, true
		}
	}
	standalone := i == 0 && end == len(tokens)
	if !(day.Ordinal && day.Digits > 0) && !the && !qualified && !standalone {
		return dateExpr{}, false
	}
	d, ok := dayOfMonth(ref.Date, day.Value, offset, explicit)
	if !ok {
		return dateExpr{}, false
	}
	return dateExpr{date: d, end: end, kind: exprDay}, true
}

// offsetAmount reads N in "in N days": a number or "a"/"an".
func offsetAmount(tokens []Token, i int) (int, bool) {
	if isWord(tokens, i, "a", "an") {
		return 1, true
	}
	n, ok := number(tokens, i)
	if !ok || n.Ordinal {
		return 0, false
	}
	return n.Value, true
}

// applyOffset moves the reference by n units. Hours and minutes produce a
// clock and may roll the date.
func applyOffset(ref Reference, anchor calendar.Date, n int, unit string) (calendar.Date, mo.Option[calendar.Clock]) {
	switch unit {
	case "day", "days":
		return anchor.AddDays(n), mo.None[calendar.Clock]()
	case "week", "weeks":
		return anchor.AddWeeks(n), mo.None[calendar.Clock]()
	case "month", "months":
		return anchor.AddMonths(n), mo.None[calendar.Clock]()
	case "year", "years":
		return anchor.AddYears(n), mo.None[calendar.Clock]()
	case "hour", "hours", "hr", "hrs":
		c, days := ref.Clock.Add(time.Duration(n) * time.Hour)
		return anchor.AddDays(days), mo.Some(c)
	default:
		c, days := ref.Clock.Add(time.Duration(n) * time.Minute)
		return anchor.AddDays(days), mo.Some(c)
	}
}

// parseOffset reads "in N <unit>" and "N <unit> from now|today|tomorrow".
func parseOffset(tokens []Token, i int, ref Reference) (dateExpr, bool) {
	if isWord(tokens, i, "in") {
		n, ok := offsetAmount(tokens, i+1)
		unit := word(tokens, i+2)
		if !ok || !durationUnits[unit] {
			return dateExpr{}, false
		}
		d, at := applyOffset(ref, ref.Date, n, unit)
		return dateExpr{date: d, at: at, end: i + 3, kind: exprRelative}, true
	}
	n, ok := offsetAmount(tokens, i)
	unit := word(tokens, i+1)
	if !ok || !durationUnits[unit] || !isWord(tokens, i+2, "from", "after") {
		return dateExpr{}, false
	}
	anchor := ref.Date
	switch word(tokens, i+3) {
	case "now", "today":
	case "tomorrow":
		anchor = anchor.AddDays(1)
	default:
		return dateExpr{}, false
	}
	d, at := applyOffset(ref, anchor, n, unit)
	return dateExpr{date: d, at: at, end: i + 4, kind: exprRelative}, true
}

// matchWeekdayList reads "[this|next] <weekday>([,] [and] [on] <weekday>)...".
// Every weekday resolves independently under the leading modifier.
func matchWeekdayList(tokens []Token, ref Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		if i > 0 {
			if _, ok := weekdayAt(tokens, i-1); ok {
				return 0, nil, false
			}
		}
		mode, j := weekdayModeAt(tokens, i)
		wd, ok := weekdayAt(tokens, j)
		if !ok {
			return 0, nil, false
		}
		frags := []Fragment{DateFragment{Date: resolveWeekday(ref.Date, wd, mode)}}
		end := j + 1
		for {
			k := end
			if isPunct(tokens, k, ",") {
				k++
			}
			k = skip(tokens, k, "and", "on")
			next, ok := weekdayAt(tokens, k)
			if !ok {
				break
			}
			frags = append(frags, DateFragment{Date: resolveWeekday(ref.Date, next, mode)})
			end = k + 1
		}
		return end, frags, true
	})
}
