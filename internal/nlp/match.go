package nlp

import (
	"sort"
	"time"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

// Reference is the instant relative phrases resolve against.
type Reference struct {
	Instant time.Time
	Date    calendar.Date
	Clock   calendar.Clock
}

// NewReference captures t as a reference instant in t's location.
func NewReference(t time.Time) Reference {
	return Reference{Instant: t, Date: calendar.DateOf(t), Clock: calendar.ClockOf(t)}
}

// Match is one matcher firing. Its fragments are accepted or rejected as a
// unit.
type Match struct {
	Span      Span
	Fragments []Fragment
	Matcher   string
	priority  int
}

type matchFunc func(tokens []Token, ref Reference) []Match

type matcher struct {
	name string
	fn   matchFunc
}

// matchers is the ordered phrase grammar. Earlier entries win ties between
// overlapping matches of equal length.
var matchers = []matcher{
	{"recurrence", matchRecurrence},
	{"date range", matchDateRange},
	{"calendar window", matchWindow},
	{"relative date", matchRelativeDate},
	{"absolute date", matchAbsoluteDate},
	{"offset", matchOffset},
	{"weekday list", matchWeekdayList},
	{"day of month", matchDayOfMonth},
	{"bound", matchBound},
	{"time list", matchTimeList},
	{"time range", matchTimeRange},
	{"time point", matchTimePoint},
}

// runMatchers runs every matcher over tokens and keeps the non-overlapping
// matches, preferring longer spans, then matcher order, then leftmost start.
// The result is sorted by position.
func runMatchers(tokens []Token, ref Reference) []Match {
	var candidates []Match
	for priority, m := range matchers {
		for _, found := range m.fn(tokens, ref) {
			found.Matcher = m.name
			found.priority = priority
			candidates = append(candidates, found)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Span.Len() != b.Span.Len() {
			return a.Span.Len() > b.Span.Len()
		}
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.Span.Start < b.Span.Start
	})

	var accepted []Match
	for _, c := range candidates {
		if c.Span.Len() == 0 || len(c.Fragments) == 0 {
			continue
		}
		overlaps := false
		for _, a := range accepted {
			if a.Span.Overlaps(c.Span) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}
	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Span.Start < accepted[j].Span.Start
	})
	return accepted
}

// scanAll applies parse at every token position and collects the matches.
// parse returns the end of its span and the fragments it produced.
func scanAll(tokens []Token, parse func(i int) (int, []Fragment, bool)) []Match {
	var out []Match
	for i := range tokens {
		if end, frags, ok := parse(i); ok && end > i {
			out = append(out, Match{Span: Span{Start: i, End: end}, Fragments: frags})
		}
	}
	return out
}

// cursor helpers over the token stream.

func word(tokens []Token, i int) string {
	if i < 0 || i >= len(tokens) || tokens[i].Kind == Number {
		return ""
	}
	return tokens[i].Text
}

func isWord(tokens []Token, i int, words ...string) bool {
	w := word(tokens, i)
	if w == "" {
		return false
	}
	for _, candidate := range words {
		if w == candidate {
			return true
		}
	}
	return false
}

func number(tokens []Token, i int) (Token, bool) {
	if i < 0 || i >= len(tokens) || tokens[i].Kind != Number {
		return Token{}, false
	}
	return tokens[i], true
}

// skip advances past any of words at i.
func skip(tokens []Token, i int, words ...string) int {
	for isWord(tokens, i, words...) {
		i++
	}
	return i
}

// optional advances past one of words at i when present.
func optional(tokens []Token, i int, words ...string) int {
	if isWord(tokens, i, words...) {
		return i + 1
	}
	return i
}

var weekdays = map[string]calendar.Weekday{
	"monday": calendar.Monday, "mon": calendar.Monday,
	"tuesday": calendar.Tuesday, "tue": calendar.Tuesday, "tues": calendar.Tuesday,
	"wednesday": calendar.Wednesday, "wed": calendar.Wednesday,
	"thursday": calendar.Thursday, "thu": calendar.Thursday, "thur": calendar.Thursday, "thurs": calendar.Thursday,
	"friday": calendar.Friday, "fri": calendar.Friday,
	"saturday": calendar.Saturday,
	"sunday":   calendar.Sunday,
}

func weekdayAt(tokens []Token, i int) (calendar.Weekday, bool) {
	wd, ok := weekdays[word(tokens, i)]
	return wd, ok
}

func monthAt(tokens []Token, i int) (time.Month, bool) {
	w := word(tokens, i)
	if w == "" {
		return 0, false
	}
	return calendar.ParseMonth(w)
}

// meridiemAt reports "am" or "pm" at i, or "" when neither is there.
func meridiemAt(tokens []Token, i int) string {
	if isWord(tokens, i, "am", "pm") {
		return tokens[i].Text
	}
	return ""
}
