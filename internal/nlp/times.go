package nlp

import (
	"github.com/samber/mo"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

const (
	minutesPerDay = 24 * 60
	halfDay       = 12 * 60
)

// rawClock is a clock as written, before am/pm inference.
type rawClock struct {
	hour     int
	minute   int
	meridiem string // "am", "pm" or ""
	explicit bool   // noon, midnight, am/pm or a 24-hour value
	named    bool   // noon or midnight
}

// value is the clock read literally, in minutes after midnight.
func (c rawClock) value() int {
	switch c.meridiem {
	case "am":
		return c.morning()
	case "pm":
		return c.morning() + halfDay
	}
	return (c.hour%24)*60 + c.minute
}

func (c rawClock) morning() int { return (c.hour%12)*60 + c.minute }
func (c rawClock) evening() int { return c.morning() + halfDay }

// rawTime is a time list item: a point or a range.
type rawTime struct {
	start  rawClock
	end    rawClock
	ranged bool
}

// parseClock reads "noon", "midnight", "5", "5pm", "5:30", "5.30pm", "545am"
// and "5 o'clock".
func parseClock(tokens []Token, i int) (rawClock, int, bool) {
	switch word(tokens, i) {
	case "noon", "midday":
		return rawClock{hour: 12, explicit: true, named: true}, i + 1, true
	case "midnight":
		return rawClock{hour: 0, explicit: true, named: true}, i + 1, true
	}
	n, ok := number(tokens, i)
	if !ok || n.Ordinal || n.Digits == 0 {
		return rawClock{}, i, false
	}
	if n.Digits == 3 || n.Digits == 4 {
		mer := meridiemAt(tokens, i+1)
		h, m := n.Value/100, n.Value%100
		if mer == "" || h < 1 || h > 12 || m > 59 {
			return rawClock{}, i, false
		}
		return rawClock{hour: h, minute: m, meridiem: mer, explicit: true}, i + 2, true
	}
	c := rawClock{hour: n.Value}
	end := i + 1
	if (isPunct(tokens, end, ":") || isPunct(tokens, end, ".")) && touching(tokens[i], tokens[end]) {
		if m, ok := number(tokens, end+1); ok && m.Digits == 2 && m.Value < 60 && touching(tokens[end], m) {
			c.minute = m.Value
			end += 2
		}
	}
	if mer := meridiemAt(tokens, end); mer != "" {
		if c.hour < 1 || c.hour > 12 {
			return rawClock{}, i, false
		}
		c.meridiem, c.explicit = mer, true
		return c, end + 1, true
	}
	if isWord(tokens, end, "o") && (isPunct(tokens, end+1, "'") || isPunct(tokens, end+1, "’")) && isWord(tokens, end+2, "clock") {
		end += 3
	}
	if c.hour > 24 {
		return rawClock{}, i, false
	}
	c.explicit = c.hour == 0 || c.hour > 12
	return c, end, true
}

// bare reports whether c is a lone number with nothing marking it as a time.
// A lone 13 to 24 reads as 24-hour only once something else marks it.
func (c rawClock) bare(start, end int) bool {
	return !c.named && c.meridiem == "" && end == start+1
}

// notATime rejects a bare number that is really a count or a date part.
func notATime(tokens []Token, end int) bool {
	if durationUnits[word(tokens, end)] || isPunct(tokens, end, "/") {
		return true
	}
	_, isMonth := monthAt(tokens, end)
	return isMonth
}

var timeConnectors = []string{"to", "until", "till", "through", "thru"}

// parseTimeItem reads a clock, or a clock range joined by "to" or "-".
// between allows "and" as the range connector.
func parseTimeItem(tokens []Token, i int, between bool) (rawTime, int, bool) {
	start, end, ok := parseClock(tokens, i)
	if !ok {
		return rawTime{}, i, false
	}
	if start.bare(i, end) && notATime(tokens, end) {
		return rawTime{}, i, false
	}
	item := rawTime{start: start}
	k := end
	if isWord(tokens, k, timeConnectors...) || isPunct(tokens, k, "-") || (between && isWord(tokens, k, "and")) {
		if stop, e, ok := parseClock(tokens, k+1); ok && !(stop.bare(k+1, e) && notATime(tokens, e)) {
			item.end, item.ranged, end = stop, true, e
		}
	}
	return item, end, true
}

// timePrefix skips "at", "@", "from", "between" and "starting at".
func timePrefix(tokens []Token, i int) (int, bool, bool) {
	j := optional(tokens, i, "starting", "starts", "beginning", "begins")
	switch {
	case isWord(tokens, j, "at", "from", "around") || isPunct(tokens, j, "@"):
		return j + 1, false, true
	case isWord(tokens, j, "between"):
		return j + 1, true, true
	}
	return i, false, false
}

// matchTimePoint reads a single clock. A bare number needs "at" in front.
func matchTimePoint(tokens []Token, _ Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		j, _, prefixed := timePrefix(tokens, i)
		c, end, ok := parseClock(tokens, j)
		if !ok {
			return 0, nil, false
		}
		if c.bare(j, end) && (!prefixed || notATime(tokens, end)) {
			return 0, nil, false
		}
		items := resolveTimes([]rawTime{{start: c}})
		return end, []Fragment{TimeFragment{Clock: items[0].Start}}, true
	})
}

// matchTimeRange reads "[from|between] <clock> to|-|until <clock>".
func matchTimeRange(tokens []Token, _ Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		j, between, _ := timePrefix(tokens, i)
		item, end, ok := parseTimeItem(tokens, j, between)
		if !ok || !item.ranged {
			return 0, nil, false
		}
		items := resolveTimes([]rawTime{item})
		return end, []Fragment{TimeRangeFragment{Start: items[0].Start, End: items[0].End.MustGet()}}, true
	})
}

// timeSeparator reads ",", "and", ", and" and "&" between list items.
func timeSeparator(tokens []Token, i int) (int, bool) {
	j := i
	if isPunct(tokens, j, ",") || isPunct(tokens, j, "&") {
		j++
	}
	j = optional(tokens, j, "and")
	return j, j > i
}

// matchTimeList reads two or more clocks or clock ranges joined by commas
// and "and".
func matchTimeList(tokens []Token, _ Reference) []Match {
	return scanAll(tokens, func(i int) (int, []Fragment, bool) {
		j, between, prefixed := timePrefix(tokens, i)
		first, end, ok := parseTimeItem(tokens, j, between)
		if !ok || (!prefixed && !first.ranged && first.start.bare(j, end)) {
			return 0, nil, false
		}
		items := []rawTime{first}
		for {
			k, ok := timeSeparator(tokens, end)
			if !ok {
				break
			}
			k, between, _ = timePrefix(tokens, k)
			item, e, ok := parseTimeItem(tokens, k, between)
			if !ok {
				break
			}
			items = append(items, item)
			end = e
		}
		if len(items) < 2 {
			return 0, nil, false
		}
		return end, []Fragment{TimeListFragment{Items: resolveTimes(items)}}, true
	})
}

// resolveTimes infers am/pm for bare hours. A lone point is literal; in a
// list each bare hour takes its earliest reading not before the previous
// item; ranges follow their marked side or business hours.
func resolveTimes(items []rawTime) []TimeItem {
	out := make([]TimeItem, len(items))
	prev := -1
	for n, item := range items {
		if !item.ranged {
			start := resolvePoint(item.start, prev)
			out[n] = TimeItem{Start: clockOf(start)}
			prev = start
			continue
		}
		start, end := resolveRange(item.start, item.end, prev)
		out[n] = TimeItem{Start: clockOf(start), End: mo.Some(clockOf(end))}
		prev = start
	}
	return out
}

func clockOf(minutes int) calendar.Clock {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return calendar.NewClock(minutes/60, minutes%60)
}

func resolvePoint(c rawClock, prev int) int {
	if c.explicit || prev < 0 {
		return c.value()
	}
	for _, v := range []int{c.morning(), c.evening()} {
		if v >= prev {
			return v
		}
	}
	return c.value()
}

func resolveRange(s, e rawClock, prev int) (int, int) {
	switch {
	case s.explicit && e.explicit:
		return s.value(), e.value()
	case e.explicit:
		end := e.value()
		if end >= halfDay {
			if s.evening() <= end {
				return s.evening(), end
			}
			return s.morning(), end
		}
		if s.morning() < end {
			return s.morning(), end
		}
		return s.evening(), end
	case s.explicit:
		start := s.value()
		if start >= halfDay {
			if e.evening() > start {
				return start, e.evening()
			}
			return start, e.morning()
		}
		if e.morning() > start {
			return start, e.morning()
		}
		return start, e.evening()
	}
	if prev >= 0 {
		start := resolvePoint(s, prev)
		for _, v := range []int{e.morning(), e.evening()} {
			if v > start {
				return start, v
			}
		}
		return start, e.morning()
	}
	switch {
	case s.hour > e.hour:
		return s.value(), e.evening()
	case s.hour < e.hour && s.hour <= 6:
		return s.evening(), e.evening()
	}
	return s.value(), e.value()
}
