package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// Clock is a time of day with minute precision, in 24-hour form.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// NewClock returns the clock for hour and minute, wrapping past midnight.
func NewClock(hour, minute int) Clock {
	total := ((hour*60+minute)%minutesPerDay + minutesPerDay) % minutesPerDay
	return Clock{Hour: total / 60, Minute: total % 60}
}

const minutesPerDay = 24 * 60

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock parses a compact 24-hour clock: "HH", "HHMM" or "HHMMSS".
// Seconds are accepted and discarded.
func ParseClock(s string) (Clock, error) {
	switch len(s) {
	case 2, 4, 6:
	default:
		return Clock{}, fmt.Errorf("invalid clock %q, expected HH, HHMM or HHMMSS", s)
	}
	if _, err := strconv.Atoi(s); err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	hour, _ := strconv.Atoi(s[:2])
	minute := 0
	if len(s) >= 4 {
		minute, _ = strconv.Atoi(s[2:4])
	}
	if hour > 23 {
		return Clock{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return Clock{}, fmt.Errorf("minute %d out of range", minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Add returns c moved by d and the number of days the move crossed.
func (c Clock) Add(d time.Duration) (Clock, int) {
	total := c.Minutes() + int(d/time.Minute)
	days := total / minutesPerDay
	if total < 0 && total%minutesPerDay != 0 {
		days--
	}
	return NewClock(0, total), days
}

// Before reports whether c is earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	return c.Minutes() < o.Minutes()
}

// IsPM reports whether c falls at or after noon.
func (c Clock) IsPM() bool {
	return c.Hour >= 12
}

// String returns c in "HH:MM" format.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Kitchen returns c as "3:04PM", omitting zero minutes ("3PM").
func (c Clock) Kitchen() string {
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if c.IsPM() {
		suffix = "PM"
	}
	if c.Minute == 0 {
		return fmt.Sprintf("%d%s", h, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", h, c.Minute, suffix)
}
