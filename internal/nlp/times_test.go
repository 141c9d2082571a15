package nlp

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

func point(h, m int) TimeItem {
	return TimeItem{Start: calendar.NewClock(h, m)}
}

func span(h1, m1, h2, m2 int) TimeItem {
	return TimeItem{Start: calendar.NewClock(h1, m1), End: mo.Some(calendar.NewClock(h2, m2))}
}

// timesIn returns the time items of the only time match in text.
func timesIn(t *testing.T, text string) []TimeItem {
	t.Helper()
	var items []TimeItem
	for _, m := range runMatchers(Normalize(text), NewReference(ref(2008, 9, 10))) {
		for _, f := range m.Fragments {
			if isTime(f) {
				items = append(items, timeItems(f)...)
			}
		}
	}
	return items
}

func TestTimeInference(t *testing.T) {
	tests := []struct {
		input string
		want  []TimeItem
	}{
		{"at 10", []TimeItem{point(10, 0)}},
		{"at 5", []TimeItem{point(5, 0)}},
		{"at 12", []TimeItem{point(12, 0)}},
		{"noon", []TimeItem{point(12, 0)}},
		{"midnight", []TimeItem{point(0, 0)}},
		{"5pm", []TimeItem{point(17, 0)}},
		{"12am", []TimeItem{point(0, 0)}},
		{"12pm", []TimeItem{point(12, 0)}},
		{"17:30", []TimeItem{point(17, 30)}},
		{"at 17", []TimeItem{point(17, 0)}},
		{"from 13 to 15", []TimeItem{span(13, 0, 15, 0)}},
		{"at 5:45 am", []TimeItem{point(5, 45)}},
		{"545am", []TimeItem{point(5, 45)}},
		{"@ 7", []TimeItem{point(7, 0)}},
		{"starts at 9am", []TimeItem{point(9, 0)}},
		{"at 6 o'clock", []TimeItem{point(6, 0)}},
		{"9 to 5", []TimeItem{span(9, 0, 17, 0)}},
		{"8 to 4", []TimeItem{span(8, 0, 16, 0)}},
		{"1 to 5", []TimeItem{span(13, 0, 17, 0)}},
		{"9 to 11", []TimeItem{span(9, 0, 11, 0)}},
		{"9 to 5pm", []TimeItem{span(9, 0, 17, 0)}},
		{"5-8pm", []TimeItem{span(17, 0, 20, 0)}},
		{"9-5am", []TimeItem{span(21, 0, 5, 0)}},
		{"8am to 4", []TimeItem{span(8, 0, 16, 0)}},
		{"9pm to 2", []TimeItem{span(21, 0, 2, 0)}},
		{"noon to midnight", []TimeItem{span(12, 0, 0, 0)}},
		{"between 2 and 4pm", []TimeItem{span(14, 0, 16, 0)}},
		{"at 10, 11, 12, 1", []TimeItem{point(10, 0), point(11, 0), point(12, 0), point(13, 0)}},
		{"at 11am, 2 and 3", []TimeItem{point(11, 0), point(14, 0), point(15, 0)}},
		{"from 8 to 4 and 9 to 5", []TimeItem{span(8, 0, 16, 0), span(9, 0, 17, 0)}},
		{"at 4pm and 5pm", []TimeItem{point(16, 0), point(17, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, timesIn(t, tt.input))
		})
	}
}

func TestBareNumbersAreNotTimes(t *testing.T) {
	for _, input := range []string{"5", "23", "0", "room 13", "flight 23", "take 2 pills", "at 5 days", "2 to 3 weeks", "10/2"} {
		t.Run(input, func(t *testing.T) {
			assert.Empty(t, timesIn(t, input))
		})
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, input := range []string{"13pm", "0am", "25", "1260pm", "5th"} {
		t.Run(input, func(t *testing.T) {
			_, _, ok := parseClock(Normalize(input), 0)
			assert.False(t, ok)
		})
	}
}

func TestResolveTimesListCarriesAfternoon(t *testing.T) {
	items := resolveTimes([]rawTime{
		{start: rawClock{hour: 11, meridiem: "am", explicit: true}},
		{start: rawClock{hour: 1}, end: rawClock{hour: 3}, ranged: true},
	})
	require.Len(t, items, 2)
	assert.Equal(t, point(11, 0), items[0])
	assert.Equal(t, span(13, 0, 15, 0), items[1])
}
