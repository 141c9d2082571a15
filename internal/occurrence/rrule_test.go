package occurrence

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

func TestROption(t *testing.T) {
	o := weekly("20080922", calendar.Monday).WithTimes(clock("14"), mo.None[calendar.Clock]())
	o.EndDate = mo.Some(date("20081103"))

	opts := o.ROption(time.UTC)
	assert.Equal(t, rrule.WEEKLY, opts.Freq)
	assert.Equal(t, 1, opts.Interval)
	assert.Equal(t, time.Date(2008, 9, 22, 14, 0, 0, 0, time.UTC), opts.Dtstart)
	assert.Equal(t, time.Date(2008, 11, 3, 23, 59, 59, 0, time.UTC), opts.Until)
	require.Len(t, opts.Byweekday, 1)
	assert.Equal(t, rrule.MO, opts.Byweekday[0])
}

func TestROptionSingleIsCountOne(t *testing.T) {
	opts := Occurrence{Kind: Single, StartDate: date("20080918")}.ROption(time.UTC)
	assert.Equal(t, 1, opts.Count)
	assert.True(t, opts.Until.IsZero())
	assert.Equal(t, time.Date(2008, 9, 18, 0, 0, 0, 0, time.UTC), opts.Dtstart)
}

func TestRRuleString(t *testing.T) {
	tests := []struct {
		name string
		occ  Occurrence
		want []string
	}{
		{
			name: "weekly",
			occ:  weekly("20080922", calendar.Monday),
			want: []string{"FREQ=WEEKLY", "BYDAY=MO"},
		},
		{
			name: "every other day",
			occ:  Occurrence{Kind: Daily, StartDate: date("20080920"), Interval: 2},
			want: []string{"FREQ=DAILY", "INTERVAL=2"},
		},
		{
			name: "day of month",
			occ:  Occurrence{Kind: DateMonthly, StartDate: date("20080922"), Interval: 1, DateOfMonth: 22},
			want: []string{"FREQ=MONTHLY", "BYMONTHDAY=22"},
		},
		{
			name: "single",
			occ:  Occurrence{Kind: Single, StartDate: date("20080918")},
			want: []string{"COUNT=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.occ.RRuleString(time.UTC)
			assert.NotContains(t, got, "DTSTART")
			for _, part := range tt.want {
				assert.Contains(t, got, part)
			}
		})
	}
}

func TestRRuleRejectsInvalidOccurrence(t *testing.T) {
	_, err := Occurrence{Kind: Weekly, StartDate: date("20080922"), Interval: 1}.RRule(time.UTC)
	assert.Error(t, err)
}

func TestRRuleNthWeekday(t *testing.T) {
	o := Occurrence{
		Kind:        DayMonthly,
		StartDate:   date("20080901"),
		Interval:    1,
		DayOfWeek:   mo.Some(calendar.Tuesday),
		WeekOfMonth: 2,
	}
	r, err := o.RRule(time.UTC)
	require.NoError(t, err)

	got := r.Between(time.Date(2008, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2008, 11, 30, 0, 0, 0, 0, time.UTC), true)
	assert.Equal(t, []time.Time{
		time.Date(2008, 9, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2008, 10, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2008, 11, 11, 0, 0, 0, 0, time.UTC),
	}, got)
}
