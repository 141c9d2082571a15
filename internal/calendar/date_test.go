package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain", input: "20080825", want: Date{2008, time.August, 25}},
		{name: "leap day", input: "20080229", want: Date{2008, time.February, 29}},
		{name: "not a leap year", input: "20090229", wantErr: true},
		{name: "month 13", input: "20081301", wantErr: true},
		{name: "day 0", input: "20080800", wantErr: true},
		{name: "short", input: "2008082", wantErr: true},
		{name: "letters", input: "2008aug1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("20080131")

	assert.Equal(t, MustParseDate("20080201"), d.AddDays(1))
	assert.Equal(t, MustParseDate("20071231"), d.AddDays(-31))
	assert.Equal(t, MustParseDate("20080214"), d.AddWeeks(2))
	assert.Equal(t, MustParseDate("20080229"), d.AddMonths(1))
	assert.Equal(t, MustParseDate("20071130"), d.AddMonths(-2))
	assert.Equal(t, MustParseDate("20090131"), d.AddMonths(12))
	assert.Equal(t, MustParseDate("20090228"), MustParseDate("20080229").AddYears(1))
	assert.Equal(t, MustParseDate("20090224"), MustParseDate("20081224").AddMonths(2))
}

func TestDateWeekday(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"20080825", Monday},
		{"20080826", Tuesday},
		{"20080229", Friday},
		{"20071125", Sunday},
		{"20140209", Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(tt.date).Weekday())
		})
	}
}

func TestWeekdaySearch(t *testing.T) {
	// Thursday, September 18, 2008
	d := MustParseDate("20080918")

	assert.Equal(t, MustParseDate("20080918"), d.OnOrAfter(Thursday))
	assert.Equal(t, MustParseDate("20080925"), d.NextWeekday(Thursday))
	assert.Equal(t, MustParseDate("20080922"), d.NextWeekday(Monday))
	assert.Equal(t, MustParseDate("20080915"), d.OnOrBefore(Monday))
	assert.Equal(t, MustParseDate("20080918"), d.OnOrBefore(Thursday))
}

func TestNthWeekday(t *testing.T) {
	sep := MustParseDate("20080901")

	assert.Equal(t, MustParseDate("20080901"), sep.NthWeekday(1, Monday))
	assert.Equal(t, MustParseDate("20080915"), sep.NthWeekday(3, Monday))
	assert.Equal(t, MustParseDate("20080909"), sep.NthWeekday(2, Tuesday))
	assert.Equal(t, MustParseDate("20080930"), sep.NthWeekday(-1, Tuesday))
	assert.Equal(t, MustParseDate("20081230"), MustParseDate("20081201").NthWeekday(-1, Tuesday))
	assert.Equal(t, MustParseDate("20081029"), sep.NthWeekday(5, Monday), "spills into october")
}

func TestMonthBounds(t *testing.T) {
	d := MustParseDate("20080215")

	assert.Equal(t, MustParseDate("20080201"), d.FirstOfMonth())
	assert.Equal(t, MustParseDate("20080229"), d.LastOfMonth())
	assert.Equal(t, MustParseDate("20090228"), d.AddYears(1).LastOfMonth())
	assert.True(t, IsLeap(2000))
	assert.False(t, IsLeap(1900))
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2008, time.February, 29},
		{2009, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2008, time.September, 30},
		{2008, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%d %s", tt.year, tt.month)
	}
}

func TestDateCompare(t *testing.T) {
	a := MustParseDate("20080825")
	b := MustParseDate("20080826")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(NewDate(2008, time.August, 25)))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, a.DaysUntil(b))
	assert.Equal(t, 366, MustParseDate("20080101").DaysUntil(MustParseDate("20090101")))
}

func TestDateFormatting(t *testing.T) {
	d := NewDate(2009, time.March, 1)

	assert.Equal(t, "2009-03-01", d.String())
	assert.Equal(t, "20090301", d.Compact())
	assert.True(t, d.Valid())
	assert.False(t, Date{2009, time.February, 30}.Valid())
	assert.True(t, Date{}.IsZero())
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input string
		want  time.Month
		ok    bool
	}{
		{"oct", time.October, true},
		{"october", time.October, true},
		{"sept", time.September, true},
		{"may", time.May, true},
		{"dec", time.December, true},
		{"marc", 0, false},
		{"ma", 0, false},
		{"monday", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMonth(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayConversion(t *testing.T) {
	assert.Equal(t, Monday, FromTimeWeekday(time.Monday))
	assert.Equal(t, Sunday, FromTimeWeekday(time.Sunday))
	assert.Equal(t, time.Sunday, Sunday.TimeWeekday())
	assert.Equal(t, time.Wednesday, Wednesday.TimeWeekday())
	assert.Equal(t, "friday", Friday.String())
}
