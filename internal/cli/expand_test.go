package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copiousfreetime/nickel"
	"github.com/copiousfreetime/nickel/internal/calendar"
)

func expandArgs(extra ...string) []string {
	return append([]string{"expand", "--static", "--run-date", "20080918", "--tz", "UTC"}, extra...)
}

func TestExpandStatic(t *testing.T) {
	out, err := execute(t, "", expandArgs("--days", "14", "standup every monday at 2pm")...)

	require.NoError(t, err)
	assert.Contains(t, out, "standup (2008-09-18 to 2008-10-01)")
	assert.Contains(t, out, "Mon Sep 22 2008:  2PM")
	assert.Contains(t, out, "Mon Sep 29 2008:  2PM")
	assert.Contains(t, out, "2 day(s) from every Monday starting Mon Sep 22 2008 at 2PM")
	assert.NotContains(t, out, "Oct 6")
}

func TestExpandFrom(t *testing.T) {
	out, err := execute(t, "", expandArgs("--from", "2008-10-01", "--days", "7", "standup every monday at 2pm")...)

	require.NoError(t, err)
	assert.Contains(t, out, "(2008-10-01 to 2008-10-07)")
	assert.Contains(t, out, "Mon Oct 6 2008:  2PM")
	assert.NotContains(t, out, "Sep 29")
}

func TestExpandHorizonFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("horizon_days: 3\n"), 0o644))

	out, err := execute(t, "", expandArgs("--config", path, "gym every day at 7am")...)

	require.NoError(t, err)
	assert.Contains(t, out, "(2008-09-18 to 2008-09-20)")
	assert.Contains(t, out, "3 day(s)")
}

func TestExpandNothing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no occurrences", []string{"buy milk"}, "No dates or times found."},
		{"outside window", []string{"--days", "2", "party on oct 31"}, "Nothing scheduled in this window."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", expandArgs(tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative days", []string{"--days", "-3", "gym every day"}, "--days must be positive"},
		{"bad from", []string{"--from", "someday", "gym every day"}, "invalid --from"},
		{"ics format", []string{"--format", "ics", "gym every day"}, `format "ics" is not supported by expand`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", expandArgs(tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandJSON(t *testing.T) {
	out, err := execute(t, "", expandArgs("--format", "json", "--days", "7", "gym every tuesday and thursday from 6pm to 7pm")...)
	require.NoError(t, err)

	var v agendaView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "gym", v.Message)
	assert.Equal(t, "2008-09-18", v.From)
	assert.Equal(t, "2008-09-24", v.To)

	dates := make([]string, len(v.Days))
	for i, d := range v.Days {
		dates[i] = d.Date
	}
	assert.Equal(t, []string{"2008-09-18", "2008-09-23"}, dates)
	assert.Equal(t, "thursday", v.Days[0].Weekday)
	require.Len(t, v.Days[0].Slots, 1)
	assert.Equal(t, "18:00", v.Days[0].Slots[0].Start)
	assert.Equal(t, "19:00", v.Days[0].Slots[0].End)
	assert.Positive(t, v.Days[0].Slots[0].Occurrence)
}

func TestExpandPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.pdf")

	out, err := execute(t, "", expandArgs("--days", "14", "--pdf", path, "standup every monday at 2pm")...)

	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 day(s) to")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func testAgenda(n int) agenda {
	from := calendar.Date{Year: 2008, Month: 9, Day: 1}
	occ := nickel.Occurrence{
		Kind:      nickel.Daily,
		StartDate: from,
		Interval:  1,
	}
	a := agenda{message: "daily", from: from, to: from.AddDays(n - 1), occs: []nickel.Occurrence{occ}}
	for i := 0; i < n; i++ {
		a.days = append(a.days, nickel.Day{
			Date:  from.AddDays(i),
			Slots: []nickel.Slot{{Index: 0}},
		})
	}
	return a
}

func press(m agendaModel, keys ...tea.KeyMsg) agendaModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(agendaModel)
	}
	return m
}

var (
	keyDown = tea.KeyMsg{Type: tea.KeyDown}
	keyUp   = tea.KeyMsg{Type: tea.KeyUp}
	keyEnd  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}
	keyHome = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}
)

func TestAgendaModelNavigation(t *testing.T) {
	m := newAgendaModel(testAgenda(10))

	m = press(m, keyDown, keyDown)
	assert.Equal(t, 2, m.cursor)

	m = press(m, keyUp, keyUp, keyUp)
	assert.Equal(t, 0, m.cursor, "cursor stops at the first day")

	m = press(m, keyEnd)
	assert.Equal(t, 9, m.cursor)

	m = press(m, keyDown)
	assert.Equal(t, 9, m.cursor, "cursor stops at the last day")

	m = press(m, keyHome)
	assert.Equal(t, 0, m.cursor)
}

func TestAgendaModelScrolls(t *testing.T) {
	m := newAgendaModel(testAgenda(40))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = next.(agendaModel)

	m = press(m, keyEnd)

	assert.Equal(t, 39, m.cursor)
	assert.Equal(t, 40-m.visibleRows(), m.scrollY)
	assert.Contains(t, m.View(), "Fri Oct 10 2008")
	assert.NotContains(t, m.View(), "Tue Sep 2 2008")
}

func TestAgendaModelDetailToggle(t *testing.T) {
	m := newAgendaModel(testAgenda(3))
	assert.Contains(t, m.View(), "every day starting Mon Sep 1 2008")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.detail)
	assert.NotContains(t, m.View(), "every day starting")
}

func TestAgendaModelQuit(t *testing.T) {
	m := newAgendaModel(testAgenda(3))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAgendaModelEmpty(t *testing.T) {
	m := newAgendaModel(agenda{message: "nothing"})

	m = press(m, keyDown, keyEnd)

	view := m.View()
	assert.Contains(t, view, "Nothing scheduled in this window.")
	assert.Contains(t, view, "0/0")
}
