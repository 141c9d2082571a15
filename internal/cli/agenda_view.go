package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel"
	"github.com/copiousfreetime/nickel/internal/calendar"
)

const dateColWidth = 16

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

type agendaModel struct {
	agenda     agenda
	cursor     int // selected day (index into agenda.days)
	scrollY    int // first visible day
	termWidth  int
	termHeight int
	detail     bool // show the occurrences behind the selected day
}

func newAgendaModel(a agenda) agendaModel {
	return agendaModel{agenda: a, termWidth: 100, termHeight: 30, detail: true}
}

func (m agendaModel) Init() tea.Cmd {
	return nil
}

func (m agendaModel) detailLines() int {
	if !m.detail || len(m.agenda.days) == 0 {
		return 0
	}
	return len(m.agenda.days[m.cursor].Slots) + 1
}

func (m agendaModel) visibleRows() int {
	// title(1) + header(1) + separator(1) + footer(2)
	available := m.termHeight - 5 - m.detailLines()
	if available < 1 {
		return 1
	}
	if available > len(m.agenda.days) {
		return len(m.agenda.days)
	}
	return available
}

func (m agendaModel) ensureCursorVisible() agendaModel {
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursor - m.visibleRows() + 1
	}
	maxScroll := len(m.agenda.days) - m.visibleRows()
	m.scrollY = max(min(m.scrollY, maxScroll), 0)
	return m
}

func (m agendaModel) moveTo(i int) agendaModel {
	if len(m.agenda.days) == 0 {
		return m
	}
	m.cursor = max(min(i, len(m.agenda.days)-1), 0)
	return m.ensureCursorVisible()
}

func (m agendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m = m.moveTo(m.cursor + 1)
		case "up", "k":
			m = m.moveTo(m.cursor - 1)
		case "pgdown", "ctrl+d":
			m = m.moveTo(m.cursor + m.visibleRows())
		case "pgup", "ctrl+u":
			m = m.moveTo(m.cursor - m.visibleRows())
		case "home", "g":
			m = m.moveTo(0)
		case "end", "G":
			m = m.moveTo(len(m.agenda.days) - 1)
		case "enter", " ":
			m.detail = !m.detail
			m = m.ensureCursorVisible()
		}
	}
	return m, nil
}

func (m agendaModel) View() string {
	var b strings.Builder

	title := m.agenda.message
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("--- %s ---", title)))
	b.WriteString(" ")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%s to %s", m.agenda.from, m.agenda.to)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(padRight("Day", dateColWidth)))
	b.WriteString(" | ")
	b.WriteString(headerStyle.Render("Times"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", dateColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", max(m.termWidth-dateColWidth-3, 5)))
	b.WriteString("\n")

	if len(m.agenda.days) == 0 {
		b.WriteString(footerStyle.Render("Nothing scheduled in this window."))
		b.WriteString("\n")
	}

	end := min(m.scrollY+m.visibleRows(), len(m.agenda.days))
	for i := m.scrollY; i < end; i++ {
		d := m.agenda.days[i]
		label := padRight(d.Date.Time(time.UTC).Format("Mon Jan 2 2006"), dateColWidth)
		line := label + " | " + slotTimes(d)
		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case d.Date.Weekday() >= calendar.Saturday:
			line = weekendStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.detailLines() > 0 {
		d := m.agenda.days[m.cursor]
		b.WriteString("\n")
		for _, s := range d.Slots {
			b.WriteString(fmt.Sprintf("  %s  %s\n", padRight(slotLabel(s), 16), footerStyle.Render(m.agenda.describeSlot(s))))
		}
	}

	pos := 0
	if len(m.agenda.days) > 0 {
		pos = m.cursor + 1
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%d/%d  ↑/↓ move  g/G first/last  enter details  q quit", pos, len(m.agenda.days))))
	return b.String()
}

// slotTimes lists the times on d, e.g. "9AM, 2PM - 3PM".
func slotTimes(d nickel.Day) string {
	parts := make([]string, len(d.Slots))
	for i, s := range d.Slots {
		parts[i] = slotLabel(s)
	}
	return strings.Join(parts, ", ")
}

func slotLabel(s nickel.Slot) string {
	start, ok := s.Start.Get()
	if !ok {
		return "all day"
	}
	if end, ok := s.End.Get(); ok {
		return start.Kitchen() + " - " + end.Kitchen()
	}
	return start.Kitchen()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func runAgendaViewer(cmd *cobra.Command, a agenda) error {
	p := tea.NewProgram(newAgendaModel(a), tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	_, err := p.Run()
	return err
}
