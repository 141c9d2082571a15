package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel"
	"github.com/copiousfreetime/nickel/internal/calendar"
)

// agenda is an event expanded over a window of days.
type agenda struct {
	message string
	from    calendar.Date
	to      calendar.Date
	occs    []nickel.Occurrence
	days    []nickel.Day
}

// describeSlot names the occurrence behind a slot.
func (a agenda) describeSlot(s nickel.Slot) string {
	if s.Index < 0 || s.Index >= len(a.occs) {
		return ""
	}
	return nickel.Describe(a.occs[s.Index])
}

type expandOptions struct {
	days   int
	from   string
	pdf    string
	static bool
}

var expandCmd = LeafCommand{
	Use:   "expand [TEXT...]",
	Short: "List the concrete days an event falls on",
	Example: `  nickel expand standup every weekday at 9:30am --days 14
  nickel expand --from 2026-01-01 --pdf agenda.pdf "rent on the 1st of every month"`,
	BoolFlags: []BoolFlag{
		{Name: "static", Usage: "print the agenda instead of opening the interactive viewer"},
	},
	StrFlags: []StringFlag{
		{Name: "format", Usage: "output format: text, json or yaml (default from config)"},
		{Name: "from", Usage: "first day of the window (YYYY-MM-DD, default: run date)"},
		{Name: "pdf", Usage: "write the agenda to this PDF file, or to <message>.pdf in this directory"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Usage: "length of the window in days (default: horizon_days from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, time.Now)
		if err != nil {
			return err
		}
		text, err := readInput(cmd, args, NewPromptFunc())
		if err != nil {
			return err
		}
		var opts expandOptions
		opts.days, _ = cmd.Flags().GetInt("days")
		opts.from, _ = cmd.Flags().GetString("from")
		opts.pdf, _ = cmd.Flags().GetString("pdf")
		opts.static, _ = cmd.Flags().GetBool("static")
		return runExpand(cmd, s, text, opts)
	},
}.Build()

func runExpand(cmd *cobra.Command, s *session, text string, opts expandOptions) error {
	format, err := s.format(cmd, "text", "json", "yaml")
	if err != nil {
		return err
	}

	a, err := buildAgenda(s, text, opts)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if opts.pdf != "" {
		path := outputPath(opts.pdf, a.message, ".pdf")
		if err := renderAgendaPDF(a, path); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("wrote %d day(s) to %s", len(a.days), Primary(path))))
		return nil
	}

	switch format {
	case "json", "yaml":
		return encode(w, format, newAgendaView(a))
	}

	if !opts.static && isTerminal(w) && isTerminal(cmd.InOrStdin()) {
		return runAgendaViewer(cmd, a)
	}
	return printAgenda(w, a)
}

func buildAgenda(s *session, text string, opts expandOptions) (agenda, error) {
	from := calendar.DateOf(s.now)
	if opts.from != "" {
		t, err := parseRunDate(opts.from, s.loc)
		if err != nil {
			return agenda{}, fmt.Errorf("invalid --from: %w", err)
		}
		from = calendar.DateOf(t)
	}

	days := opts.days
	if days == 0 {
		days = s.cfg.HorizonDays
	}
	if days < 1 {
		return agenda{}, fmt.Errorf("--days must be positive, got %d", days)
	}
	to := from.AddDays(days - 1)

	res := nickel.Parse(text, s.now)
	expanded, err := nickel.Expand(res.Occurrences, from, to, s.loc)
	if err != nil {
		return agenda{}, err
	}
	return agenda{message: res.Message, from: from, to: to, occs: res.Occurrences, days: expanded}, nil
}

// printAgenda writes the static agenda, one line per day.
func printAgenda(w io.Writer, a agenda) error {
	title := a.message
	if title == "" {
		title = "(untitled)"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(title), Silent(fmt.Sprintf("(%s to %s)", a.from, a.to)))

	if len(a.occs) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Text("No dates or times found."))
		return nil
	}
	if len(a.days) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Text("Nothing scheduled in this window."))
		return nil
	}
	for _, d := range a.days {
		_, _ = fmt.Fprintf(w, "  %s\n", Text(nickel.FormatDay(d)))
	}
	_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("%d day(s) from %s", len(a.days), strings.Join(occurrenceList(a.occs), "; "))))
	return nil
}

func occurrenceList(occs []nickel.Occurrence) []string {
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = nickel.Describe(o)
	}
	return out
}
