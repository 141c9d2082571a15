package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel"
)

var parseCmd = LeafCommand{
	Use:   "parse [TEXT...]",
	Short: "Split an event description into its message and occurrences",
	Example: `  nickel parse lunch with bob tomorrow at noon
  nickel parse --format json "soccer every tuesday and thursday at 6pm"
  echo "dentist oct 5 at 3:30pm" | nickel parse`,
	BoolFlags: []BoolFlag{
		{Name: "explain", Usage: "show each recognised phrase and the matcher that read it"},
	},
	StrFlags: []StringFlag{
		{Name: "format", Usage: "output format: text, json, yaml or ics (default from config)"},
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
		explain, _ := cmd.Flags().GetBool("explain")
		return runParse(cmd, s, text, explain)
	},
}.Build()

func runParse(cmd *cobra.Command, s *session, text string, explain bool) error {
	format, err := s.format(cmd, "text", "json", "yaml", "ics")
	if err != nil {
		return err
	}

	res := nickel.Parse(text, s.now)
	w := cmd.OutOrStdout()

	switch format {
	case "json", "yaml":
		return encode(w, format, newResultView(res, s.now, explain))
	case "ics":
		return nickel.WriteICS(w, res.Occurrences, nickel.CalendarOptions{
			Summary:  res.Message,
			Location: s.loc,
		})
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Info("Message:"), Primary(fmt.Sprintf("%q", res.Message)))
	_, _ = fmt.Fprintf(w, "%s\n", Info("Occurrences:"))
	if len(res.Occurrences) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("(none)"))
	}
	for i, o := range res.Occurrences {
		_, _ = fmt.Fprintf(w, "  %s %s\n", Silent(fmt.Sprintf("%d.", i+1)), Text(nickel.Describe(o)))
	}

	if explain {
		_, _ = fmt.Fprintf(w, "%s\n", Info("Phrases:"))
		if len(res.Phrases) == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", Silent("(none)"))
		}
		for _, p := range res.Phrases {
			_, _ = fmt.Fprintf(w, "  %s %s\n", Primary(fmt.Sprintf("%q", p.Text)), Silent("("+p.Matcher+")"))
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", Info("Run date:"), Silent(s.now.Format("Mon Jan 2 2006 15:04 MST")))
	}
	return nil
}
