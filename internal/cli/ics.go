package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel"
	"github.com/copiousfreetime/nickel/internal/hashutil"
	"github.com/copiousfreetime/nickel/internal/stringutil"
)

var icsCmd = LeafCommand{
	Use:   "ics [TEXT...]",
	Short: "Write an event description as an iCalendar file",
	Example: `  nickel ics "team dinner next friday at 7pm" > dinner.ics
  nickel ics --output ~/Downloads --stable-uid standup every monday at 9:30am`,
	BoolFlags: []BoolFlag{
		{Name: "stable-uid", Usage: "derive event UIDs from the event so re-imports update it"},
	},
	StrFlags: []StringFlag{
		{Name: "output", Usage: "write to this file, or to <message>.ics in this directory, instead of stdout"},
		{Name: "summary", Usage: "event title (default: the extracted message)"},
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
		output, _ := cmd.Flags().GetString("output")
		summary, _ := cmd.Flags().GetString("summary")
		stable, _ := cmd.Flags().GetBool("stable-uid")
		return runICS(cmd, s, text, icsOptions{output: output, summary: summary, stableUID: stable})
	},
}.Build()

type icsOptions struct {
	output    string
	summary   string
	stableUID bool
}

func runICS(cmd *cobra.Command, s *session, text string, opts icsOptions) error {
	res := nickel.Parse(text, s.now)
	if len(res.Occurrences) == 0 {
		return fmt.Errorf("no dates or times found in %q", text)
	}
	summary := opts.summary
	if summary == "" {
		summary = res.Message
	}

	calOpts := nickel.CalendarOptions{Summary: summary, Location: s.loc}
	if opts.stableUID {
		seeds := make([]string, len(res.Occurrences))
		for i, o := range res.Occurrences {
			seeds[i] = summary + "\x00" + o.StartDate.String() + "\x00" + nickel.Describe(o)
		}
		calOpts.NewUID = hashutil.UIDSequence(seeds)
	}

	output := outputPath(opts.output, res.Message, ".ics")
	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := nickel.WriteICS(w, res.Occurrences, calOpts); err != nil {
		return err
	}

	if output != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Text(fmt.Sprintf("wrote %d event(s) to %s", len(res.Occurrences), Primary(output))))
	}
	return nil
}

// outputPath names a file after message when path is an existing directory.
func outputPath(path, message, ext string) string {
	if path == "" {
		return ""
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, stringutil.FileName(message, ext))
	}
	return path
}
