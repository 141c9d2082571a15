package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  parse       Split an event description..."
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -f, --format string   output format..."
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// "  nickel parse lunch tomorrow"
	exampleRe = regexp.MustCompile(`^( +)(nickel|echo) (.*)$`)
	footerRe  = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's usage text with the package styles.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long)
			buf.WriteString("\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		var out strings.Builder
		for _, line := range lines {
			out.WriteString(colorizeLine(line))
			out.WriteString("\n")
		}
		cmd.Print(out.String())
	}
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := exampleRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + " " + Text(m[3])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
