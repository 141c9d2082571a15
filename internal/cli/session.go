package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel/internal/calendar"
	"github.com/copiousfreetime/nickel/internal/config"
)

// session is the resolved environment of one command run: the config after
// flag overrides, the zone and the reference instant.
type session struct {
	cfg     *config.Config
	cfgPath string
	loc     *time.Location
	now     time.Time
}

func configPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

func newSession(cmd *cobra.Command, now func() time.Time) (*session, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Read(path)
	if err != nil {
		return nil, err
	}

	if tz, _ := cmd.Flags().GetString("tz"); tz != "" {
		cfg.Timezone = tz
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if mode, _ := cmd.Flags().GetString("color"); (mode == "auto" || mode == "") && cfg.Color != nil {
		plain = !*cfg.Color
	}

	ref := now().In(loc)
	if runDate, _ := cmd.Flags().GetString("run-date"); runDate != "" {
		ref, err = parseRunDate(runDate, loc)
		if err != nil {
			return nil, err
		}
	}

	return &session{cfg: cfg, cfgPath: path, loc: loc, now: ref}, nil
}

var runDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// parseRunDate reads a reference instant in loc.
func parseRunDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := calendar.ParseDate(s); err == nil {
		return d.Time(loc), nil
	}
	for _, layout := range runDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --run-date %q (use YYYYMMDD, YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339)", s)
}

// format resolves the --format flag against the config default.
func (s *session) format(cmd *cobra.Command, allowed ...string) (string, error) {
	format := s.cfg.Format
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = f.Value.String()
	}
	for _, a := range allowed {
		if a == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("format %q is not supported by %s (valid: %s)", format, cmd.Name(), strings.Join(allowed, ", "))
}

// readInput joins args into the sentence to parse. Without args it asks on a
// terminal and reads standard input otherwise.
func readInput(cmd *cobra.Command, args []string, prompt PromptFunc) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = strings.Join(args, " ")
	case isTerminal(cmd.InOrStdin()):
		answer, err := prompt("Describe the event")
		if err != nil {
			return "", err
		}
		text = answer
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to parse: pass the event description as arguments or on stdin")
	}
	return text, nil
}
