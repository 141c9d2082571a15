package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel/internal/config"
)

var configGetCmd = LeafCommand{
	Use:   "get [KEY]",
	Short: "Show one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath(cmd)
		if err != nil {
			return err
		}
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigGet(cmd, path, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, path, key string) error {
	cfg, err := config.Read(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, value)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Configuration (%s):", Silent(path))))
	for _, k := range config.Keys {
		value, _ := cfg.Get(k)
		if value == "" {
			value = Silent("(local)")
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", Primary(padRight(k+":", 14)), Text(value))
	}
	return nil
}
