package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copiousfreetime/nickel/internal/config"
)

var configSetCmd = LeafCommand{
	Use:   "set KEY VALUE",
	Short: "Change a setting (timezone, format, horizon_days, color)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath(cmd)
		if err != nil {
			return err
		}
		return runConfigSet(cmd, path, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, path, key, value string) error {
	cfg, err := config.Read(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to '%s'", Primary(key), value)))
	return nil
}
