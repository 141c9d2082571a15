package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nickel",
	Short: "Pull dates and times out of plain English event descriptions",
	Long: `nickel reads a sentence such as "lunch with bob tomorrow at noon" and
splits it into the event message and the occurrences it describes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupColor(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/nickel/config.yaml)")
	flags.String("tz", "", "timezone used to resolve relative dates (default from config, then local)")
	flags.String("run-date", "", "reference date: YYYYMMDD, YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339 (default now)")
	flags.String("color", "auto", "colorize output: auto, always or never")

	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(icsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupColor decides whether styles are rendered for this invocation. A
// config file setting applies later, when the session loads it.
func setupColor(cmd *cobra.Command) error {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "always":
		plain = false
	case "never":
		plain = true
	case "auto", "":
		plain = !isTerminal(cmd.OutOrStdout())
	default:
		return fmt.Errorf("invalid --color %q (valid: auto, always, never)", mode)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
