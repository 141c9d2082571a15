package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set from ldflags through SetVersionInfo.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo records the build metadata reported by "nickel version".
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), appVersion)
			return
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "nickel %s (commit: %s, built: %s)\n", appVersion, appCommit, appDate)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
}
