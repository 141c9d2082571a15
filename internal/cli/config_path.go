package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configPathCmd = LeafCommand{
	Use:   "path",
	Short: "Print the location of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath(cmd)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}.Build()
