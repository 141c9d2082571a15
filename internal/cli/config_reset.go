package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Remove the configuration file and go back to the defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath(cmd)
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return runConfigReset(cmd, path, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, path string, confirm ConfirmFunc) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("already using the defaults"))
		return nil
	}

	confirmed, err := confirm(fmt.Sprintf("Delete %s and reset to defaults?", path))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := os.Remove(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("configuration reset to defaults"))
	return nil
}
