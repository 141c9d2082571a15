package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = newCompletionCmd()

func newCompletionCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "completion [SHELL]",
		Short: "Generate a shell completion script",
		Example: `  eval "$(nickel completion bash)"
  nickel completion fish | source
  nickel completion --install zsh`,
		Args: cobra.RangeArgs(0, 1),
		BoolFlags: []BoolFlag{
			{Name: "install", Usage: "add the completion hook to your shell startup file"},
			{Name: "yes", Usage: "skip confirmation prompt"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = detectShell(os.Getenv("SHELL"))
				if shell == "" {
					return fmt.Errorf("could not detect shell from $SHELL; please specify one explicitly (bash, zsh, fish, powershell)")
				}
			}
			if install, _ := cmd.Flags().GetBool("install"); install {
				homeDir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				confirm := NewConfirmFunc()
				if yes, _ := cmd.Flags().GetBool("yes"); yes {
					confirm = AlwaysYes()
				}
				return runCompletionInstall(cmd, shell, homeDir, confirm)
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

// detectShell maps a $SHELL path to a supported shell name.
func detectShell(shellPath string) string {
	switch base := filepath.Base(shellPath); base {
	case "bash", "zsh", "fish":
		return base
	case "pwsh", "powershell":
		return "powershell"
	}
	return ""
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}
