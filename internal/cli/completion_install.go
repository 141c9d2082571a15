package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const completionMarker = "# nickel shell completion"

// rcFiles are the shell startup files, relative to the home directory.
var rcFiles = map[string]string{
	"bash":       ".bashrc",
	"zsh":        ".zshrc",
	"fish":       filepath.Join(".config", "fish", "config.fish"),
	"powershell": filepath.Join(".config", "powershell", "Microsoft.PowerShell_profile.ps1"),
}

var completionHooks = map[string]string{
	"bash":       `eval "$(nickel completion bash)"`,
	"zsh":        `eval "$(nickel completion zsh)"`,
	"fish":       `nickel completion fish | source`,
	"powershell": `nickel completion powershell | Out-String | Invoke-Expression`,
}

// installCompletion appends the completion hook to the shell's rc file. It
// reports false when the hook was already there.
func installCompletion(shell, homeDir string) (bool, error) {
	rc, ok := rcFiles[shell]
	if !ok {
		return false, fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
	path := filepath.Join(homeDir, rc)

	if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), completionMarker) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	_, werr := fmt.Fprintf(f, "\n%s\n%s\n", completionMarker, completionHooks[shell])
	if cerr := f.Close(); cerr != nil {
		return false, cerr
	}
	return werr == nil, werr
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	rc, ok := rcFiles[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
	display := filepath.Join("~", rc)

	confirmed, err := confirm(fmt.Sprintf("Add nickel completions for %s to %s?", shell, display))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	added, err := installCompletion(shell, homeDir)
	if err != nil {
		return err
	}
	msg := "completions installed for %s in %s"
	if !added {
		msg = "completions already installed for %s in %s"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf(msg, Primary(shell), Primary(display))))
	return nil
}
