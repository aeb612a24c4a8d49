package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/keyhold/internal/config"
)

// NewCompletionCommand creates the completion command for generating shell completions.
func NewCompletionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for keyhold.

To load completions:

Bash:
  $ source <(keyhold completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ keyhold completion bash > /etc/bash_completion.d/keyhold
  # macOS:
  $ keyhold completion bash > $(brew --prefix)/etc/bash_completion.d/keyhold

Zsh:
  $ keyhold completion zsh > "${fpath[1]}/_keyhold"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ keyhold completion fish | source

  # To load completions for each session, execute once:
  $ keyhold completion fish > ~/.config/fish/completions/keyhold.fish

PowerShell:
  PS> keyhold completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
