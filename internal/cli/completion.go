package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Class-name completion
// comes from the ValidArgsFunction of the vocabulary commands.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for lv2model.

Besides commands and flags, the scripts complete vocabulary kinds and LV2
class names: "lv2model implied plugin Rev<TAB>" offers Reverb, and
--is-a and --highlight complete classes of the kind already given.

  bash:        source <(lv2model completion bash)
  zsh:         lv2model completion zsh > "${fpath[1]}/_lv2model"
  fish:        lv2model completion fish > ~/.config/fish/completions/lv2model.fish
  powershell:  lv2model completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
