package cli

import "github.com/spf13/cobra"

// completionCommand prints a shell completion script to c.Out.
func (c *CLI) completionCommand() *cobra.Command {
	gen := map[string]func(cmd *cobra.Command) error{
		"bash":       func(cmd *cobra.Command) error { return cmd.Root().GenBashCompletion(c.Out) },
		"zsh":        func(cmd *cobra.Command) error { return cmd.Root().GenZshCompletion(c.Out) },
		"fish":       func(cmd *cobra.Command) error { return cmd.Root().GenFishCompletion(c.Out, true) },
		"powershell": func(cmd *cobra.Command) error { return cmd.Root().GenPowerShellCompletionWithDesc(c.Out) },
	}

	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for statcard.

  $ source <(statcard completion bash)
  $ statcard completion zsh > "${fpath[1]}/_statcard"
  $ statcard completion fish > ~/.config/fish/completions/statcard.fish
  PS> statcard completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gen[args[0]](cmd)
		},
	}
}
