package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/world"
)

// completionShells lists the shells cobra can generate scripts for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a shell completion script for waypoint.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [" + strings.Join(completionShells, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for waypoint.

World arguments complete to .toml files and walk completes compass
directions after the world file.

  $ source <(waypoint completion bash)
  $ waypoint completion zsh > "${fpath[1]}/_waypoint"
  $ waypoint completion fish | source
  PS> waypoint completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// completeWorldFile completes the first positional argument to TOML files.
func completeWorldFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeWalkArgs completes the world file and then compass directions.
func completeWalkArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return completeWorldFile(cmd, args, toComplete)
	}
	var dirs []string
	for _, d := range world.Directions() {
		if strings.HasPrefix(d.String(), strings.ToLower(toComplete)) {
			dirs = append(dirs, d.String())
		}
	}
	return dirs, cobra.ShellCompDirectiveNoFileComp
}
