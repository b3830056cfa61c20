package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func (a *App) newCompletionsCommand() *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:       "completions [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Long:      "Print a completion script. For example: cftunnel completions --shell zsh > \"${fpath[1]}/_cftunnel\"",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: completionShells,
		Annotations: map[string]string{
			annotationStandalone: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				shell = args[0]
			}
			return writeCompletion(cmd.Root(), shell)
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell to generate for (bash, zsh, fish, powershell)")
	_ = cmd.RegisterFlagCompletionFunc("shell", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func writeCompletion(root *cobra.Command, shell string) error {
	out := root.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	case "":
		return fmt.Errorf("missing shell: use --shell with one of %v", completionShells)
	default:
		return fmt.Errorf("unsupported shell %q: use one of %v", shell, completionShells)
	}
}
