package client

import (
	"github.com/spf13/cobra"
)

func (a *App) newListCommand() *cobra.Command {
	var withIngress bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tunnels of the account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := a.services.TunnelService.List(a.reporting(cmd.Context()), withIngress)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				a.printer.info("No tunnels found. Create one with: " + boldStyle.Render("cftunnel create <name>"))
				return nil
			}
			a.printer.tunnels(summaries, withIngress)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withIngress, "ingress", "i", false, "Also fetch each tunnel's routes")
	return cmd
}
