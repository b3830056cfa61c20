package client

import (
	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (a *App) newTokenCommand() *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "token <name>",
		Short: "Print the connector token of a developer's tunnel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runToken(cmd, args[0], copyToken)
		},
	}

	cmd.Flags().BoolVarP(&copyToken, "copy", "c", false, "Copy the token to the clipboard")
	return cmd
}

func (a *App) runToken(cmd *cobra.Command, name string, copyToken bool) error {
	p := a.printer

	tunnel, token, err := a.services.TunnelService.Token(a.reporting(cmd.Context()), name)
	if err != nil {
		return err
	}

	p.warn(app.MsgTokenSensitive)
	p.blank()
	p.line("  %s %s", boldStyle.Render("Tunnel:"), tunnel.Name)
	p.line("  %s", boldStyle.Render("Dev command:"))
	p.line("  cftunnel start --token %s", token)
	p.line("  %s", dimStyle.Render("or: cloudflared tunnel run --token "+token))
	p.blank()

	if copyToken {
		if err = writeClipboard(token); err != nil {
			p.warn("Could not copy to clipboard: " + err.Error())
			return nil
		}
		p.success("Token copied to clipboard.")
	}
	return nil
}
