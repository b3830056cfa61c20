package client

import (
	"context"
)

// showTunnels prints the existing tunnels as context for a command. A failure
// is only a warning.
func (a *App) showTunnels(ctx context.Context) {
	summaries, err := a.services.TunnelService.List(a.reporting(ctx), false)
	if err != nil {
		a.printer.warn("Could not fetch tunnels: " + err.Error())
		return
	}
	if len(summaries) == 0 {
		a.printer.info(dimStyle.Render("No existing tunnels."))
		return
	}
	a.printer.tunnels(summaries, false)
}
