package client

import (
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/spf13/cobra"
)

func (a *App) newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the background connector",
		Args:  cobra.NoArgs,
		RunE:  a.runStop,
	}
}

func (a *App) runStop(cmd *cobra.Command, _ []string) error {
	p := a.printer

	res, err := a.services.ConnectorService.Stop(cmd.Context())
	if err != nil {
		return err
	}

	switch res.State {
	case process.StopNothing:
		p.warn(app.MsgNoProcess)
		return nil
	case process.StopStale:
		p.info(fmt.Sprintf("Process %d is not running (stale PID file). Cleaned up.", res.PID))
		return nil
	case process.StopForced:
		p.warn(fmt.Sprintf("Process %d didn't stop gracefully and was killed.", res.PID))
	}

	p.success(fmt.Sprintf("cloudflared stopped (PID %d).", res.PID))
	p.info("Logs: " + dimStyle.Render(a.paths.ConnectorLog()))
	return nil
}
