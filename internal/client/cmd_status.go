package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show config, local connector and remote tunnels",
		Args:  cobra.NoArgs,
		RunE:  a.runStatus,
	}
}

func (a *App) runStatus(cmd *cobra.Command, _ []string) error {
	p := a.printer
	p.intro("status")

	cfg, err := a.services.SetupService.Current()
	configured := err == nil
	switch {
	case errors.Is(err, store.ErrConfigNotFound):
		p.warn(app.MsgRunSetup)
	case err != nil:
		return err
	default:
		p.info("Config:")
		p.configSummary(cfg, "")
	}

	st := a.services.ConnectorService.Status()
	switch {
	case st.Running:
		p.success(fmt.Sprintf("cloudflared running (PID %s)", boldStyle.Render(fmt.Sprint(st.PID))))
		p.fields(
			field("Logs", dimStyle.Render(st.LogFile)),
			field("Stop", boldStyle.Render("cftunnel stop")),
		)
	case st.Stale:
		p.warn(fmt.Sprintf("Stale PID file (%d), process not running.", st.PID))
	default:
		p.info(dimStyle.Render("No tunnel process running locally."))
	}

	if configured {
		a.showTunnels(cmd.Context())
	}
	return nil
}
