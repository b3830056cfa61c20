package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/spf13/cobra"
)

type startFlags struct {
	token      string
	background bool
	quick      bool
	port       int
}

func (a *App) newStartCommand() *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:     "start",
		Aliases: []string{"run"},
		Short:   "Run the tunnel connector (cloudflared)",
		Long: `Run cloudflared for a named tunnel, or with --quick for an anonymous tunnel
with a random public URL. The token is taken from --token, CFTUNNEL_TOKEN or
the locally cached token, in that order.`,
		Example: "  cftunnel start --token <TOKEN>\n  cftunnel start -d\n  cftunnel start --quick --port 8080",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStart(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.token, "token", "", "Tunnel token")
	fs.BoolVarP(&flags.background, "background", "d", false, "Run detached and record the PID")
	fs.BoolVarP(&flags.quick, "quick", "q", false, "Start a quick tunnel without DNS or token")
	fs.IntVarP(&flags.port, "port", "p", 0, "Local port for --quick (default from config)")
	cmd.MarkFlagsMutuallyExclusive("quick", "token")

	return cmd
}

func (a *App) runStart(cmd *cobra.Command, flags startFlags) error {
	ctx := cmd.Context()
	conn := a.services.ConnectorService
	p := a.printer

	var (
		result models.StartResult
		err    error
	)

	if flags.quick {
		port := flags.port
		if port == 0 {
			port = a.defaultPort()
		}
		p.info(fmt.Sprintf("Starting quick tunnel to %s with %s...", models.LocalServiceURL(port), boldStyle.Render("cloudflared")))
		if !flags.background {
			p.hint("The public URL is printed by cloudflared below.")
		}
		result, err = conn.StartQuick(ctx, port, flags.background)
	} else {
		token, source, rerr := conn.ResolveToken(flags.token)
		if rerr != nil {
			return rerr
		}
		p.info(fmt.Sprintf("Starting tunnel with %s (token from %s)...", boldStyle.Render("cloudflared"), source))
		result, err = conn.StartNamed(ctx, token, flags.background)
	}
	if err != nil {
		return err
	}

	if result.Background {
		p.success(fmt.Sprintf("cloudflared running in background (PID %s)", boldStyle.Render(fmt.Sprint(result.PID))))
		p.fields(
			field("Logs", dimStyle.Render(result.LogFile)),
			field("Stop", boldStyle.Render("cftunnel stop")),
		)
		return nil
	}

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// defaultPort is the configured port, or the built-in default when there is
// no usable config.
func (a *App) defaultPort() int {
	cfg, err := a.services.SetupService.Current()
	if err != nil {
		if !errors.Is(err, store.ErrConfigNotFound) {
			a.printer.warn("Ignoring config: " + err.Error())
		}
		return models.DefaultPort
	}
	if cfg.DefaultPort == 0 {
		return models.DefaultPort
	}
	return cfg.DefaultPort
}
