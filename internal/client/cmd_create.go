package client

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type createFlags struct {
	port int
	yes  bool
}

func (a *App) newCreateCommand() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"new"},
		Short:   "Create a named tunnel with DNS for a developer",
		Example: "  cftunnel create alice --port 5173",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, args[0], flags)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&flags.port, "port", "p", 0, "Local port to forward to (default from config)")
	fs.BoolVarP(&flags.yes, "yes", "y", false, "Create without asking for confirmation")

	return cmd
}

func (a *App) runCreate(cmd *cobra.Command, name string, flags createFlags) error {
	ctx := cmd.Context()
	svc := a.services.TunnelService
	p := a.printer

	p.intro("create")

	plan, err := svc.Preview(name, flags.port)
	if err != nil {
		return err
	}

	p.hint(app.MsgFreeTier)
	a.showTunnels(ctx)

	if !cmd.Flags().Changed("port") && a.interactive {
		value, err := a.input(ctx, tui.Field{
			Title:       "Local port to forward to:",
			Placeholder: strconv.Itoa(plan.Port),
			Initial:     strconv.Itoa(plan.Port),
			Validate:    validatePort,
		})
		if err != nil {
			return err
		}
		port, _ := strconv.Atoi(value)
		if plan, err = svc.Preview(name, port); err != nil {
			return err
		}
	}

	p.step("Will create:")
	p.fields(
		field("Tunnel", plan.TunnelName),
		field("URL", "https://"+plan.Hostname),
		field("Target", plan.LocalService()),
	)

	if !flags.yes {
		ok, err := a.confirm(ctx, "Proceed?", true)
		if err != nil {
			return err
		}
		if !ok {
			return tui.ErrCancelled
		}
	}

	result, err := svc.Create(a.reporting(ctx), plan.Name, plan.Port)
	if err != nil {
		var stepErr *service.StepError
		if errors.As(err, &stepErr) && result.Tunnel.ID != uuid.Nil {
			p.hint(fmt.Sprintf(app.MsgPartialCreate, plan.Name))
		}
		return err
	}

	printCreated(p, result)
	return nil
}

func printCreated(p *printer, result models.CreateResult) {
	token := dimStyle.Render(models.MaskToken(result.Token)) + " (saved locally)"
	if result.CacheErr != nil {
		p.warn("Could not save token locally: " + result.CacheErr.Error())
		p.warn(app.MsgTokenSensitive)
		token = result.Token + " " + dimStyle.Render("(not saved, copy it now)")
	}

	p.success("Tunnel ready!")
	p.fields(
		field("Name", result.Tunnel.Name),
		field("URL", "https://"+result.Plan.Hostname),
		field("Target", result.Plan.LocalService()),
		field("Token", token),
	)
	p.blank()
	run := "cftunnel start"
	if result.CacheErr != nil {
		run += " --token " + result.Token
	}
	p.step("Run: " + boldStyle.Render(run))
	p.step("Or give the dev: " + boldStyle.Render("cftunnel token "+result.Plan.Name))
}
