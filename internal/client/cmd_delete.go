package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	dnsOnly    bool
	tunnelOnly bool
	force      bool
}

func (f deleteFlags) scope() models.DeleteScope {
	switch {
	case f.dnsOnly:
		return models.DeleteDNSOnly
	case f.tunnelOnly:
		return models.DeleteTunnelOnly
	default:
		return models.DeleteFull
	}
}

func (a *App) newDeleteCommand() *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a developer's tunnel and its DNS record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, args[0], flags)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&flags.dnsOnly, "dns-only", false, "Delete only the DNS record")
	fs.BoolVar(&flags.tunnelOnly, "tunnel-only", false, "Delete only the tunnel and keep the DNS record")
	fs.BoolVarP(&flags.force, "force", "f", false, "Delete without asking for confirmation")
	cmd.MarkFlagsMutuallyExclusive("dns-only", "tunnel-only")

	return cmd
}

func (a *App) runDelete(cmd *cobra.Command, name string, flags deleteFlags) error {
	ctx := cmd.Context()
	svc := a.services.TunnelService
	p := a.printer
	scope := flags.scope()

	p.introDanger("delete")

	plan, err := svc.PlanDelete(a.reporting(ctx), name, scope)
	if err != nil {
		return err
	}

	p.step("Target: " + boldStyle.Render(plan.Hostname))
	p.step("Scope:  " + boldStyle.Render(scope.String()))
	printDeletePlan(p, plan)

	if !plan.Found() {
		p.warn(app.MsgNothingToDelete)
		return errSilent
	}

	if !flags.force {
		ok, err := a.confirm(ctx, deletePrompt(plan), false)
		if err != nil {
			return err
		}
		if !ok {
			return tui.ErrCancelled
		}
	}

	report, err := svc.ExecuteDelete(a.reporting(ctx), plan)
	p.deleteReport(report)

	switch {
	case errors.Is(err, service.ErrNothingToDelete):
		p.warn(app.MsgNothingToDelete)
		return errSilent
	case err != nil:
		return err
	}

	p.success("Done.")
	return nil
}

func printDeletePlan(p *printer, plan models.DeletePlan) {
	if t := plan.Tunnel; t != nil {
		p.info("Found tunnel:")
		p.fields(
			field("Name", t.Name),
			field("ID", dimStyle.Render(t.ID.String())),
			field("Status", colorStatus(t.Status)),
			field("Conns", fmt.Sprint(len(t.Connections))),
		)
	}
	if plan.TunnelErr != nil {
		p.warn("Could not look up tunnel: " + plan.TunnelErr.Error())
	}

	if r := plan.DNS; r != nil {
		p.info("Found DNS record:")
		p.fields(
			field("Name", r.Name),
			field("Target", dimStyle.Render(r.Content)),
			field("ID", dimStyle.Render(r.ID)),
		)
	}
	if plan.DNSErr != nil {
		p.warn("Could not look up DNS record: " + plan.DNSErr.Error())
	}
}

func deletePrompt(plan models.DeletePlan) string {
	switch {
	case plan.Scope == models.DeleteDNSOnly:
		return fmt.Sprintf("Delete DNS record %s?", plan.Hostname)
	case plan.Scope == models.DeleteTunnelOnly:
		return fmt.Sprintf("Delete tunnel %s? DNS record will be kept.", plan.TunnelName)
	case plan.Tunnel != nil && plan.DNS == nil:
		return fmt.Sprintf("Delete tunnel %s?", plan.TunnelName)
	case plan.Tunnel == nil && plan.DNS != nil:
		return fmt.Sprintf("Delete DNS record %s?", plan.Hostname)
	default:
		return fmt.Sprintf("Delete tunnel %s and DNS record %s?", plan.TunnelName, plan.Hostname)
	}
}
