package client

import (
	"github.com/spf13/cobra"
)

type domainFlags struct {
	zoneID string
	prefix string
	clear  bool
	yes    bool
}

func (a *App) newDomainCommand() *cobra.Command {
	var flags domainFlags

	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Show, set or clear the custom domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDomain(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.zoneID, "zone-id", "", "Zone ID of the domain to use")
	fs.StringVar(&flags.prefix, "prefix", "", "Subdomain prefix for tunnel hostnames")
	fs.BoolVar(&flags.clear, "clear", false, "Remove the domain and switch to quick tunnel mode")
	fs.BoolVarP(&flags.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.MarkFlagsMutuallyExclusive("clear", "zone-id")
	cmd.MarkFlagsMutuallyExclusive("clear", "prefix")

	return cmd
}

func (a *App) runDomain(cmd *cobra.Command, flags domainFlags) error {
	ctx := cmd.Context()
	svc := a.services.SetupService
	p := a.printer

	p.intro("domain")

	current, err := svc.Current()
	if err != nil {
		return err
	}

	if current.HasDomain() {
		p.info("Current domain config:")
		p.fields(
			field("Domain", current.Domain),
			field("Prefix", current.Prefix),
			field("Pattern", current.HostnamePattern()),
		)
	} else {
		p.info(dimStyle.Render("No domain configured."))
	}

	if flags.clear {
		if !current.HasDomain() {
			p.warn("No domain to clear.")
			return nil
		}
		if !flags.yes {
			ok, err := a.confirm(ctx, "Remove domain config? Existing tunnels won't be affected.", false)
			if err != nil {
				return err
			}
			if !ok {
				p.info("Keeping current config.")
				return nil
			}
		}
		if _, err = svc.ClearDomain(); err != nil {
			return err
		}
		p.success("Domain removed. Use " + boldStyle.Render("cftunnel start --quick") + " for public URLs.")
		return nil
	}

	_, zones, err := svc.AccountZones(a.reporting(ctx))
	if err != nil {
		return err
	}

	zone, err := a.pickZone(ctx, zones, flags.zoneID)
	if err != nil {
		return err
	}

	prefix, err := a.askPrefix(ctx, flags.prefix, current.Prefix)
	if err != nil {
		return err
	}

	updated, err := svc.SetDomain(zone, prefix)
	if err != nil {
		return err
	}

	p.success("Domain saved:")
	p.fields(
		field("Domain", updated.Domain),
		field("Prefix", updated.Prefix),
		field("Pattern", updated.HostnamePattern()),
	)
	p.step("Run " + boldStyle.Render("cftunnel create <name>") + " to create a tunnel.")
	return nil
}
