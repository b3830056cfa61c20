package client

import (
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/spf13/cobra"
)

type setupFlags struct {
	token     string
	accountID string
	zoneID    string
	prefix    string
	yes       bool
}

func (a *App) newSetupCommand() *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up Cloudflare API credentials",
		Long: `Verify an API token, pick the account and optionally a domain, and save
the configuration. Without a domain only quick tunnels are available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSetup(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.token, "token", "", "Cloudflare API token")
	fs.StringVar(&flags.accountID, "account-id", "", "Account ID (skips the account prompt)")
	fs.StringVar(&flags.zoneID, "zone-id", "", "Zone ID of the domain to use")
	fs.StringVar(&flags.prefix, "prefix", "", "Subdomain prefix for tunnel hostnames")
	fs.BoolVarP(&flags.yes, "yes", "y", false, "Overwrite an existing config without asking")

	return cmd
}

func (a *App) runSetup(cmd *cobra.Command, flags setupFlags) error {
	ctx := cmd.Context()
	svc := a.services.SetupService
	p := a.printer

	p.intro("setup")

	if svc.Exists() && !flags.yes {
		if current, err := svc.Current(); err == nil {
			label := current.Domain
			if label == "" {
				label = "no domain"
			}
			overwrite, err := a.confirm(ctx, fmt.Sprintf("Config exists (%s). Overwrite?", label), false)
			if err != nil {
				return err
			}
			if !overwrite {
				p.info("Keeping existing config.")
				return nil
			}
		}
	}

	token := flags.token
	if token == "" {
		p.info(app.MsgTokenPermissions)
		p.info("Create one at " + boldStyle.Render(app.DashboardTokensURL))

		if a.interactive {
			open, err := a.confirm(ctx, "Open the API tokens page in your browser?", true)
			if err != nil {
				return err
			}
			if open {
				if err = openBrowser(app.DashboardTokensURL); err != nil {
					p.warn("Could not open browser: " + err.Error())
				}
			}
		}

		var err error
		token, err = a.input(ctx, tui.Field{
			Title:    "Paste your API token:",
			Secret:   true,
			Validate: validateRequired("token is required"),
		})
		if err != nil {
			return err
		}
	}

	disc, err := svc.Discover(a.reporting(ctx), token)
	if err != nil {
		return err
	}

	account, err := a.pickAccount(ctx, disc, flags.accountID)
	if err != nil {
		return err
	}

	zone, err := a.setupZone(cmd, disc, account, flags.zoneID)
	if err != nil {
		return err
	}

	var prefix string
	if zone != nil {
		if prefix, err = a.askPrefix(ctx, flags.prefix, ""); err != nil {
			return err
		}
	}

	cfg, err := svc.BuildConfig(token, account, zone, prefix)
	if err != nil {
		return err
	}

	p.success("Configuration:")
	p.configSummary(cfg, account.Name)

	if err = svc.Save(cfg); err != nil {
		return err
	}

	if cfg.HasDomain() {
		p.step("Run " + boldStyle.Render("cftunnel create <name>") + " to create a tunnel.")
	} else {
		p.step("Run " + boldStyle.Render("cftunnel start --quick") + " to get a public URL instantly.")
	}
	return nil
}

// setupZone returns the selected zone, or nil for quick tunnel mode.
func (a *App) setupZone(cmd *cobra.Command, disc models.Discovery, account models.Account, zoneID string) (*models.Zone, error) {
	ctx := cmd.Context()
	zones := disc.ZonesFor(account.ID)

	if zoneID != "" {
		zone, ok := disc.Zone(account.ID, zoneID)
		if !ok {
			return nil, zoneNotFound(zoneID)
		}
		a.printer.info("Domain: " + boldStyle.Render(zone.Name))
		return &zone, nil
	}

	if len(zones) == 0 {
		if disc.ZonesErr != nil {
			a.printer.warn("Could not list domains: " + disc.ZonesErr.Error())
		}
		a.printer.hint("No domains found on this account.\n" +
			"You can still create tunnels without DNS using: cftunnel start --quick\n" +
			"To add a domain later, run: cftunnel domain")
		return nil, nil
	}

	useDomain, err := a.confirm(ctx, plural(len(zones), "domain")+" found. Use a custom domain?", true)
	if err != nil {
		return nil, err
	}
	if !useDomain {
		a.printer.hint("No domain selected. Use cftunnel start --quick for random public URLs.")
		return nil, nil
	}

	zone, err := a.pickZone(ctx, zones, "")
	if err != nil {
		return nil, err
	}
	return &zone, nil
}
