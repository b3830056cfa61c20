package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
)

func (a *App) confirm(ctx context.Context, title string, defaultYes bool) (bool, error) {
	if !a.interactive {
		return false, errNotInteractive
	}
	return a.prompter.Confirm(ctx, title, defaultYes)
}

func (a *App) input(ctx context.Context, field tui.Field) (string, error) {
	if !a.interactive {
		return "", errNotInteractive
	}
	return a.prompter.Input(ctx, field)
}

func (a *App) choose(ctx context.Context, title string, options []tui.Option) (int, error) {
	if !a.interactive {
		return 0, errNotInteractive
	}
	return a.prompter.Select(ctx, title, options)
}

func validateRequired(msg string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func validateLabel(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("required")
	}
	if !models.ValidLabel(v) {
		return errors.New("lowercase letters, numbers and hyphens only")
	}
	return nil
}

func validatePort(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || !models.ValidPort(n) {
		return errors.New("enter a valid port (1-65535)")
	}
	return nil
}

// pickAccount resolves the account by flag, by being the only one, or by
// asking.
func (a *App) pickAccount(ctx context.Context, disc models.Discovery, id string) (models.Account, error) {
	if id != "" {
		acc, ok := disc.Account(id)
		if !ok {
			return models.Account{}, accountNotFound(id)
		}
		a.printer.info("Account: " + boldStyle.Render(acc.Name))
		return acc, nil
	}

	if len(disc.Accounts) == 1 {
		acc := disc.Accounts[0]
		a.printer.info("Account: " + boldStyle.Render(acc.Name))
		return acc, nil
	}

	options := make([]tui.Option, len(disc.Accounts))
	for i, acc := range disc.Accounts {
		options[i] = tui.Option{Label: acc.Name, Hint: acc.ID}
	}
	idx, err := a.choose(ctx, "Account", options)
	if err != nil {
		return models.Account{}, err
	}
	return disc.Accounts[idx], nil
}

// pickZone resolves the zone by flag, by being the only one, or by asking.
func (a *App) pickZone(ctx context.Context, zones []models.Zone, id string) (models.Zone, error) {
	if id != "" {
		for _, z := range zones {
			if z.ID == id {
				a.printer.info("Domain: " + boldStyle.Render(z.Name))
				return z, nil
			}
		}
		return models.Zone{}, zoneNotFound(id)
	}

	if len(zones) == 1 {
		a.printer.info("Domain: " + boldStyle.Render(zones[0].Name))
		return zones[0], nil
	}

	options := make([]tui.Option, len(zones))
	for i, z := range zones {
		options[i] = tui.Option{Label: z.Name, Hint: z.Status}
	}
	idx, err := a.choose(ctx, "Domain", options)
	if err != nil {
		return models.Zone{}, err
	}
	return zones[idx], nil
}

// askPrefix returns the flag value or asks, suggesting initial.
func (a *App) askPrefix(ctx context.Context, flag, initial string) (string, error) {
	if flag != "" {
		a.printer.info("Prefix: " + boldStyle.Render(flag))
		return flag, nil
	}
	if initial == "" {
		initial = models.DefaultPrefix
	}
	return a.input(ctx, tui.Field{
		Title:       "Subdomain prefix:",
		Placeholder: models.DefaultPrefix,
		Initial:     initial,
		Validate:    validateLabel,
	})
}
