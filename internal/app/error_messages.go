// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing message strings shared by the
// cftunnel commands.
//
// Errors returned by lower layers are printed verbatim; the Msg* constants
// here are the hints printed next to them, so the wording of a given
// situation stays identical across commands.
package app

const (
	// DashboardTokensURL is where API tokens are created.
	DashboardTokensURL = "https://dash.cloudflare.com/profile/api-tokens"

	// CloudflaredDownloadURL documents how to install the connector.
	CloudflaredDownloadURL = "https://developers.cloudflare.com/cloudflare-one/connections/connect-networks/downloads/"

	// MsgRunSetup follows any error caused by a missing config file.
	MsgRunSetup = "Not configured. Run `cftunnel setup` first."

	// MsgConfigInvalid follows an unreadable or inconsistent config file.
	MsgConfigInvalid = "The config file is invalid. Re-run `cftunnel setup` to recreate it."

	// MsgNoDomain is printed when a named tunnel operation runs in quick
	// tunnel mode.
	MsgNoDomain = "No domain configured. Named tunnels need a domain.\n" +
		"  To add a domain:        cftunnel domain\n" +
		"  For a quick public URL: cftunnel start --quick"

	// MsgNoToken lists the ways to provide a connector token.
	MsgNoToken = "No tunnel token found.\n" +
		"  Get a token from your admin, then run: cftunnel start --token <TOKEN>\n" +
		"  Or ask them to run:                    cftunnel token <your-name>"

	// MsgInstallCloudflared follows a failed connector lookup.
	MsgInstallCloudflared = "cloudflared not found. Install it: " + CloudflaredDownloadURL

	// MsgTokenPermissions describes the API token an operator must create.
	MsgTokenPermissions = "You need a Cloudflare API token with:\n" +
		"  Account / Cloudflare Tunnel / Edit\n" +
		"  Zone / DNS / Edit (optional, for custom domains)"

	// MsgTokenSensitive accompanies every printed connector token.
	MsgTokenSensitive = "Token is sensitive. Treat it like a password and do not commit it to git."

	// MsgFreeTier is printed before provisioning.
	MsgFreeTier = "Cloudflare Tunnels are free: no usage charges for tunnels or DNS."

	// MsgCancelled is printed when the operator declines or aborts a prompt.
	MsgCancelled = "Cancelled."

	// MsgNothingToDelete ends a delete that found nothing in scope.
	MsgNothingToDelete = "Nothing to delete."

	// MsgPartialCreate follows a create that failed after the tunnel was
	// registered. The argument is the developer name.
	MsgPartialCreate = "Resources created before the failure were kept. Remove them with: cftunnel delete %s"

	// MsgNotInteractive is returned when a prompt is needed without a terminal.
	MsgNotInteractive = "no terminal available for prompts; pass the value with a flag"

	// MsgQuickModeOnly describes a config without a domain.
	MsgQuickModeOnly = "none (quick tunnel mode only)"

	// MsgNoProcess is printed by stop when nothing is tracked.
	MsgNoProcess = "No running tunnel found (no PID file).\n" +
		"  If cloudflared was started manually, stop it with: pkill cloudflared"
)
