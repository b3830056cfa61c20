package process

import (
	"strings"

	"github.com/MKhiriev/cftunnel/models"
)

// TokenEnv is read by cloudflared as the value of --token. Passing the token
// this way keeps it out of the process argument list.
const TokenEnv = "TUNNEL_TOKEN"

// Command is a connector invocation.
type Command struct {
	Path string
	Args []string
	// Env is appended to the parent environment.
	Env []string
	// Description is a secret-free rendering for logs and headers.
	Description string
}

func (c Command) String() string {
	if c.Description != "" {
		return c.Description
	}
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// NamedTunnelCommand runs a remotely managed tunnel authenticated by token.
func NamedTunnelCommand(binary, token string) Command {
	return Command{
		Path:        binary,
		Args:        []string{"tunnel", "run"},
		Env:         []string{TokenEnv + "=" + token},
		Description: "cloudflared tunnel run (named tunnel)",
	}
}

// QuickTunnelCommand runs an anonymous tunnel to the local port. The public
// hostname is assigned by Cloudflare and printed by cloudflared.
func QuickTunnelCommand(binary string, port int) Command {
	origin := models.LocalServiceURL(port)
	return Command{
		Path:        binary,
		Args:        []string{"tunnel", "--url", origin},
		Description: "cloudflared tunnel --url " + origin + " (quick tunnel)",
	}
}
