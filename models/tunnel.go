// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// TunnelStatus is the health reported by Cloudflare for a named tunnel.
type TunnelStatus string

const (
	TunnelHealthy  TunnelStatus = "healthy"
	TunnelDown     TunnelStatus = "down"
	TunnelInactive TunnelStatus = "inactive"
	TunnelDegraded TunnelStatus = "degraded"
)

// CatchAllService is the service of the mandatory last ingress rule.
const CatchAllService = "http_status:404"

// CNAMESuffix is appended to a tunnel ID to build the DNS target that routes
// traffic into the tunnel.
const CNAMESuffix = ".cfargotunnel.com"

// Tunnel is a remotely registered named tunnel. Status and Connections are
// point-in-time observations and are never cached between commands.
type Tunnel struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Status       TunnelStatus       `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	DeletedAt    *time.Time         `json:"deleted_at"`
	Connections  []TunnelConnection `json:"connections"`
	RemoteConfig bool               `json:"remote_config"`
	ConfigSrc    string             `json:"config_src"`
	AccountTag   string             `json:"account_tag"`
	TunType      string             `json:"tun_type"`
}

// CNAMETarget returns the hostname a proxied CNAME record must point at for
// traffic to reach the tunnel.
func (t Tunnel) CNAMETarget() string {
	return t.ID.String() + CNAMESuffix
}

// TunnelConnection describes one active connector session of a tunnel.
type TunnelConnection struct {
	ColoName           string    `json:"colo_name"`
	UUID               string    `json:"uuid"`
	ID                 string    `json:"id"`
	IsPendingReconnect bool      `json:"is_pending_reconnect"`
	OriginIP           string    `json:"origin_ip"`
	OpenedAt           time.Time `json:"opened_at"`
	ClientID           string    `json:"client_id"`
	ClientVersion      string    `json:"client_version"`
}

// IngressRule routes a hostname (or everything, when Hostname is empty) to a
// local service.
type IngressRule struct {
	Hostname string `json:"hostname,omitempty"`
	Service  string `json:"service"`
	Path     string `json:"path,omitempty"`
}

// IsCatchAll reports whether the rule matches every request.
func (r IngressRule) IsCatchAll() bool {
	return r.Hostname == "" && r.Path == ""
}

// IngressConfig is the remotely managed configuration document of a tunnel.
type IngressConfig struct {
	Ingress []IngressRule `json:"ingress"`
}

// TunnelConfiguration is the versioned ingress configuration of a tunnel as
// returned by the configurations endpoint.
type TunnelConfiguration struct {
	TunnelID  string        `json:"tunnel_id"`
	Version   int           `json:"version"`
	Config    IngressConfig `json:"config"`
	Source    string        `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
}

// TunnelSummary pairs a tunnel with its ingress rules for listing.
// Ingress is nil when it was not requested or could not be fetched.
type TunnelSummary struct {
	Tunnel     Tunnel
	Ingress    []IngressRule
	IngressErr error
}

// NewIngress returns routes without any catch-all entries, followed by exactly
// one catch-all rule.
func NewIngress(routes ...IngressRule) []IngressRule {
	rules := make([]IngressRule, 0, len(routes)+1)
	for _, r := range routes {
		if r.IsCatchAll() {
			continue
		}
		rules = append(rules, r)
	}
	return append(rules, IngressRule{Service: CatchAllService})
}
