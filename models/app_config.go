// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "regexp"

const (
	// DefaultPort is the local port tunnels forward to when none is given.
	DefaultPort = 3000
	// DefaultPrefix is the suggested subdomain prefix during setup.
	DefaultPrefix = "local-dev"
)

var labelPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidLabel reports whether s may be used as a prefix or tunnel name, i.e.
// it consists of lowercase letters, digits and hyphens only.
func ValidLabel(s string) bool {
	return labelPattern.MatchString(s)
}

// ValidPort reports whether port is a usable TCP port number.
func ValidPort(port int) bool {
	return port >= 1 && port <= 65535
}

// AppConfig is the operator configuration persisted by `cftunnel setup`.
//
// ZoneID, Domain and Prefix are either all set (named tunnels with DNS) or
// all empty (quick tunnel mode only). The store rejects any other mix.
type AppConfig struct {
	APIToken    string `json:"apiToken"`
	AccountID   string `json:"accountId"`
	ZoneID      string `json:"zoneId,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	DefaultPort int    `json:"defaultPort"`
}

// HasDomain reports whether the domain-bearing workflows can run.
func (c AppConfig) HasDomain() bool {
	return c.ZoneID != "" && c.Domain != "" && c.Prefix != ""
}

// ClearDomain returns a copy of c in quick tunnel mode.
func (c AppConfig) ClearDomain() AppConfig {
	c.ZoneID, c.Domain, c.Prefix = "", "", ""
	return c
}

// TunnelName returns the remote tunnel name for a developer name.
func (c AppConfig) TunnelName(name string) string {
	return c.Prefix + "-" + name
}

// Hostname returns the public hostname for a developer name.
func (c AppConfig) Hostname(name string) string {
	return c.TunnelName(name) + "." + c.Domain
}

// HostnamePattern renders the naming scheme for display, e.g.
// "team-<name>.example.com".
func (c AppConfig) HostnamePattern() string {
	return c.Prefix + "-<name>." + c.Domain
}
