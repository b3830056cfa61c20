package models

// CreatePlan is what a create will provision, computed before any remote call.
type CreatePlan struct {
	Name       string
	TunnelName string
	Hostname   string
	Port       int
}

// LocalService returns the origin URL for the ingress rule.
func (p CreatePlan) LocalService() string {
	return LocalServiceURL(p.Port)
}

// CreateResult is a fully provisioned named tunnel.
//
// CacheErr is set when the token could not be stored locally; the token is
// still valid and returned to the operator.
type CreateResult struct {
	Plan     CreatePlan
	Tunnel   Tunnel
	DNS      DNSRecord
	Token    string
	CacheErr error
}

// MaskToken shortens a token for display, keeping its head and tail.
func MaskToken(token string) string {
	if len(token) <= 12 {
		return "****"
	}
	return token[:8] + "..." + token[len(token)-4:]
}
