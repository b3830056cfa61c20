package models

// DeleteScope selects which remote resources a delete touches.
type DeleteScope int

const (
	// DeleteFull removes both the tunnel and its DNS record.
	DeleteFull DeleteScope = iota
	// DeleteDNSOnly removes the DNS record and keeps the tunnel.
	DeleteDNSOnly
	// DeleteTunnelOnly removes the tunnel and keeps the DNS record.
	DeleteTunnelOnly
)

// IncludesTunnel reports whether the tunnel is in scope.
func (s DeleteScope) IncludesTunnel() bool {
	return s != DeleteDNSOnly
}

// IncludesDNS reports whether the DNS record is in scope.
func (s DeleteScope) IncludesDNS() bool {
	return s != DeleteTunnelOnly
}

func (s DeleteScope) String() string {
	switch s {
	case DeleteDNSOnly:
		return "DNS record only"
	case DeleteTunnelOnly:
		return "tunnel only (keeping DNS)"
	default:
		return "tunnel + DNS record"
	}
}

// ResourceKind names a remote resource in delete reports.
type ResourceKind string

const (
	ResourceTunnel ResourceKind = "tunnel"
	ResourceDNS    ResourceKind = "DNS"
)

// OutcomeStatus is the per-resource result of a delete.
type OutcomeStatus string

const (
	OutcomeDeleted  OutcomeStatus = "deleted"
	OutcomeFailed   OutcomeStatus = "FAILED"
	OutcomeNotFound OutcomeStatus = "not found"
	// OutcomeSkipped marks a resource outside the delete scope.
	OutcomeSkipped OutcomeStatus = "skipped"
)

// ResourceOutcome reports what happened to one resource during a delete.
// Partial success is a normal outcome: each resource carries its own status.
type ResourceOutcome struct {
	Resource ResourceKind
	Name     string
	ID       string
	Status   OutcomeStatus
	Err      error
	Warnings []string
}

// DeleteReport aggregates the outcomes of a scoped delete.
type DeleteReport struct {
	TunnelName string
	Hostname   string
	Scope      DeleteScope
	Outcomes   []ResourceOutcome
}

// Failed reports whether any resource ended in OutcomeFailed.
func (r DeleteReport) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed {
			return true
		}
	}
	return false
}

// NothingFound reports whether every in-scope resource was absent.
func (r DeleteReport) NothingFound() bool {
	for _, o := range r.Outcomes {
		if o.Status != OutcomeNotFound && o.Status != OutcomeSkipped {
			return false
		}
	}
	return true
}

// DeletePlan is the result of the lookup phase of a delete. Resources are
// nil when absent or out of scope; a lookup error is kept per resource.
type DeletePlan struct {
	Config     AppConfig
	Scope      DeleteScope
	TunnelName string
	Hostname   string

	Tunnel    *Tunnel
	TunnelErr error
	DNS       *DNSRecord
	DNSErr    error
}

// Found reports whether anything in scope exists or failed to be looked up.
func (p DeletePlan) Found() bool {
	return p.Tunnel != nil || p.DNS != nil || p.TunnelErr != nil || p.DNSErr != nil
}
