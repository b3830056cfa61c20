package models

// Account is a Cloudflare account visible to the API token.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ZoneAccount identifies the account that owns a zone.
type ZoneAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Zone is a domain managed by Cloudflare.
type Zone struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Account ZoneAccount `json:"account"`
}

// TokenVerification is the result of the token verify endpoint.
type TokenVerification struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ZonesForAccount returns the zones owned by accountID, preserving order.
func ZonesForAccount(zones []Zone, accountID string) []Zone {
	out := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if z.Account.ID == accountID {
			out = append(out, z)
		}
	}
	return out
}

// Discovery is what an API token can see.
type Discovery struct {
	Verification TokenVerification
	Accounts     []Account
	Zones        []Zone
	// ZonesErr is set when zones could not be listed; Zones is empty then.
	ZonesErr error
}

// Account returns the account with id.
func (d Discovery) Account(id string) (Account, bool) {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// ZonesFor returns the zones owned by accountID.
func (d Discovery) ZonesFor(accountID string) []Zone {
	return ZonesForAccount(d.Zones, accountID)
}

// Zone returns the zone with id owned by accountID.
func (d Discovery) Zone(accountID, id string) (Zone, bool) {
	for _, z := range d.ZonesFor(accountID) {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}
