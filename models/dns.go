package models

import "time"

// DNSRecordTypeCNAME is the only record type this tool manages.
const DNSRecordTypeCNAME = "CNAME"

// DNSRecord is a record inside a Cloudflare zone. Records have a lifecycle
// independent of tunnels: the only link between them is the hostname.
type DNSRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Proxied    bool      `json:"proxied"`
	TTL        int       `json:"ttl"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
}
