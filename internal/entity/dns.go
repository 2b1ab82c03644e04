package entity

import "strconv"

// DNSRecordType enumerates the record types the setup instructions use.
type DNSRecordType string

const (
	DNSRecordTXT   DNSRecordType = "TXT"
	DNSRecordCNAME DNSRecordType = "CNAME"
)

// DNSRecord is a single record the user has to create at their DNS provider.
type DNSRecord struct {
	Type  DNSRecordType `json:"type" yaml:"type"`
	Name  string        `json:"name" yaml:"name"`
	Value string        `json:"value" yaml:"value"`
	TTL   int           `json:"ttl" yaml:"ttl"`
}

// Row returns the record as table cells.
func (r DNSRecord) Row() []string {
	return []string{string(r.Type), r.Name, r.Value, strconv.Itoa(r.TTL)}
}

// DNSSetup aggregates the instructions for one domain.
type DNSSetup struct {
	// Domain is the ASCII (punycode) form used in record names.
	Domain string `json:"domain" yaml:"domain"`

	// Display is the form the user typed, lowercased, when it differs from Domain.
	Display string      `json:"display,omitempty" yaml:"display,omitempty"`
	Token   string      `json:"token" yaml:"token"`
	Records []DNSRecord `json:"records" yaml:"records"`
}
