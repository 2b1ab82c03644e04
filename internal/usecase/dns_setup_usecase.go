package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/idna"

	"github.com/eslsoft/allowdns/internal/entity"
	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// schemePattern removes a URL scheme pasted together with the domain.
var schemePattern = allowlist.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`, false)

// DNSSetupUsecase produces the DNS records a domain owner has to create.
type DNSSetupUsecase interface {
	Build(ctx context.Context, domain string) (*entity.DNSSetup, error)
}

// NewDNSSetupUsecase wires the DNS settings from config.
func NewDNSSetupUsecase(cfg *config.Config) DNSSetupUsecase {
	return &dnsSetupUsecase{cfg: cfg.DNS}
}

type dnsSetupUsecase struct {
	cfg config.DNSConfig
}

func (u *dnsSetupUsecase) Build(ctx context.Context, domain string) (*entity.DNSSetup, error) {
	display, ascii, err := normalizeDomain(domain)
	if err != nil {
		return nil, err
	}

	// UUIDv5 keeps the token stable for a domain across runs.
	token := uuid.NewSHA1(uuid.NameSpaceDNS, []byte(ascii)).String()

	setup := &entity.DNSSetup{
		Domain: ascii,
		Token:  token,
		Records: []entity.DNSRecord{
			{
				Type:  entity.DNSRecordTXT,
				Name:  u.cfg.VerifyLabel + "." + ascii,
				Value: fmt.Sprintf("%s=%s", u.cfg.VerifyPrefix, token),
				TTL:   u.cfg.TTL,
			},
			{
				Type:  entity.DNSRecordCNAME,
				Name:  u.cfg.CNAMELabel + "." + ascii,
				Value: u.cfg.Target,
				TTL:   u.cfg.TTL,
			},
		},
	}
	if display != ascii {
		setup.Display = display
	}
	return setup, nil
}

// normalizeDomain returns the cleaned domain as typed and its ASCII form.
func normalizeDomain(raw string) (string, string, error) {
	cleaned := allowlist.Normalize([]allowlist.Entry{allowlist.String(raw)}, schemePattern)
	if len(cleaned) == 0 {
		return "", "", entity.ErrEmptyDomain
	}
	name := cleaned[0]
	if i := strings.IndexAny(name, "/?#"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return "", "", entity.ErrEmptyDomain
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", "", fmt.Errorf("%w %q: %v", entity.ErrInvalidDomain, raw, err)
	}
	if len(ascii) > maxDomainLength {
		return "", "", fmt.Errorf("%w %q: longer than %d characters", entity.ErrInvalidDomain, raw, maxDomainLength)
	}
	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return "", "", fmt.Errorf("%w %q: needs at least two labels", entity.ErrInvalidDomain, raw)
	}
	for _, label := range labels {
		if label == "" || len(label) > maxLabelLength {
			return "", "", fmt.Errorf("%w %q: bad label %q", entity.ErrInvalidDomain, raw, label)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "", "", fmt.Errorf("%w %q: label %q starts or ends with a hyphen", entity.ErrInvalidDomain, raw, label)
		}
	}
	return name, ascii, nil
}
