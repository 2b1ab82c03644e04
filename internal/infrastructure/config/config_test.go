package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/eslsoft/allowdns/internal/entity"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

func loadFrom(t *testing.T, body string) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "allowdns.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.Set("config", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFrom(t, "")
	if cfg.DNS.Target != "gate.allowdns.dev" || cfg.DNS.TTL != 3600 {
		t.Fatalf("unexpected dns defaults: %+v", cfg.DNS)
	}
	if cfg.DNS.VerifyLabel != "_allowdns" || cfg.DNS.CNAMELabel != "allow" {
		t.Fatalf("unexpected dns labels: %+v", cfg.DNS)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if len(cfg.Allowlist.Entries) != 0 {
		t.Fatalf("expected no entries, got %v", cfg.Allowlist.Entries)
	}
}

func TestLoad_MixedEntries(t *testing.T) {
	cfg := loadFrom(t, `
allowlist:
  entries:
    - user-Alice
    - 42
    - "  "
  strip_prefix: user-
dns:
  ttl: 300
`)
	strip, err := cfg.StripPattern()
	if err != nil {
		t.Fatal(err)
	}
	got := allowlist.NormalizeValues(cfg.Allowlist.Entries, strip)
	if diff := cmp.Diff([]string{"alice", "42"}, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if cfg.DNS.TTL != 300 {
		t.Fatalf("ttl = %d, want 300", cfg.DNS.TTL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ALLOWDNS_DNS_TARGET", "edge.example.net")
	cfg := loadFrom(t, "")
	if cfg.DNS.Target != "edge.example.net" {
		t.Fatalf("target = %q, want env override", cfg.DNS.Target)
	}
}

func TestStripPattern(t *testing.T) {
	cases := []struct {
		name    string
		cfg     AllowlistConfig
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "none", wantNil: true},
		{name: "prefix", cfg: AllowlistConfig{StripPrefix: "user-"}, in: "user-x", want: "x"},
		{name: "pattern wins", cfg: AllowlistConfig{StripPrefix: "user-", StripPattern: "-"}, in: "user-x-y", want: "userx-y"},
		{name: "global pattern", cfg: AllowlistConfig{StripPattern: "-", StripGlobal: true}, in: "user-x-y", want: "userxy"},
		{name: "invalid", cfg: AllowlistConfig{StripPattern: "("}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &Config{Allowlist: c.cfg}
			p, err := cfg.StripPattern()
			if c.wantErr {
				if !errors.Is(err, entity.ErrInvalidPattern) {
					t.Fatalf("expected ErrInvalidPattern, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.wantNil {
				if p != nil {
					t.Fatalf("expected nil pattern, got %s", p)
				}
				return
			}
			if got := p.Strip(c.in); got != c.want {
				t.Fatalf("Strip(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
