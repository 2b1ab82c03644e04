package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/eslsoft/allowdns/internal/entity"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

// Config holds all configuration for our application
type Config struct {
	Allowlist AllowlistConfig `mapstructure:"allowlist"`
	DNS       DNSConfig       `mapstructure:"dns"`
	Log       LogConfig       `mapstructure:"log"`
}

// AllowlistConfig holds the configured entries and how they are normalized
type AllowlistConfig struct {
	// Entries may mix strings and numbers, so they stay loosely typed until normalized.
	Entries      []any  `mapstructure:"entries"`
	File         string `mapstructure:"file"`
	StripPrefix  string `mapstructure:"strip_prefix"`
	StripPattern string `mapstructure:"strip_pattern"`
	StripGlobal  bool   `mapstructure:"strip_global"`
	Rule         string `mapstructure:"rule"`
}

// DNSConfig holds the values used to render DNS setup instructions
type DNSConfig struct {
	Target       string `mapstructure:"target"`
	TTL          int    `mapstructure:"ttl"`
	VerifyLabel  string `mapstructure:"verify_label"`
	VerifyPrefix string `mapstructure:"verify_prefix"`
	CNAMELabel   string `mapstructure:"cname_label"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("allowdns")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix("allowdns")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Allowlist defaults
	viper.SetDefault("allowlist.entries", []any{})
	viper.SetDefault("allowlist.file", "")
	viper.SetDefault("allowlist.strip_prefix", "")
	viper.SetDefault("allowlist.strip_pattern", "")
	viper.SetDefault("allowlist.strip_global", false)
	viper.SetDefault("allowlist.rule", "")

	// DNS defaults
	viper.SetDefault("dns.target", "gate.allowdns.dev")
	viper.SetDefault("dns.ttl", 3600)
	viper.SetDefault("dns.verify_label", "_allowdns")
	viper.SetDefault("dns.verify_prefix", "allowdns-verification")
	viper.SetDefault("dns.cname_label", "allow")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// StripPattern builds the removal pattern applied to every entry. A regular
// expression takes precedence over a literal prefix; nil means nothing is removed.
func (c *Config) StripPattern() (*allowlist.Pattern, error) {
	switch {
	case c.Allowlist.StripPattern != "":
		p, err := allowlist.Compile(c.Allowlist.StripPattern, c.Allowlist.StripGlobal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidPattern, err)
		}
		return p, nil
	case c.Allowlist.StripPrefix != "":
		return allowlist.Prefix(c.Allowlist.StripPrefix), nil
	default:
		return nil, nil
	}
}
