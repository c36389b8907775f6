// SPDX-License-Identifier: MIT
package tls

import (
	"fmt"
	"os"

	"github.com/thatcatcamp/paleta/internal/config"
)

// Config holds TLS configuration
type Config struct {
	Email        string
	CertDir      string
	Staging      bool
	BaseDomain   string
	ExtraDomains []string
	Enabled      bool
	// Debug switches certmagic's logs to the development encoder
	Debug bool
}

// LoadConfig loads TLS configuration from config system
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Email:        config.GetString("tls.email"),
		CertDir:      config.GetString("tls.cert_dir"),
		Staging:      config.GetBool("tls.staging"),
		BaseDomain:   config.GetString("server.base_domain"),
		ExtraDomains: config.GetStringSlice("tls.extra_domains"),
		Enabled:      config.GetBool("server.tls_enabled"),
		Debug:        config.GetBool("log.debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create cert directory if it doesn't exist
	if cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks the fields TLS cannot start without
func (cfg *Config) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Email == "" {
		return fmt.Errorf("tls.email is required when TLS is enabled")
	}
	if cfg.BaseDomain == "" || cfg.BaseDomain == "localhost" {
		return fmt.Errorf("server.base_domain must be a public domain when TLS is enabled")
	}
	return nil
}

// Domains lists every name a certificate is managed for
func (cfg *Config) Domains() []string {
	domains := []string{cfg.BaseDomain}
	seen := map[string]bool{cfg.BaseDomain: true}
	for _, d := range cfg.ExtraDomains {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		domains = append(domains, d)
	}
	return domains
}
