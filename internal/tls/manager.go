// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"

	"github.com/caddyserver/certmagic"
	"go.uber.org/zap"
)

// Manager handles certificate provisioning for the palette site
type Manager struct {
	cfg       *Config
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer
}

// NewManager creates a new TLS manager and starts managing the configured
// domains in the background
func NewManager(ctx context.Context, cfg *Config) (*Manager, error) {
	m, err := newManager(cfg)
	if err != nil {
		return nil, err
	}

	domains := m.Domains()
	log.Printf("TLS: Managing certificates for %d domains", len(domains))
	for _, domain := range domains {
		log.Printf("TLS: - %s", domain)
	}

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return nil, fmt.Errorf("failed to manage domains: %w", err)
	}

	return m, nil
}

// newManager sets up certmagic and the ACME issuer without contacting the CA
func newManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Cached certificates are renewed with the config that issued them
	var magicCfg *certmagic.Config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return magicCfg, nil
		},
	})

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate logger: %w", err)
	}

	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
		Logger:  logger,
	})

	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
		Logger: logger.Named("acme"),
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{
		cfg:       cfg,
		certmagic: magicCfg,
		issuer:    issuer,
	}, nil
}

// Domains returns the names this manager provisions certificates for
func (m *Manager) Domains() []string {
	return m.cfg.Domains()
}

// HTTPChallengeHandler answers ACME HTTP-01 challenges and passes every
// other request to next
func (m *Manager) HTTPChallengeHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}

// newLogger builds the zap logger certmagic reports issuance through
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
