// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// certmagic keeps certificates under {certDir}/certificates/{issuer}/{domain}/{domain}.crt
var issuerDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// GetCertificateStatus reads the certificates already on disk for cfg's
// domains. Domains without a certificate yet are left out.
func GetCertificateStatus(cfg *Config) []CertificateStatus {
	var statuses []CertificateStatus
	for _, domain := range cfg.Domains() {
		for _, issuer := range issuerDirs {
			path := filepath.Join(cfg.CertDir, "certificates", issuer, domain, domain+".crt")
			status, err := readCertificate(path, domain)
			if err != nil {
				continue
			}
			statuses = append(statuses, *status)
			break
		}
	}
	return statuses
}

// readCertificate parses the first PEM certificate in path
func readCertificate(path, domain string) (*CertificateStatus, error) {
	certPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block", path)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &CertificateStatus{
		Domain:          domain,
		Issuer:          cert.Issuer.CommonName,
		NotBefore:       cert.NotBefore,
		NotAfter:        cert.NotAfter,
		DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
	}, nil
}
