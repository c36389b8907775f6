// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"missing email", Config{Enabled: true, BaseDomain: "paleta.example.org"}, true},
		{"localhost", Config{Enabled: true, Email: "a@b.c", BaseDomain: "localhost"}, true},
		{"ok", Config{Enabled: true, Email: "a@b.c", BaseDomain: "paleta.example.org"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDomainsDeduplicates(t *testing.T) {
	cfg := Config{
		BaseDomain:   "paleta.example.org",
		ExtraDomains: []string{"www.paleta.example.org", "", "paleta.example.org"},
	}
	want := []string{"paleta.example.org", "www.paleta.example.org"}
	if got := cfg.Domains(); !reflect.DeepEqual(got, want) {
		t.Errorf("Domains() = %v, want %v", got, want)
	}
}

func writeTestCert(t *testing.T, path string, notAfter time.Time) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "paleta.example.org"},
		Issuer:       pkix.Name{CommonName: "Test CA"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
}

func TestGetCertificateStatus(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		CertDir:      dir,
		BaseDomain:   "paleta.example.org",
		ExtraDomains: []string{"www.paleta.example.org"},
	}

	// only the staging certificate for the base domain exists
	path := filepath.Join(dir, "certificates", issuerDirs[1], "paleta.example.org", "paleta.example.org.crt")
	writeTestCert(t, path, time.Now().Add(30*24*time.Hour+time.Hour))

	statuses := GetCertificateStatus(cfg)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Domain != "paleta.example.org" {
		t.Errorf("unexpected domain %s", statuses[0].Domain)
	}
	if statuses[0].DaysUntilExpiry != 30 {
		t.Errorf("expected 30 days left, got %d", statuses[0].DaysUntilExpiry)
	}
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := newLogger(debug)
		if err != nil {
			t.Fatalf("newLogger(%v) error: %v", debug, err)
		}
		if got := logger.Core().Enabled(-1); got != debug {
			t.Errorf("newLogger(%v) debug level enabled = %v", debug, got)
		}
	}
}

func TestHTTPChallengeHandlerPassesThrough(t *testing.T) {
	m, err := newManager(&Config{
		Email:      "a@b.c",
		CertDir:    t.TempDir(),
		Staging:    true,
		BaseDomain: "paleta.example.org",
		Enabled:    true,
	})
	if err != nil {
		t.Fatalf("newManager error: %v", err)
	}
	if got := m.Domains(); !reflect.DeepEqual(got, []string{"paleta.example.org"}) {
		t.Errorf("Domains() = %v", got)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	m.HTTPChallengeHandler(next).ServeHTTP(w, httptest.NewRequest("GET", "http://paleta.example.org/?color1=%23FF0000", nil))

	if !called || w.Code != http.StatusTeapot {
		t.Errorf("non-challenge request should reach next handler, got %d", w.Code)
	}
}
