// Copyright (c) 2025 Justin Cranford

// Package pki validates a certificate chain against a configured trust
// anchor under a policy-independent minimum profile: SHA-256 or stronger
// signing hash, any public-key algorithm or named curve, RSA keys at least
// 2048 bits.
package pki

import (
	"crypto/rsa"
	"crypto/x509"

	"opcuacrypto/internal/shared/apperr"
)

// minimumProfile is the validation floor every policy enforces, regardless
// of which security policy the caller negotiated.
var minimumProfile = struct {
	minRSABits int
}{
	minRSABits: 2048,
}

// Provider validates certificates against a trust anchor plus an optional
// certificate revocation list. The zero value is not usable; build one
// with New.
type Provider struct {
	roots      *x509.CertPool
	caCert     *x509.Certificate
	crl        *x509.RevocationList
	ocspConfig *ocspConfig
}

// New builds a Provider trusting caCert as the sole root.
func New(caCert *x509.Certificate) (*Provider, error) {
	if caCert == nil {
		return nil, apperr.InvalidParameter("pki: nil CA certificate")
	}

	pool := x509.NewCertPool()
	pool.AddCert(caCert)

	return &Provider{roots: pool, caCert: caCert}, nil
}

// WithCRL attaches a certificate revocation list issued by the trust
// anchor. A certificate whose serial number appears on crl fails
// validation even if its chain is otherwise valid.
func (p *Provider) WithCRL(crl *x509.RevocationList) *Provider {
	p.crl = crl

	return p
}

// Validate checks cert's chain against the trust anchor, the minimum
// validation profile, and any attached CRL. It returns nil on success,
// a wrapped ErrInvalidParameter for a nil certificate, and a wrapped
// ErrNotOK on any validation failure; the specific reason is not further
// classified, matching the baseline behavior of surfacing only pass/fail.
func (p *Provider) Validate(cert *x509.Certificate) error {
	if cert == nil {
		return apperr.InvalidParameter("pki: nil certificate")
	}

	if err := p.checkMinimumProfile(cert); err != nil {
		return err
	}

	opts := x509.VerifyOptions{
		Roots:     p.roots,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	if _, err := cert.Verify(opts); err != nil {
		return apperr.NotOK("pki: chain verification failed: %w", err)
	}

	if p.crl != nil && isRevoked(p.crl, cert) {
		return apperr.NotOK("pki: certificate is revoked")
	}

	return nil
}

func (p *Provider) checkMinimumProfile(cert *x509.Certificate) error {
	switch cert.SignatureAlgorithm {
	case x509.SHA256WithRSA, x509.SHA384WithRSA, x509.SHA512WithRSA,
		x509.ECDSAWithSHA256, x509.ECDSAWithSHA384, x509.ECDSAWithSHA512,
		x509.SHA256WithRSAPSS, x509.SHA384WithRSAPSS, x509.SHA512WithRSAPSS:
		// accepted: SHA-256 or stronger
	default:
		return apperr.NotOK("pki: signature algorithm %v weaker than the minimum profile", cert.SignatureAlgorithm)
	}

	if rsaKey, ok := cert.PublicKey.(*rsa.PublicKey); ok {
		if rsaKey.N.BitLen() < minimumProfile.minRSABits {
			return apperr.NotOK("pki: RSA key size %d bits below minimum %d", rsaKey.N.BitLen(), minimumProfile.minRSABits)
		}
	}

	return nil
}

func isRevoked(crl *x509.RevocationList, cert *x509.Certificate) bool {
	for _, entry := range crl.RevokedCertificateEntries {
		if entry.SerialNumber.Cmp(cert.SerialNumber) == 0 {
			return true
		}
	}

	return false
}

// ParseCRL decodes a DER-encoded certificate revocation list.
func ParseCRL(der []byte) (*x509.RevocationList, error) {
	crl, err := x509.ParseRevocationList(der)
	if err != nil {
		return nil, apperr.InvalidParameter("pki: parse crl: %w", err)
	}

	return crl, nil
}
