// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"opcuacrypto/internal/shared/apperr"
)

// Certificate wraps a parsed X.509 certificate plus its raw DER encoding.
// A Certificate never owns a private key — the node's own private key is
// loaded and held separately as an OwnedKey; only the certificate's public
// key is ever borrowed from it (see BorrowedKey).
type Certificate struct {
	cert *x509.Certificate
	der  []byte
}

// LoadCertificateDER parses a DER-encoded certificate with no paired
// private key.
func LoadCertificateDER(der []byte) (*Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, apperr.InvalidParameter("keymanager: parse certificate: %w", err)
	}

	return &Certificate{cert: cert, der: der}, nil
}

// LoadCertificatePEM decodes a single PEM-encoded CERTIFICATE block.
func LoadCertificatePEM(pemBytes []byte) (*Certificate, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, apperr.InvalidParameter("keymanager: no CERTIFICATE block found")
	}

	return LoadCertificateDER(block.Bytes)
}

// CreateCertificateFromFile loads a DER or PEM-encoded certificate from
// path, owning the parsed result the same way LoadCertificateDER/PEM do
// for an in-memory buffer.
func CreateCertificateFromFile(path string) (*Certificate, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NotOK("keymanager: read certificate file: %w", err)
	}

	if block, _ := pem.Decode(buf); block != nil {
		return LoadCertificatePEM(buf)
	}

	return LoadCertificateDER(buf)
}

// CopyCertificateDER returns a fresh copy of cert's DER encoding, distinct
// from the aliasing view DER returns — round-tripping a DER buffer through
// LoadCertificateDER and CopyCertificateDER reproduces it byte for byte.
func CopyCertificateDER(cert *Certificate) ([]byte, error) {
	if cert == nil {
		return nil, apperr.InvalidParameter("keymanager: nil certificate")
	}

	return append([]byte(nil), cert.der...), nil
}

// GetCertificatePublicKey returns an AsymmetricKey borrowing cert's public
// key, for encrypting to or verifying the peer identified by cert. Same
// operation as CreateAsymmetricKeyFromCertificate.
func GetCertificatePublicKey(cert *Certificate) (AsymmetricKey, error) {
	return NewBorrowedKey(cert)
}

// CreateAsymmetricKeyFromCertificate returns an AsymmetricKey borrowing
// cert's public key. Same operation as GetCertificatePublicKey.
func CreateAsymmetricKeyFromCertificate(cert *Certificate) (AsymmetricKey, error) {
	return NewBorrowedKey(cert)
}

// X509 returns the parsed certificate.
func (c *Certificate) X509() *x509.Certificate { return c.cert }

// DER returns the certificate's raw encoding, the form
// ComputeCertificateThumbprint hashes.
func (c *Certificate) DER() []byte { return c.der }

// PublicKey returns the certificate's RSA public key, or nil if it is not
// an RSA certificate.
func (c *Certificate) PublicKey() *rsa.PublicKey {
	pub, _ := c.cert.PublicKey.(*rsa.PublicKey)

	return pub
}
