// Copyright (c) 2025 Justin Cranford

// Package keymanager loads RSA key pairs and certificates from DER/PEM and
// computes certificate thumbprints, the way a CryptoProvider's KeyManager
// collaborator is expected to.
package keymanager

import (
	"crypto/rsa"

	"opcuacrypto/internal/shared/apperr"
)

// AsymmetricKey wraps an RSA key an operation reads from: either a key the
// manager owns outright (loaded from a standalone PEM/DER buffer or file,
// capable of private-key operations), or a key borrowed from a
// Certificate's public key (capable only of public-key operations — encrypt
// a message to the peer, verify the peer's signature). A borrowed key holds
// no private key and becomes invalid the instant its certificate is
// released; it must never be freed independently of that certificate.
type AsymmetricKey interface {
	// PublicKey returns the underlying RSA public key.
	PublicKey() *rsa.PublicKey
}

// privateKeyHolder is satisfied by AsymmetricKey implementations that also
// carry a private key. OwnedKey satisfies it; BorrowedKey never does.
type privateKeyHolder interface {
	PrivateKey() *rsa.PrivateKey
}

// OwnedKey is an AsymmetricKey the manager allocated and owns exclusively,
// loaded from a standalone PEM/DER buffer or file. Capable of decrypt and
// sign.
type OwnedKey struct {
	priv *rsa.PrivateKey
}

// NewOwnedKey wraps priv as an owned key.
func NewOwnedKey(priv *rsa.PrivateKey) (*OwnedKey, error) {
	if priv == nil {
		return nil, apperr.InvalidParameter("keymanager: nil private key")
	}

	return &OwnedKey{priv: priv}, nil
}

func (k *OwnedKey) PrivateKey() *rsa.PrivateKey { return k.priv }
func (k *OwnedKey) PublicKey() *rsa.PublicKey   { return &k.priv.PublicKey }

// BorrowedKey is an AsymmetricKey that borrows a Certificate's public key.
// Its lifetime is tied to that certificate. Capable of encrypt and verify
// only — it never holds a private key, matching the certificate-borrowed
// creation path.
type BorrowedKey struct {
	cert *Certificate
}

// NewBorrowedKey borrows cert's public key.
func NewBorrowedKey(cert *Certificate) (*BorrowedKey, error) {
	if cert == nil {
		return nil, apperr.InvalidParameter("keymanager: nil certificate")
	}

	if cert.PublicKey() == nil {
		return nil, apperr.NotOK("keymanager: certificate public key is not RSA")
	}

	return &BorrowedKey{cert: cert}, nil
}

func (k *BorrowedKey) PublicKey() *rsa.PublicKey { return k.cert.PublicKey() }
