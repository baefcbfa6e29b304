// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"github.com/lestrrat-go/jwx/v3/jwk"

	"opcuacrypto/internal/shared/apperr"
)

// PublicKeyJWK exports the certificate's RSA public key as a JWK, for
// diagnostics and interop with JOSE-based tooling operating alongside the
// secure channel. It is not consulted anywhere in the secure-channel
// cryptographic path.
func (c *Certificate) PublicKeyJWK() (jwk.Key, error) {
	pub := c.PublicKey()
	if pub == nil {
		return nil, apperr.NotOK("keymanager: certificate public key is not RSA")
	}

	key, err := jwk.Import(pub)
	if err != nil {
		return nil, apperr.NotOK("keymanager: jwk import: %w", err)
	}

	return key, nil
}
