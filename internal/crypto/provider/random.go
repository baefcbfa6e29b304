// Copyright (c) 2025 Justin Cranford

package provider

import (
	"encoding/binary"

	"opcuacrypto/internal/crypto/secretbuffer"
	"opcuacrypto/internal/shared/apperr"
)

// GenerateRandomBytes returns n cryptographically random bytes. Available
// under every policy including None, since it has no dependency on key
// material or a profile's function table.
func (p *Provider) GenerateRandomBytes(n int) ([]byte, error) {
	return p.backend.RandomBytes(n)
}

// GenerateSecureChannelNonce generates a nonce of the policy's required
// length and wraps it in a SecretBuffer.
func (p *Provider) GenerateSecureChannelNonce() (*secretbuffer.SecretBuffer, error) {
	n, err := p.SecureChannelNonceLength()
	if err != nil {
		return nil, err
	}

	raw, err := p.backend.RandomBytes(n)
	if err != nil {
		return nil, err
	}

	sb, err := secretbuffer.New(raw)
	secretbuffer.Zeroize(raw)

	if err != nil {
		return nil, err
	}

	return sb, nil
}

// GenerateRandomID writes four DRBG bytes as a big-endian uint32.
func (p *Provider) GenerateRandomID() (uint32, error) {
	raw, err := p.backend.RandomBytes(4)
	if err != nil {
		return 0, apperr.NotOK("provider: random id generation failed: %w", err)
	}

	return binary.BigEndian.Uint32(raw), nil
}
