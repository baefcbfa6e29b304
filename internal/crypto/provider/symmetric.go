// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto/subtle"

	"opcuacrypto/internal/crypto/secretbuffer"
	"opcuacrypto/internal/shared/apperr"
)

// SymmetricEncrypt AES-256-CBC encrypts plaintext under key and iv. len
// (plaintext) must be a multiple of the policy block size.
func (p *Provider) SymmetricEncrypt(plaintext, key, iv []byte) ([]byte, error) {
	if err := p.checkSymmetricInputs(plaintext, key, iv); err != nil {
		return nil, err
	}

	scratch := append([]byte(nil), iv...)
	defer secretbuffer.Zeroize(scratch)

	return p.backend.AESCBCEncrypt(key, scratch, plaintext)
}

// SymmetricDecrypt AES-256-CBC decrypts ciphertext under key and iv. len
// (ciphertext) must be a multiple of the policy block size.
func (p *Provider) SymmetricDecrypt(ciphertext, key, iv []byte) ([]byte, error) {
	if err := p.checkSymmetricInputs(ciphertext, key, iv); err != nil {
		return nil, err
	}

	scratch := append([]byte(nil), iv...)
	defer secretbuffer.Zeroize(scratch)

	return p.backend.AESCBCDecrypt(key, scratch, ciphertext)
}

func (p *Provider) checkSymmetricInputs(data, key, iv []byte) error {
	if err := p.requireActive(); err != nil {
		return err
	}

	if len(key) != p.profile.SymmetricKeyLength {
		return apperr.InvalidParameter("provider: key length %d, want %d", len(key), p.profile.SymmetricKeyLength)
	}

	if len(iv) != p.profile.SymmetricBlockSize {
		return apperr.InvalidParameter("provider: iv length %d, want %d", len(iv), p.profile.SymmetricBlockSize)
	}

	if len(data)%p.profile.SymmetricBlockSize != 0 {
		return apperr.InvalidParameter("provider: data length %d not a multiple of block size %d", len(data), p.profile.SymmetricBlockSize)
	}

	return nil
}

// SymmetricSign computes the policy's HMAC tag over the whole of data
// using signKey.
func (p *Provider) SymmetricSign(data, signKey []byte) ([]byte, error) {
	if err := p.requireActive(); err != nil {
		return nil, err
	}

	if len(signKey) != p.profile.SymmetricSignKeyLength {
		return nil, apperr.InvalidParameter("provider: sign key length %d, want %d", len(signKey), p.profile.SymmetricSignKeyLength)
	}

	return p.backend.HMAC(p.profile.SymmetricSignHash, signKey, data)
}

// SymmetricVerify recomputes the policy's HMAC tag over data and compares
// it against signature in constant time via crypto/subtle, returning
// not-ok on mismatch.
func (p *Provider) SymmetricVerify(data, signature, signKey []byte) error {
	tag, err := p.SymmetricSign(data, signKey)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(signature, tag) != 1 {
		return apperr.NotOK("provider: symmetric signature mismatch")
	}

	return nil
}
