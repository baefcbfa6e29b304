// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto/rsa"

	"opcuacrypto/internal/shared/apperr"
)

// SymmetricKeyLength returns the policy's AES key length in bytes.
func (p *Provider) SymmetricKeyLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.SymmetricKeyLength, nil
}

// SymmetricSignKeyLength returns the policy's HMAC key length in bytes.
func (p *Provider) SymmetricSignKeyLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.SymmetricSignKeyLength, nil
}

// SymmetricSignatureLength returns the policy's HMAC tag length in bytes.
func (p *Provider) SymmetricSignatureLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.SymmetricSignatureLength, nil
}

// SymmetricBlockSize returns the policy's cipher block size in bytes.
// Unlike the other symmetric lengths, it is defined (16) even under None,
// since framing code needs it to reject misaligned input regardless of
// policy.
func (p *Provider) SymmetricBlockSize() int {
	if p.profile.SymmetricBlockSize == 0 {
		return 16
	}

	return p.profile.SymmetricBlockSize
}

// SecureChannelNonceLength returns the policy's nonce length in bytes,
// equal to the symmetric crypto key length.
func (p *Provider) SecureChannelNonceLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.NonceLength, nil
}

// SymmetricEncryptedLength computes the ciphertext length for a lengthIn
// byte plaintext: ceil(lengthIn/block) * block, with lengthIn == 0 yielding
// 0 regardless of policy.
func (p *Provider) SymmetricEncryptedLength(lengthIn int) (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	if lengthIn < 0 {
		return 0, apperr.InvalidParameter("provider: negative length %d", lengthIn)
	}

	if lengthIn == 0 {
		return 0, nil
	}

	block := p.profile.SymmetricBlockSize
	blocks := (lengthIn + block - 1) / block

	return blocks * block, nil
}

// SymmetricPlainLength is the inverse of SymmetricEncryptedLength: the
// decrypted output is exactly as long as the (already block-aligned)
// ciphertext.
func (p *Provider) SymmetricPlainLength(lengthIn int) (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	if lengthIn < 0 {
		return 0, apperr.InvalidParameter("provider: negative length %d", lengthIn)
	}

	return lengthIn, nil
}

// AsymmetricKeyBitLength returns key's modulus bit length, read directly
// from the key rather than from the policy profile. Valid under every
// resolved policy including None — a key's size is a property of the key,
// not of the negotiated security policy.
func (p *Provider) AsymmetricKeyBitLength(key *rsa.PublicKey) (int, error) {
	if key == nil {
		return 0, apperr.InvalidParameter("provider: nil key")
	}

	return key.N.BitLen(), nil
}

// AsymmetricOAEPHashLength returns the byte length of the policy's OAEP
// hash (always SHA-1, 20 bytes, in both active policies).
func (p *Provider) AsymmetricOAEPHashLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.AsymmetricOAEPHashLength, nil
}

// AsymmetricCipherLength returns the RSA modulus length in bytes for key —
// every RSA-OAEP or PKCS#1 v1.5 output is exactly that long, regardless of
// policy.
func (p *Provider) AsymmetricCipherLength(key *rsa.PublicKey) (int, error) {
	if key == nil {
		return 0, apperr.InvalidParameter("provider: nil key")
	}

	return key.Size(), nil
}

// AsymmetricPlainLength returns the maximum OAEP plaintext length for a
// cipherLength-byte ciphertext: k - 2*hLen - 2 per RFC 8017 §7.1.1, guarded
// against underflow.
func (p *Provider) AsymmetricPlainLength(cipherLength int) (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	hLen := p.profile.AsymmetricOAEPHashLength
	plain := cipherLength - 2*hLen - 2

	if plain < 0 {
		return 0, apperr.NotOK("provider: cipher length %d too small for OAEP hash length %d", cipherLength, hLen)
	}

	return plain, nil
}

// AsymmetricSignatureLength returns the RSA modulus length in bytes: a
// PKCS#1 v1.5 signature is exactly that long. Unlike AsymmetricCipherLength,
// this fails under None — a signature length is meaningless without an
// active signing policy.
func (p *Provider) AsymmetricSignatureLength(key *rsa.PublicKey) (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.AsymmetricCipherLength(key)
}

// CertificateThumbprintLength returns the policy's thumbprint length in
// bytes (always 20, SHA-1, in both active policies).
func (p *Provider) CertificateThumbprintLength() (int, error) {
	if err := p.requireActive(); err != nil {
		return 0, err
	}

	return p.profile.ThumbprintLength, nil
}

// SignatureAlgorithmURI returns the XML-DSig URI naming the policy's
// asymmetric signature algorithm.
func (p *Provider) SignatureAlgorithmURI() (string, error) {
	if err := p.requireActive(); err != nil {
		return "", err
	}

	return p.profile.SignatureAlgorithmURI, nil
}

// DeriveLengths is the aggregate triple (crypto key, sign key, IV length)
// DeriveKeySets needs to size its key sets. It always agrees with the
// three individual length queries.
type DeriveLengths struct {
	CryptoKeyLength int
	SignKeyLength   int
	IVLength        int
}

// DeriveLengths returns the key-set lengths this policy's DeriveKeySets
// will produce.
func (p *Provider) DeriveLengths() (DeriveLengths, error) {
	if err := p.requireActive(); err != nil {
		return DeriveLengths{}, err
	}

	return DeriveLengths{
		CryptoKeyLength: p.profile.SymmetricKeyLength,
		SignKeyLength:   p.profile.SymmetricSignKeyLength,
		IVLength:        p.profile.SymmetricBlockSize,
	}, nil
}
