// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto/rsa"
	"crypto/x509"

	"opcuacrypto/internal/crypto/policy"
	"opcuacrypto/internal/shared/apperr"
)

// AsymmetricEncrypt RSA-OAEP-SHA-1 encrypts plaintext to pub, iterating in
// AsymmetricPlainLength-sized blocks when plaintext exceeds one pass.
func (p *Provider) AsymmetricEncrypt(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	if err := p.requireActive(); err != nil {
		return nil, err
	}

	if pub == nil {
		return nil, apperr.InvalidParameter("provider: nil public key")
	}

	if err := p.checkKeyBitLength(pub.N.BitLen()); err != nil {
		return nil, err
	}

	blockPlain, err := p.AsymmetricPlainLength(pub.Size())
	if err != nil {
		return nil, err
	}

	if blockPlain == 0 {
		return nil, apperr.NotOK("provider: key too small for OAEP under this policy")
	}

	var out []byte

	for offset := 0; offset < len(plaintext); offset += blockPlain {
		end := offset + blockPlain
		if end > len(plaintext) {
			end = len(plaintext)
		}

		block, err := p.backend.RSAOAEPEncrypt(pub, plaintext[offset:end], p.profile.OAEPHash)
		if err != nil {
			return nil, err
		}

		out = append(out, block...)
	}

	return out, nil
}

// AsymmetricDecrypt RSA-OAEP-SHA-1 decrypts ciphertext with priv,
// iterating in modulus-sized blocks.
func (p *Provider) AsymmetricDecrypt(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if err := p.requireActive(); err != nil {
		return nil, err
	}

	if priv == nil {
		return nil, apperr.InvalidParameter("provider: nil private key")
	}

	if err := p.checkKeyBitLength(priv.N.BitLen()); err != nil {
		return nil, err
	}

	blockCipher := priv.Size()
	if blockCipher == 0 || len(ciphertext)%blockCipher != 0 {
		return nil, apperr.InvalidParameter("provider: ciphertext length %d not a multiple of modulus size %d", len(ciphertext), blockCipher)
	}

	var out []byte

	for offset := 0; offset < len(ciphertext); offset += blockCipher {
		block, err := p.backend.RSAOAEPDecrypt(priv, ciphertext[offset:offset+blockCipher], p.profile.OAEPHash)
		if err != nil {
			return nil, err
		}

		out = append(out, block...)
	}

	return out, nil
}

// AsymmetricSign RSA-PKCS#1-v1.5 signs message with priv, hashing message
// with the policy's signing digest first.
func (p *Provider) AsymmetricSign(message []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if err := p.requireActive(); err != nil {
		return nil, err
	}

	if priv == nil {
		return nil, apperr.InvalidParameter("provider: nil private key")
	}

	if err := p.checkKeyBitLength(priv.N.BitLen()); err != nil {
		return nil, err
	}

	digest, err := p.backend.Hash(p.profile.AsymmetricSignHash, message)
	if err != nil {
		return nil, err
	}

	return p.backend.RSAPKCS1v15Sign(priv, digest, p.profile.AsymmetricSignHash)
}

// AsymmetricVerify checks signature over message against pub.
func (p *Provider) AsymmetricVerify(message, signature []byte, pub *rsa.PublicKey) error {
	if err := p.requireActive(); err != nil {
		return err
	}

	if pub == nil {
		return apperr.InvalidParameter("provider: nil public key")
	}

	if err := p.checkKeyBitLength(pub.N.BitLen()); err != nil {
		return err
	}

	digest, err := p.backend.Hash(p.profile.AsymmetricSignHash, message)
	if err != nil {
		return err
	}

	return p.backend.RSAPKCS1v15Verify(pub, digest, signature, p.profile.AsymmetricSignHash)
}

// CertificateSanityCheck confirms cert's public key is RSA, within the
// policy's bit-length window, and signed with a hash the policy accepts.
// It does not inspect key-usage or extended-key-usage extensions.
func (p *Provider) CertificateSanityCheck(cert *x509.Certificate) error {
	if err := p.requireActive(); err != nil {
		return err
	}

	if cert == nil {
		return apperr.InvalidParameter("provider: nil certificate")
	}

	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return apperr.NotOK("provider: certificate public key is not RSA")
	}

	if err := p.checkKeyBitLength(pub.N.BitLen()); err != nil {
		return err
	}

	if !p.acceptsSignatureAlgorithm(cert.SignatureAlgorithm) {
		return apperr.NotOK("provider: certificate signature algorithm %v not accepted under this policy", cert.SignatureAlgorithm)
	}

	return nil
}

// checkKeyBitLength rejects an RSA key whose bit length falls outside the
// policy's [min, max] window.
func (p *Provider) checkKeyBitLength(bits int) error {
	if bits < p.profile.RSAKeyBitsMin || bits > p.profile.RSAKeyBitsMax {
		return apperr.NotOK("provider: key size %d bits outside policy window [%d, %d]", bits, p.profile.RSAKeyBitsMin, p.profile.RSAKeyBitsMax)
	}

	return nil
}

func (p *Provider) acceptsSignatureAlgorithm(alg x509.SignatureAlgorithm) bool {
	switch p.profile.ID {
	case policy.Basic256Sha256:
		return alg == x509.SHA256WithRSA
	case policy.Basic256:
		return alg == x509.SHA1WithRSA || alg == x509.SHA256WithRSA
	default:
		return false
	}
}
