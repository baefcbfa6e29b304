// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto"
	"crypto/rsa"
)

// Backend is the capability contract a CryptoProvider needs from its
// underlying crypto implementation. StdBackend satisfies it against the
// standard library; a test backend can satisfy it against a fake to drive
// deterministic or failure-injecting scenarios.
type Backend interface {
	// RandomBytes fills and returns n cryptographically random bytes.
	RandomBytes(n int) ([]byte, error)

	// AESCBCEncrypt encrypts plaintext (a multiple of the AES block size)
	// under key and iv.
	AESCBCEncrypt(key, iv, plaintext []byte) ([]byte, error)
	// AESCBCDecrypt decrypts ciphertext (a multiple of the AES block size)
	// under key and iv.
	AESCBCDecrypt(key, iv, ciphertext []byte) ([]byte, error)

	// HMAC computes the one-shot HMAC of data under key, using hash as the
	// underlying digest.
	HMAC(hash crypto.Hash, key, data []byte) ([]byte, error)
	// Hash computes the one-shot digest of data under hash.
	Hash(hash crypto.Hash, data []byte) ([]byte, error)

	// RSAOAEPEncrypt encrypts plaintext to pub using OAEP with the given
	// hash as both the OAEP hash and MGF1 hash.
	RSAOAEPEncrypt(pub *rsa.PublicKey, plaintext []byte, hash crypto.Hash) ([]byte, error)
	// RSAOAEPDecrypt decrypts ciphertext with priv using OAEP with hash.
	RSAOAEPDecrypt(priv *rsa.PrivateKey, ciphertext []byte, hash crypto.Hash) ([]byte, error)

	// RSAPKCS1v15Sign signs a pre-computed digest with priv.
	RSAPKCS1v15Sign(priv *rsa.PrivateKey, digest []byte, hash crypto.Hash) ([]byte, error)
	// RSAPKCS1v15Verify verifies sig over a pre-computed digest against pub.
	RSAPKCS1v15Verify(pub *rsa.PublicKey, digest, sig []byte, hash crypto.Hash) error
}
