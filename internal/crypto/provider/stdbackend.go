// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"io"

	"opcuacrypto/internal/shared/apperr"
)

// StdBackend implements Backend against the standard library's crypto
// packages. The zero value reads entropy from crypto/rand.Reader.
type StdBackend struct {
	// Entropy overrides the randomness source; nil means crypto/rand.Reader.
	Entropy io.Reader
}

func (b StdBackend) entropy() io.Reader {
	if b.Entropy != nil {
		return b.Entropy
	}

	return rand.Reader
}

func (b StdBackend) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, apperr.InvalidParameter("stdbackend: non-positive random length %d", n)
	}

	out := make([]byte, n)
	if _, err := io.ReadFull(b.entropy(), out); err != nil {
		return nil, apperr.NotOK("stdbackend: random read failed: %w", err)
	}

	return out, nil
}

func (b StdBackend) AESCBCEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperr.InvalidParameter("stdbackend: aes key: %w", err)
	}

	if len(plaintext)%aes.BlockSize != 0 {
		return nil, apperr.InvalidParameter("stdbackend: plaintext length %d not a multiple of block size", len(plaintext))
	}

	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)

	return out, nil
}

func (b StdBackend) AESCBCDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperr.InvalidParameter("stdbackend: aes key: %w", err)
	}

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, apperr.InvalidParameter("stdbackend: ciphertext length %d not a multiple of block size", len(ciphertext))
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	return out, nil
}

func (b StdBackend) HMAC(hash crypto.Hash, key, data []byte) ([]byte, error) {
	if !hash.Available() {
		return nil, apperr.InvalidParameter("stdbackend: hash %v unavailable", hash)
	}

	mac := hmac.New(hash.New, key)
	mac.Write(data)

	return mac.Sum(nil), nil
}

func (b StdBackend) Hash(hash crypto.Hash, data []byte) ([]byte, error) {
	if !hash.Available() {
		return nil, apperr.InvalidParameter("stdbackend: hash %v unavailable", hash)
	}

	h := hash.New()
	h.Write(data)

	return h.Sum(nil), nil
}

func (b StdBackend) RSAOAEPEncrypt(pub *rsa.PublicKey, plaintext []byte, hash crypto.Hash) ([]byte, error) {
	out, err := rsa.EncryptOAEP(hash.New(), b.entropy(), pub, plaintext, nil)
	if err != nil {
		return nil, apperr.NotOK("stdbackend: rsa-oaep encrypt: %w", err)
	}

	return out, nil
}

func (b StdBackend) RSAOAEPDecrypt(priv *rsa.PrivateKey, ciphertext []byte, hash crypto.Hash) ([]byte, error) {
	out, err := rsa.DecryptOAEP(hash.New(), b.entropy(), priv, ciphertext, nil)
	if err != nil {
		return nil, apperr.NotOK("stdbackend: rsa-oaep decrypt: %w", err)
	}

	return out, nil
}

func (b StdBackend) RSAPKCS1v15Sign(priv *rsa.PrivateKey, digest []byte, hash crypto.Hash) ([]byte, error) {
	out, err := rsa.SignPKCS1v15(b.entropy(), priv, hash, digest)
	if err != nil {
		return nil, apperr.NotOK("stdbackend: rsa-pkcs1v15 sign: %w", err)
	}

	return out, nil
}

func (b StdBackend) RSAPKCS1v15Verify(pub *rsa.PublicKey, digest, sig []byte, hash crypto.Hash) error {
	if err := rsa.VerifyPKCS1v15(pub, hash, digest, sig); err != nil {
		return apperr.NotOK("stdbackend: rsa-pkcs1v15 verify: %w", err)
	}

	return nil
}
