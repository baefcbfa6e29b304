// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"opcuacrypto/internal/shared/apperr"
)

// LoadPrivateKeyPEM decodes a single PEM-encoded PKCS#1 or PKCS#8 RSA
// private key.
func LoadPrivateKeyPEM(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, apperr.InvalidParameter("keymanager: no PEM block found")
	}

	return parsePrivateKeyDER(block.Bytes)
}

func parsePrivateKeyDER(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, apperr.InvalidParameter("keymanager: parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, apperr.InvalidParameter("keymanager: pkcs8 key is not RSA")
	}

	return rsaKey, nil
}

// CreateAsymmetricKeyFromBuffer parses an RSA private key from a PEM or raw
// DER buffer and returns it as an owned key, capable of decrypt and sign.
func CreateAsymmetricKeyFromBuffer(buf []byte) (*OwnedKey, error) {
	if block, _ := pem.Decode(buf); block != nil {
		priv, err := parsePrivateKeyDER(block.Bytes)
		if err != nil {
			return nil, err
		}

		return NewOwnedKey(priv)
	}

	priv, err := parsePrivateKeyDER(buf)
	if err != nil {
		return nil, err
	}

	return NewOwnedKey(priv)
}

// CreateAsymmetricKeyFromFile loads an RSA private key from path, optionally
// decrypting a password-protected PEM key. password may be nil for an
// unencrypted key. declaredLen is the caller-declared length of password
// (as in a C string's strlen, not counting the terminator) and must match a
// NUL terminator actually present at that offset, mirroring the
// null-termination check the reference key manager performs before ever
// touching the PEM decryption routine: a mismatch is rejected up front
// rather than silently truncated.
func CreateAsymmetricKeyFromFile(path string, password []byte, declaredLen int) (*OwnedKey, error) {
	if password == nil {
		if declaredLen != 0 {
			return nil, apperr.InvalidParameter("keymanager: nil password with non-zero length")
		}
	} else {
		if declaredLen >= len(password) || password[declaredLen] != 0 {
			return nil, apperr.InvalidParameter("keymanager: password not NUL-terminated at declared length")
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NotOK("keymanager: read private key file: %w", err)
	}

	block, _ := pem.Decode(buf)
	if block == nil {
		if password != nil {
			return nil, apperr.InvalidParameter("keymanager: password supplied for non-PEM key")
		}

		priv, err := parsePrivateKeyDER(buf)
		if err != nil {
			return nil, err
		}

		return NewOwnedKey(priv)
	}

	der := block.Bytes

	//nolint:staticcheck // no ecosystem replacement for legacy password-encrypted PEM private keys
	if x509.IsEncryptedPEMBlock(block) {
		if password == nil {
			return nil, apperr.InvalidParameter("keymanager: key is password-protected, no password supplied")
		}

		//nolint:staticcheck // paired with IsEncryptedPEMBlock above
		decrypted, err := x509.DecryptPEMBlock(block, password[:declaredLen])
		if err != nil {
			return nil, apperr.InvalidParameter("keymanager: decrypt private key: %w", err)
		}

		der = decrypted
	}

	priv, err := parsePrivateKeyDER(der)
	if err != nil {
		return nil, err
	}

	return NewOwnedKey(priv)
}

// WriteKeyToDER marshals key's private key as PKCS#1 DER into dest, returning
// the number of bytes written. key must hold a private key (an OwnedKey);
// borrowed keys have none and are rejected. If dest is too small, the
// required length is returned alongside the error so the caller can retry
// with a properly sized buffer.
func WriteKeyToDER(key AsymmetricKey, dest []byte) (int, error) {
	holder, ok := key.(privateKeyHolder)
	if !ok {
		return 0, apperr.InvalidParameter("keymanager: key holds no private key")
	}

	der := x509.MarshalPKCS1PrivateKey(holder.PrivateKey())
	if len(dest) < len(der) {
		return len(der), apperr.NotOK("keymanager: dest too small, need %d bytes", len(der))
	}

	return copy(dest, der), nil
}

// LoadKeyPairPEM loads a certificate and its paired private key from PEM
// bytes, returning the Certificate and an OwnedKey over the private key.
// The private key must match the certificate's public key.
func LoadKeyPairPEM(certPEM, keyPEM []byte) (*Certificate, *OwnedKey, error) {
	cert, err := LoadCertificatePEM(certPEM)
	if err != nil {
		return nil, nil, err
	}

	priv, err := LoadPrivateKeyPEM(keyPEM)
	if err != nil {
		return nil, nil, err
	}

	certPub := cert.PublicKey()
	if certPub == nil || certPub.N.Cmp(priv.N) != 0 || certPub.E != priv.E {
		return nil, nil, apperr.InvalidParameter("keymanager: private key does not match certificate public key")
	}

	key, err := NewOwnedKey(priv)
	if err != nil {
		return nil, nil, err
	}

	return cert, key, nil
}
