// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCertificateDERAndPEM(t *testing.T) {
	t.Parallel()

	_, der := generateSelfSignedCert(t, 2048)

	fromDER, err := LoadCertificateDER(der)
	require.NoError(t, err)
	require.Equal(t, der, fromDER.DER())

	fromPEM, err := LoadCertificatePEM(pemEncodeCert(der))
	require.NoError(t, err)
	require.Equal(t, der, fromPEM.DER())
}

func TestLoadCertificatePEMRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := LoadCertificatePEM([]byte("not a pem block"))
	require.Error(t, err)
}

func TestLoadKeyPairPEMRejectsMismatchedKey(t *testing.T) {
	t.Parallel()

	_, der := generateSelfSignedCert(t, 2048)
	otherPriv, _ := generateSelfSignedCert(t, 2048)

	_, _, err := LoadKeyPairPEM(pemEncodeCert(der), pemEncodeKey(otherPriv))
	require.Error(t, err)
}

func TestCreateCertificateFromFile(t *testing.T) {
	t.Parallel()

	_, der := generateSelfSignedCert(t, 2048)

	dir := t.TempDir()
	pemPath := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(pemPath, pemEncodeCert(der), 0o600))

	fromPEM, err := CreateCertificateFromFile(pemPath)
	require.NoError(t, err)
	require.Equal(t, der, fromPEM.DER())

	derPath := filepath.Join(dir, "cert.der")
	require.NoError(t, os.WriteFile(derPath, der, 0o600))

	fromDER, err := CreateCertificateFromFile(derPath)
	require.NoError(t, err)
	require.Equal(t, der, fromDER.DER())
}

func TestCopyCertificateDERRoundTrips(t *testing.T) {
	t.Parallel()

	_, der := generateSelfSignedCert(t, 2048)

	cert, err := LoadCertificateDER(der)
	require.NoError(t, err)

	copied, err := CopyCertificateDER(cert)
	require.NoError(t, err)
	require.Equal(t, der, copied)

	copied[0] ^= 0xFF
	require.Equal(t, der, cert.DER(), "CopyCertificateDER must not alias the certificate's own buffer")
}

func TestCopyCertificateDERRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := CopyCertificateDER(nil)
	require.Error(t, err)
}

func TestCreateAsymmetricKeyFromCertificateBorrowsPublicKeyOnly(t *testing.T) {
	t.Parallel()

	priv, der := generateSelfSignedCert(t, 2048)

	cert, err := LoadCertificateDER(der)
	require.NoError(t, err)

	key, err := CreateAsymmetricKeyFromCertificate(cert)
	require.NoError(t, err)
	require.Equal(t, &priv.PublicKey, key.PublicKey())

	_, isOwner := key.(privateKeyHolder)
	require.False(t, isOwner, "a certificate-borrowed key must never expose a private key")

	sameViaAlias, err := GetCertificatePublicKey(cert)
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), sameViaAlias.PublicKey())
}
