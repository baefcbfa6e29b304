// Copyright (c) 2025 Justin Cranford

package commands

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func writeTestCert(t *testing.T, dir, name string, tmpl *x509.Certificate, parent *x509.Certificate, pub any, signer *rsa.PrivateKey) string {
	t.Helper()

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, pub, signer)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))

	return path
}

func TestValidateCommandAcceptsLeafSignedByCA(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	caPriv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caPriv.PublicKey, caPriv)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	caPath := filepath.Join(dir, "ca.pem")
	require.NoError(t, os.WriteFile(caPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER}), 0o600))

	leafPriv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	leafTemplate := &x509.Certificate{
		SerialNumber:       big.NewInt(2),
		Subject:            pkix.Name{CommonName: "test-leaf"},
		NotBefore:          time.Now().Add(-time.Hour),
		NotAfter:           time.Now().Add(time.Hour),
		SignatureAlgorithm: x509.SHA256WithRSA,
	}
	leafPath := writeTestCert(t, dir, "leaf.pem", leafTemplate, caCert, &leafPriv.PublicKey, caPriv)

	v := viper.New()
	v.Set("policy-uri", "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256")
	v.Set("ca-cert-path", caPath)

	cmd := NewValidateCommand(v)
	require.NoError(t, cmd.Flags().Set("cert", leafPath))

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Contains(t, out.String(), "valid")
}

func TestValidateCommandRequiresCACertPath(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("policy-uri", "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256")

	cmd := NewValidateCommand(v)
	require.NoError(t, cmd.Flags().Set("cert", "doesnotmatter.pem"))

	require.Error(t, cmd.RunE(cmd, nil))
}
