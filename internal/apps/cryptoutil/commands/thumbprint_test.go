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

	"opcuacrypto/internal/crypto/keymanager"
)

func TestThumbprintCommandPrintsHexSHA1(t *testing.T) {
	t.Parallel()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "thumbprint-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))

	cert, err := keymanager.LoadCertificateDER(der)
	require.NoError(t, err)
	want, err := keymanager.ThumbprintHex(cert)
	require.NoError(t, err)

	cmd := NewThumbprintCommand(viper.New())
	require.NoError(t, cmd.Flags().Set("cert", certPath))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Equal(t, want+"\n", out.String())
}

func TestThumbprintCommandRejectsMissingFile(t *testing.T) {
	t.Parallel()

	cmd := NewThumbprintCommand(viper.New())
	require.NoError(t, cmd.Flags().Set("cert", "/nonexistent/cert.pem"))

	require.Error(t, cmd.RunE(cmd, nil))
}
