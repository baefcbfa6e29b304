// Copyright (c) 2025 Justin Cranford

package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/crypto/keymanager"
)

// NewKeygenCommand builds "cryptoutil keygen": generates a self-signed RSA
// key pair of --bits size (default 2048), for local testing of the
// derivation and validation commands. The configured policy is not
// consulted.
func NewKeygenCommand(v *viper.Viper) *cobra.Command {
	var bits int
	var commonName string
	var outCert string
	var outKey string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a self-signed RSA key pair and certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := rsa.GenerateKey(rand.Reader, bits)
			if err != nil {
				return err
			}

			template := &x509.Certificate{
				SerialNumber:       big.NewInt(time.Now().UnixNano()),
				Subject:            pkix.Name{CommonName: commonName},
				NotBefore:          time.Now().Add(-time.Hour),
				NotAfter:           time.Now().AddDate(1, 0, 0),
				SignatureAlgorithm: x509.SHA256WithRSA,
				KeyUsage:           x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
			}

			der, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
			if err != nil {
				return err
			}

			if err := writePEMFile(outCert, "CERTIFICATE", der); err != nil {
				return err
			}

			owned, err := keymanager.NewOwnedKey(priv)
			if err != nil {
				return err
			}

			need, _ := keymanager.WriteKeyToDER(owned, nil)
			keyDER := make([]byte, need)

			n, err := keymanager.WriteKeyToDER(owned, keyDER)
			if err != nil {
				return err
			}

			if err := writePEMFile(outKey, "RSA PRIVATE KEY", keyDER[:n]); err != nil {
				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA key size in bits")
	cmd.Flags().StringVar(&commonName, "common-name", "cryptoutil-test", "certificate subject common name")
	cmd.Flags().StringVar(&outCert, "out-cert", "cert.pem", "output path for the certificate")
	cmd.Flags().StringVar(&outKey, "out-key", "key.pem", "output path for the private key")

	return cmd
}

func writePEMFile(path, blockType string, der []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: blockType, Bytes: der})
}
