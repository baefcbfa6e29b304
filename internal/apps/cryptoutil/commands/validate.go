// Copyright (c) 2025 Justin Cranford

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/crypto/keymanager"
	"opcuacrypto/internal/crypto/pki"
	"opcuacrypto/internal/shared/config"
)

// NewValidateCommand builds "cryptoutil validate": checks a certificate
// against the configured trust anchor, minimum validation profile, and any
// configured CRL or OCSP responder.
func NewValidateCommand(v *viper.Viper) *cobra.Command {
	var certPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a certificate against the configured trust anchor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			if cfg.CACertPath == "" {
				return fmt.Errorf("ca-cert-path must be configured")
			}

			caCert, err := keymanager.CreateCertificateFromFile(cfg.CACertPath)
			if err != nil {
				return fmt.Errorf("load ca certificate: %w", err)
			}

			leaf, err := keymanager.CreateCertificateFromFile(certPath)
			if err != nil {
				return fmt.Errorf("load certificate: %w", err)
			}

			p, err := pki.New(caCert.X509())
			if err != nil {
				return err
			}

			if cfg.CRLPath != "" {
				der, err := os.ReadFile(cfg.CRLPath)
				if err != nil {
					return fmt.Errorf("read crl: %w", err)
				}

				crl, err := pki.ParseCRL(der)
				if err != nil {
					return err
				}

				p = p.WithCRL(crl)
			}

			out := cmd.OutOrStdout()

			if cfg.OCSPURL != "" {
				p = p.WithOCSPResponder(cfg.OCSPURL)

				if err := p.ValidateWithOCSP(context.Background(), leaf.X509(), caCert.X509()); err != nil {
					return err
				}

				fmt.Fprintln(out, "valid (chain, crl, ocsp)")

				return nil
			}

			if err := p.Validate(leaf.X509()); err != nil {
				return err
			}

			fmt.Fprintln(out, "valid")

			return nil
		},
	}

	cmd.Flags().StringVar(&certPath, "cert", "", "path to the PEM-encoded certificate to validate")
	_ = cmd.MarkFlagRequired("cert")

	return cmd
}
