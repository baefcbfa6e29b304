// Copyright (c) 2025 Justin Cranford

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/crypto/keymanager"
)

// NewThumbprintCommand builds "cryptoutil thumbprint": prints the SHA-1
// thumbprint of a PEM-encoded certificate.
func NewThumbprintCommand(v *viper.Viper) *cobra.Command {
	var certPath string

	cmd := &cobra.Command{
		Use:   "thumbprint",
		Short: "Compute a certificate's SHA-1 thumbprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			pemBytes, err := os.ReadFile(certPath)
			if err != nil {
				return err
			}

			cert, err := keymanager.LoadCertificatePEM(pemBytes)
			if err != nil {
				return err
			}

			thumb, err := keymanager.ThumbprintHex(cert)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), thumb)

			return nil
		},
	}

	cmd.Flags().StringVar(&certPath, "cert", "", "path to a PEM-encoded certificate")
	_ = cmd.MarkFlagRequired("cert")

	return cmd
}
