// Copyright (c) 2025 Justin Cranford

// Package commands implements the cryptoutil CLI's subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/crypto/provider"
	"opcuacrypto/internal/shared/config"
)

// NewPolicyCommand builds "cryptoutil policy": resolves the configured
// policy URI and prints its length-algebra constants.
func NewPolicyCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the resolved security policy and its parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			p, err := provider.New(cfg.PolicyURI)
			if err != nil {
				return err
			}

			profile := p.Profile()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "policy: %s\n", profile.ID)
			fmt.Fprintf(out, "uri: %s\n", profile.URI)

			if p.Policy().String() == "None" {
				fmt.Fprintln(out, "primitives: random generation only")

				return nil
			}

			keyLen, _ := p.SymmetricKeyLength()
			signKeyLen, _ := p.SymmetricSignKeyLength()
			sigLen, _ := p.SymmetricSignatureLength()
			thumbLen, _ := p.CertificateThumbprintLength()
			sigURI, _ := p.SignatureAlgorithmURI()

			fmt.Fprintf(out, "symmetric key bytes: %d\n", keyLen)
			fmt.Fprintf(out, "symmetric sign key bytes: %d\n", signKeyLen)
			fmt.Fprintf(out, "symmetric signature bytes: %d\n", sigLen)
			fmt.Fprintf(out, "block size bytes: %d\n", p.SymmetricBlockSize())
			fmt.Fprintf(out, "thumbprint bytes: %d\n", thumbLen)
			fmt.Fprintf(out, "signature algorithm: %s\n", sigURI)

			return nil
		},
	}
}
