// Copyright (c) 2025 Justin Cranford

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/crypto/provider"
	"opcuacrypto/internal/crypto/secretbuffer"
	"opcuacrypto/internal/shared/config"
)

// NewDeriveCommand builds "cryptoutil derive": derives client/server key
// sets from a hex-encoded nonce pair using the configured policy's P_SHA
// function.
func NewDeriveCommand(v *viper.Viper) *cobra.Command {
	var clientNonceHex string
	var serverNonceHex string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive client/server key sets from a client/server nonce pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			p, err := provider.New(cfg.PolicyURI)
			if err != nil {
				return err
			}

			clientNonce, err := hex.DecodeString(clientNonceHex)
			if err != nil {
				return fmt.Errorf("decode client nonce: %w", err)
			}

			serverNonce, err := hex.DecodeString(serverNonceHex)
			if err != nil {
				return fmt.Errorf("decode server nonce: %w", err)
			}

			client, server, err := p.DeriveKeySets(clientNonce, serverNonce)
			if err != nil {
				return err
			}
			defer client.Close()
			defer server.Close()

			out := cmd.OutOrStdout()

			if err := printKeySet(out, "client", client); err != nil {
				return err
			}

			return printKeySet(out, "server", server)
		},
	}

	cmd.Flags().StringVar(&clientNonceHex, "client-nonce", "", "hex-encoded client nonce")
	cmd.Flags().StringVar(&serverNonceHex, "server-nonce", "", "hex-encoded server nonce")
	_ = cmd.MarkFlagRequired("client-nonce")
	_ = cmd.MarkFlagRequired("server-nonce")

	return cmd
}

func printKeySet(out interface{ Write([]byte) (int, error) }, label string, ks provider.KeySet) error {
	sign, err := ks.SignKey.Expose()
	if err != nil {
		return err
	}
	defer secretbuffer.Unexpose(sign)

	crypt, err := ks.EncryptKey.Expose()
	if err != nil {
		return err
	}
	defer secretbuffer.Unexpose(crypt)

	iv, err := ks.IV.Expose()
	if err != nil {
		return err
	}
	defer secretbuffer.Unexpose(iv)

	fmt.Fprintf(out, "%s sign key: %s\n", label, hex.EncodeToString(sign))
	fmt.Fprintf(out, "%s crypto key: %s\n", label, hex.EncodeToString(crypt))
	fmt.Fprintf(out, "%s iv: %s\n", label, hex.EncodeToString(iv))

	return nil
}
