// Copyright (c) 2025 Justin Cranford
//

// Package cryptoutil provides the cryptoutil suite entry point: a cobra
// command tree exposing the crypto core's policy, key-generation,
// thumbprint, derivation, and validation operations from the shell.
package cryptoutil

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opcuacrypto/internal/apps/cryptoutil/commands"
	"opcuacrypto/internal/shared/config"
)

// Suite runs the cryptoutil command line, matching os.Args conventions:
// args[0] is the program name. Returns the process exit code.
func Suite(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdin, stdout, stderr)

	if len(args) > 1 {
		root.SetArgs(args[1:])
	} else {
		root.SetArgs([]string{})
	}

	if err := root.Execute(); err != nil {
		return 1
	}

	return 0
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "cryptoutil",
		Short:         "OPC UA cryptographic service provider core command line tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	config.BindFlags(v, root.PersistentFlags())

	root.AddCommand(
		commands.NewPolicyCommand(v),
		commands.NewKeygenCommand(v),
		commands.NewThumbprintCommand(v),
		commands.NewDeriveCommand(v),
		commands.NewValidateCommand(v),
	)

	return root
}
