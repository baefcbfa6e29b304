// Copyright (c) 2025 Justin Cranford

package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestPolicyCommandPrintsBasic256Sha256ByDefault(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("policy-uri", "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256")

	cmd := NewPolicyCommand(v)
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Contains(t, out.String(), "policy: Basic256Sha256")
	require.Contains(t, out.String(), "symmetric key bytes: 32")
}

func TestPolicyCommandNoneShortCircuits(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("policy-uri", "http://opcfoundation.org/UA/SecurityPolicy#None")

	cmd := NewPolicyCommand(v)
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Contains(t, out.String(), "primitives: random generation only")
}

func TestPolicyCommandRejectsUnknownURI(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("policy-uri", "http://example.test/not-a-policy")

	cmd := NewPolicyCommand(v)
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.Error(t, cmd.RunE(cmd, nil))
}
