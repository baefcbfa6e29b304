// Copyright (c) 2025 Justin Cranford

package provider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"opcuacrypto/internal/crypto/policy"
)

func TestGenerateRandomBytesLength(t *testing.T) {
	t.Parallel()

	p, err := New(policy.URINone)
	require.NoError(t, err)

	b, err := p.GenerateRandomBytes(16)
	require.NoError(t, err)
	require.Len(t, b, 16)
}

func TestGenerateRandomBytesAvailableUnderNone(t *testing.T) {
	t.Parallel()

	p, err := New(policy.URINone)
	require.NoError(t, err)

	_, err = p.GenerateRandomBytes(32)
	require.NoError(t, err)
}

func TestGenerateSecureChannelNonceMatchesPolicyLength(t *testing.T) {
	t.Parallel()

	p, err := New(policy.URIBasic256Sha256)
	require.NoError(t, err)

	nonce, err := p.GenerateSecureChannelNonce()
	require.NoError(t, err)
	t.Cleanup(func() { _ = nonce.Close() })

	wantLen, err := p.SecureChannelNonceLength()
	require.NoError(t, err)
	require.Equal(t, wantLen, nonce.Len())
}

func TestGenerateRandomIDIsNonDeterministic(t *testing.T) {
	t.Parallel()

	p, err := New(policy.URINone)
	require.NoError(t, err)

	a, err := p.GenerateRandomID()
	require.NoError(t, err)
	b, err := p.GenerateRandomID()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}
