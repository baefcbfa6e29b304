// Copyright (c) 2025 Justin Cranford

package apperr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidParameterWraps(t *testing.T) {
	t.Parallel()

	err := InvalidParameter("key length %d", 16)
	require.Error(t, err)
	require.True(t, IsInvalidParameter(err))
	require.False(t, IsNotOK(err))
	require.Contains(t, err.Error(), "key length 16")
}

func TestNotOKWraps(t *testing.T) {
	t.Parallel()

	err := NotOK("signature mismatch")
	require.Error(t, err)
	require.True(t, IsNotOK(err))
	require.False(t, IsInvalidParameter(err))
}
