// Copyright (c) 2025 Justin Cranford

package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, shutdown := New(&buf)
	t.Cleanup(func() {
		require.NoError(t, shutdown(context.Background()))
	})

	logger.Info("provider constructed", "policy", "Basic256Sha256")

	require.Contains(t, buf.String(), "provider constructed")
}

func TestDiscardDropsRecords(t *testing.T) {
	t.Parallel()

	logger := Discard()
	require.NotPanics(t, func() { logger.Info("ignored") })
}
