// Copyright (c) 2025 Justin Cranford

package cryptoutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuitePolicyPrintsDefaultProfile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := Suite([]string{"cryptoutil", "policy"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "policy: Basic256Sha256")
}

func TestSuiteUnknownCommandFails(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := Suite([]string{"cryptoutil", "bogus"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 1, code)
}

func TestSuiteNoArgsRunsHelp(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := Suite([]string{"cryptoutil"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "cryptoutil")
}
