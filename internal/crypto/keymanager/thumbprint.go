// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the thumbprint algorithm both active policies mandate.
	"encoding/hex"

	"opcuacrypto/internal/shared/apperr"
)

// ComputeCertificateThumbprint hashes cert's DER encoding with SHA-1 — the
// thumbprint algorithm both active policies specify — and writes the
// result into out, which must be exactly wantLen bytes (the policy's
// CertificateThumbprintLength).
func ComputeCertificateThumbprint(cert *Certificate, out []byte, wantLen int) error {
	if cert == nil {
		return apperr.InvalidParameter("keymanager: nil certificate")
	}

	if len(out) != wantLen {
		return apperr.InvalidParameter("keymanager: output buffer length %d, want %d", len(out), wantLen)
	}

	sum := sha1.Sum(cert.DER())

	if wantLen != len(sum) {
		return apperr.InvalidParameter("keymanager: thumbprint length %d does not match SHA-1 output %d", wantLen, len(sum))
	}

	copy(out, sum[:])

	return nil
}

// ThumbprintHex is a convenience wrapper returning the lowercase hex
// encoding of the certificate's thumbprint.
func ThumbprintHex(cert *Certificate) (string, error) {
	out := make([]byte, sha1.Size)
	if err := ComputeCertificateThumbprint(cert, out, sha1.Size); err != nil {
		return "", err
	}

	return hex.EncodeToString(out), nil
}
