// Copyright (c) 2025 Justin Cranford

package keymanager

import (
	"go.mozilla.org/pkcs7"

	"opcuacrypto/internal/shared/apperr"
)

// CreateCertificateFromPKCS7 extracts the leaf certificate from a PKCS#7
// "certs-only" bundle (the degenerate SignedData structure many
// certificate-management tools export instead of a bare DER file).
func CreateCertificateFromPKCS7(der []byte) (*Certificate, error) {
	p7, err := pkcs7.Parse(der)
	if err != nil {
		return nil, apperr.InvalidParameter("keymanager: parse pkcs7: %w", err)
	}

	if len(p7.Certificates) == 0 {
		return nil, apperr.InvalidParameter("keymanager: pkcs7 bundle carries no certificates")
	}

	leaf := p7.Certificates[0]

	return LoadCertificateDER(leaf.Raw)
}
