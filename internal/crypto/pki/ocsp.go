// Copyright (c) 2025 Justin Cranford

package pki

import (
	"bytes"
	"context"
	"crypto/x509"
	"io"
	"net/http"

	"golang.org/x/crypto/ocsp"

	"opcuacrypto/internal/shared/apperr"
)

// ocspChecker sends a pre-built OCSP request to a responder URL and returns
// the raw response bytes. Swappable in tests to avoid a real network call.
type ocspChecker func(ctx context.Context, responderURL string, request []byte) ([]byte, error)

func httpOCSPChecker(ctx context.Context, responderURL string, request []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responderURL, bytes.NewReader(request))
	if err != nil {
		return nil, apperr.NotOK("pki: build ocsp request: %w", err)
	}

	req.Header.Set("Content-Type", "application/ocsp-request")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, apperr.NotOK("pki: ocsp request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NotOK("pki: read ocsp response: %w", err)
	}

	return body, nil
}

// responderURL is stored alongside the checker so WithOCSPResponder can be
// called once at construction time.
type ocspConfig struct {
	responderURL string
	checker      ocspChecker
}

// WithOCSPResponder enables OCSP-based revocation checking against
// responderURL, supplementing (not replacing) any attached CRL.
func (p *Provider) WithOCSPResponder(responderURL string) *Provider {
	p.ocspConfig = &ocspConfig{responderURL: responderURL, checker: httpOCSPChecker}

	return p
}

// ValidateWithOCSP runs Validate, then additionally checks cert's
// revocation status against the configured OCSP responder using issuer as
// the issuing certificate. Requires WithOCSPResponder to have been called.
func (p *Provider) ValidateWithOCSP(ctx context.Context, cert, issuer *x509.Certificate) error {
	if err := p.Validate(cert); err != nil {
		return err
	}

	if p.ocspConfig == nil {
		return apperr.InvalidParameter("pki: no OCSP responder configured")
	}

	request, err := ocsp.CreateRequest(cert, issuer, nil)
	if err != nil {
		return apperr.NotOK("pki: build ocsp request: %w", err)
	}

	raw, err := p.ocspConfig.checker(ctx, p.ocspConfig.responderURL, request)
	if err != nil {
		return err
	}

	resp, err := ocsp.ParseResponseForCert(raw, cert, issuer)
	if err != nil {
		return apperr.NotOK("pki: parse ocsp response: %w", err)
	}

	if resp.Status != ocsp.Good {
		return apperr.NotOK("pki: ocsp status %d (not good)", resp.Status)
	}

	return nil
}
