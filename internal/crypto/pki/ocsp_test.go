// Copyright (c) 2025 Justin Cranford

package pki

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ocsp"
)

func TestValidateWithOCSPRequiresResponderConfigured(t *testing.T) {
	t.Parallel()

	caPriv, caCert := generateCA(t)
	leaf := issueLeaf(t, caPriv, caCert, 6)

	p, err := New(caCert)
	require.NoError(t, err)

	err = p.ValidateWithOCSP(context.Background(), leaf, caCert)
	require.Error(t, err)
}

func TestValidateWithOCSPAcceptsGoodStatus(t *testing.T) {
	t.Parallel()

	caPriv, caCert := generateCA(t)
	leaf := issueLeaf(t, caPriv, caCert, 7)

	p, err := New(caCert)
	require.NoError(t, err)
	p.WithOCSPResponder("http://ocsp.example.test")

	p.ocspConfig.checker = func(ctx context.Context, responderURL string, request []byte) ([]byte, error) {
		return ocsp.CreateResponse(caCert, caCert, ocsp.Response{
			Status:       ocsp.Good,
			SerialNumber: leaf.SerialNumber,
			ThisUpdate:   time.Now(),
			NextUpdate:   time.Now().Add(time.Hour),
		}, caPriv)
	}

	require.NoError(t, p.ValidateWithOCSP(context.Background(), leaf, caCert))
}

func TestValidateWithOCSPRejectsRevokedStatus(t *testing.T) {
	t.Parallel()

	caPriv, caCert := generateCA(t)
	leaf := issueLeaf(t, caPriv, caCert, 8)

	p, err := New(caCert)
	require.NoError(t, err)
	p.WithOCSPResponder("http://ocsp.example.test")

	p.ocspConfig.checker = func(ctx context.Context, responderURL string, request []byte) ([]byte, error) {
		return ocsp.CreateResponse(caCert, caCert, ocsp.Response{
			Status:       ocsp.Revoked,
			SerialNumber: leaf.SerialNumber,
			ThisUpdate:   time.Now(),
			NextUpdate:   time.Now().Add(time.Hour),
			RevokedAt:    time.Now(),
		}, caPriv)
	}

	require.Error(t, p.ValidateWithOCSP(context.Background(), leaf, caCert))
}
