// Copyright (c) 2025 Justin Cranford

// Package provider implements the CryptoProvider: the single object through
// which a caller performs every cryptographic operation an OPC UA secure
// channel needs, parametrized by one of the three security policies.
package provider

import (
	"io"

	"opcuacrypto/internal/crypto/policy"
	"opcuacrypto/internal/shared/apperr"
)

// Provider binds a policy Profile to a Backend implementation. Construct
// one with New; it holds no per-channel state and is safe for concurrent
// use by multiple goroutines, the way a stateless function table is.
type Provider struct {
	profile *policy.Profile
	backend Backend
}

// New resolves uri to its policy and returns a Provider backed by the
// standard library crypto implementation. Returns ErrInvalidParameter if
// uri does not match any known policy.
func New(uri string) (*Provider, error) {
	return NewWithBackend(uri, StdBackend{})
}

// NewWithBackend is New, but lets a caller substitute the Backend, e.g. a
// test backend with a deterministic entropy source.
func NewWithBackend(uri string, backend Backend) (*Provider, error) {
	profile, ok := policy.Lookup(uri)
	if !ok {
		return nil, apperr.InvalidParameter("provider: unknown policy URI %q", uri)
	}

	if backend == nil {
		return nil, apperr.InvalidParameter("provider: nil backend")
	}

	return &Provider{profile: profile, backend: backend}, nil
}

// Policy returns the provider's resolved policy identifier.
func (p *Provider) Policy() policy.ID { return p.profile.ID }

// Profile returns the provider's immutable policy profile.
func (p *Provider) Profile() *policy.Profile { return p.profile }

// requireActive fails fast for None and Invalid, the two policies with no
// primitives beyond random generation.
func (p *Provider) requireActive() error {
	if p.profile.ID != policy.Basic256 && p.profile.ID != policy.Basic256Sha256 {
		return apperr.InvalidParameter("provider: operation unsupported under policy %s", p.profile.ID)
	}

	return nil
}

// WithEntropySource builds a Provider whose StdBackend reads random bytes
// from r instead of crypto/rand.Reader. Intended for tests needing
// reproducible nonces; r must still be cryptographically suitable for
// production use.
func WithEntropySource(uri string, r io.Reader) (*Provider, error) {
	return NewWithBackend(uri, StdBackend{Entropy: r})
}
