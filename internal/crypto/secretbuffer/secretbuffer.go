// Copyright (c) 2025 Justin Cranford

// Package secretbuffer holds key material in a buffer that is zeroized on
// every exit path, and forces callers through a scoped-exposure API instead
// of handing out a plain byte slice that could be retained past the
// buffer's lifetime.
package secretbuffer

import (
	"sync"

	"opcuacrypto/internal/shared/apperr"
)

// SecretBuffer owns a fixed-size block of secret bytes. The zero value is
// not usable; construct one with New.
type SecretBuffer struct {
	mu     sync.Mutex
	bytes  []byte
	closed bool
}

// New copies data into a freshly owned SecretBuffer. The caller's slice is
// not retained; zeroize it yourself if it must not linger.
func New(data []byte) (*SecretBuffer, error) {
	if len(data) == 0 {
		return nil, apperr.InvalidParameter("secretbuffer: empty secret")
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return &SecretBuffer{bytes: owned}, nil
}

// NewZeroed allocates a SecretBuffer of n zero bytes, for callers that fill
// it in place (e.g. a DRBG write).
func NewZeroed(n int) (*SecretBuffer, error) {
	if n <= 0 {
		return nil, apperr.InvalidParameter("secretbuffer: non-positive length %d", n)
	}

	return &SecretBuffer{bytes: make([]byte, n)}, nil
}

// Len reports the buffer's length without exposing its contents.
func (s *SecretBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bytes)
}

// With exposes the secret to fn for the duration of the call only. The
// underlying slice must not escape fn: copy it if the caller needs the
// bytes afterward.
func (s *SecretBuffer) With(fn func(secret []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperr.NotOK("secretbuffer: use after zeroize")
	}

	return fn(s.bytes)
}

// Expose returns a copy of the secret bytes. Pair every Expose with
// Unexpose on the returned copy once the caller is done with it.
func (s *SecretBuffer) Expose() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, apperr.NotOK("secretbuffer: use after zeroize")
	}

	out := make([]byte, len(s.bytes))
	copy(out, s.bytes)

	return out, nil
}

// Unexpose zeroizes a copy previously returned by Expose.
func Unexpose(copied []byte) {
	Zeroize(copied)
}

// Zeroize overwrites buf with zero bytes in place.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// Close zeroizes the buffer's backing storage. Safe to call more than
// once; every subsequent Expose or With on the buffer fails with ErrNotOK.
// Len keeps reporting the original length.
func (s *SecretBuffer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	Zeroize(s.bytes)
	s.closed = true

	return nil
}
