// Copyright (c) 2025 Justin Cranford

// Package apperr defines the three-outcome error model shared by every
// crypto component: nil (ok), ErrInvalidParameter (precondition violated),
// or ErrNotOK (precondition held, the operation itself failed).
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter means a precondition was violated: a null argument,
	// a wrong buffer size, an unsupported policy, a mis-sized secret, an
	// unrecognized URI. The caller has a bug.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotOK means the precondition held but the operation failed for a
	// runtime reason: backend error, allocation failure, signature mismatch
	// on verify, certificate validation failure, PRF length overflow.
	ErrNotOK = errors.New("operation failed")
)

// InvalidParameter wraps ErrInvalidParameter with context, matching the
// call site's argument-validation message.
func InvalidParameter(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidParameter)...)
}

// NotOK wraps ErrNotOK with context describing the runtime failure.
func NotOK(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotOK)...)
}

// IsInvalidParameter reports whether err is (or wraps) ErrInvalidParameter.
func IsInvalidParameter(err error) bool { return errors.Is(err, ErrInvalidParameter) }

// IsNotOK reports whether err is (or wraps) ErrNotOK.
func IsNotOK(err error) bool { return errors.Is(err, ErrNotOK) }
