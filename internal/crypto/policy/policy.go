// Copyright (c) 2025 Justin Cranford

// Package policy defines the closed set of OPC UA security policies the
// crypto core understands, and resolves a policy URI to its immutable
// Profile.
package policy

import "strings"

// ID is a stable small-integer identifier for a security policy. Values are
// fixed for the lifetime of the process and never renumbered.
type ID uint8

const (
	// Invalid marks the zero value: no policy was resolved.
	Invalid ID = 0
	// Basic256Sha256 is the strongest of the three supported policies.
	Basic256Sha256 ID = 1
	// Basic256 is the legacy SHA-1-keyed policy.
	Basic256 ID = 2
	// None disables every cryptographic primitive except random generation.
	None ID = 3
)

// String renders the policy's short name for logging.
func (id ID) String() string {
	switch id {
	case Basic256Sha256:
		return "Basic256Sha256"
	case Basic256:
		return "Basic256"
	case None:
		return "None"
	default:
		return "Invalid"
	}
}

// Lookup resolves uri to its Profile. Matching is case-insensitive over the
// full string: a request for Basic256 must never match Basic256Sha256's
// profile or vice versa, so a plain case-insensitive equality check is used
// rather than a prefix match.
func Lookup(uri string) (*Profile, bool) {
	for _, p := range allProfiles() {
		if strings.EqualFold(p.URI, uri) {
			return p, true
		}
	}

	return nil, false
}
