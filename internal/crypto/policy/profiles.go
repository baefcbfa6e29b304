// Copyright (c) 2025 Justin Cranford

package policy

import (
	"crypto"
	"sync"
)

// Profile is the immutable per-policy record every CryptoProvider operation
// consults: policy identifier, URI, and the length/algorithm constants that
// parametrize symmetric and asymmetric primitives. None's primitives
// beyond random generation are invalid by construction: the provider layer
// checks ID == None before touching any of these fields.
type Profile struct {
	ID  ID
	URI string

	SignatureAlgorithmURI string

	SymmetricKeyLength       int
	SymmetricSignKeyLength   int
	SymmetricSignatureLength int
	SymmetricBlockSize       int
	NonceLength              int

	AsymmetricOAEPHashLength int
	AsymmetricPSSHashLength  int
	ThumbprintLength         int

	RSAKeyBitsMin int
	RSAKeyBitsMax int

	// SymmetricSignHash is the HMAC digest (SHA-1 or SHA-256).
	SymmetricSignHash crypto.Hash
	// AsymmetricSignHash is the PKCS#1 v1.5 signing digest (SHA-1 or
	// SHA-256 depending on policy).
	AsymmetricSignHash crypto.Hash
	// OAEPHash is always SHA-1: both active policies use RSA-OAEP-SHA-1
	// for asymmetric encryption regardless of their signing digest.
	OAEPHash crypto.Hash
	// ThumbprintHash is always SHA-1 in both active policies.
	ThumbprintHash crypto.Hash
}

var allProfiles = sync.OnceValue(buildProfiles)

func buildProfiles() []*Profile {
	return []*Profile{
		{
			ID:  Basic256Sha256,
			URI: URIBasic256Sha256,

			SignatureAlgorithmURI: SignatureAlgorithmRSASha256,

			SymmetricKeyLength:       32,
			SymmetricSignKeyLength:   32,
			SymmetricSignatureLength: 32,
			SymmetricBlockSize:       16,
			NonceLength:              32,

			AsymmetricOAEPHashLength: 20,
			AsymmetricPSSHashLength:  32,
			ThumbprintLength:         20,

			RSAKeyBitsMin: 2048,
			RSAKeyBitsMax: 4096,

			SymmetricSignHash:  crypto.SHA256,
			AsymmetricSignHash: crypto.SHA256,
			OAEPHash:           crypto.SHA1,
			ThumbprintHash:     crypto.SHA1,
		},
		{
			ID:  Basic256,
			URI: URIBasic256,

			SignatureAlgorithmURI: SignatureAlgorithmRSASha1,

			SymmetricKeyLength:       32,
			SymmetricSignKeyLength:   24,
			SymmetricSignatureLength: 20,
			SymmetricBlockSize:       16,
			NonceLength:              32,

			AsymmetricOAEPHashLength: 20,
			AsymmetricPSSHashLength:  20,
			ThumbprintLength:         20,

			RSAKeyBitsMin: 1024,
			RSAKeyBitsMax: 2048,

			SymmetricSignHash:  crypto.SHA1,
			AsymmetricSignHash: crypto.SHA1,
			OAEPHash:           crypto.SHA1,
			ThumbprintHash:     crypto.SHA1,
		},
		{
			ID:  None,
			URI: URINone,
		},
	}
}
