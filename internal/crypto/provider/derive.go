// Copyright (c) 2025 Justin Cranford

package provider

import (
	"crypto/hmac"

	"opcuacrypto/internal/crypto/secretbuffer"
	"opcuacrypto/internal/shared/apperr"
)

// KeySet holds one side's derived session keys and IV, each held in a
// SecretBuffer so they zeroize on Close.
type KeySet struct {
	SignKey    *secretbuffer.SecretBuffer
	EncryptKey *secretbuffer.SecretBuffer
	IV         *secretbuffer.SecretBuffer
}

// Close zeroizes every buffer in the key set.
func (ks *KeySet) Close() error {
	var firstErr error

	for _, sb := range []*secretbuffer.SecretBuffer{ks.SignKey, ks.EncryptKey, ks.IV} {
		if sb == nil {
			continue
		}

		if err := sb.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// DerivePseudoRandomData implements the P_SHA pseudorandom function of
// RFC 5246 §5, keyed by the policy's signing digest (SHA-1 for Basic256,
// SHA-256 for Basic256Sha256), truncated to outLen bytes.
//
//	A(0) = seed
//	A(i) = HMAC_hash(secret, A(i-1))
//	P_hash(secret, seed) = HMAC_hash(secret, A(1) + seed) + HMAC_hash(secret, A(2) + seed) + ...
func (p *Provider) DerivePseudoRandomData(secret, seed []byte, outLen int) ([]byte, error) {
	if err := p.requireActive(); err != nil {
		return nil, err
	}

	if len(secret) == 0 {
		return nil, apperr.InvalidParameter("provider: empty derivation secret")
	}

	if len(seed) == 0 {
		return nil, apperr.InvalidParameter("provider: empty derivation seed")
	}

	if outLen <= 0 {
		return nil, apperr.InvalidParameter("provider: non-positive derivation output length %d", outLen)
	}

	mac := hmac.New(p.profile.SymmetricSignHash.New, secret)

	a := append([]byte(nil), seed...)

	out := make([]byte, 0, outLen)

	for len(out) < outLen {
		mac.Reset()
		mac.Write(a)
		a = mac.Sum(nil)

		mac.Reset()
		mac.Write(a)
		mac.Write(seed)
		chunk := mac.Sum(nil)

		out = append(out, chunk...)
	}

	return out[:outLen], nil
}

// DeriveKeySets derives the client and server key sets from a client/server
// nonce pair: the client key set is keyed by the server nonce (secret) and
// the client nonce (seed); the server key set is keyed the other way
// around.
func (p *Provider) DeriveKeySets(clientNonce, serverNonce []byte) (client, server KeySet, err error) {
	lengths, err := p.DeriveLengths()
	if err != nil {
		return KeySet{}, KeySet{}, err
	}

	client, err = p.deriveOneKeySet(serverNonce, clientNonce, lengths)
	if err != nil {
		return KeySet{}, KeySet{}, err
	}

	server, err = p.deriveOneKeySet(clientNonce, serverNonce, lengths)
	if err != nil {
		_ = client.Close()

		return KeySet{}, KeySet{}, err
	}

	return client, server, nil
}

func (p *Provider) deriveOneKeySet(secret, seed []byte, lengths DeriveLengths) (KeySet, error) {
	total := lengths.SignKeyLength + lengths.CryptoKeyLength + lengths.IVLength

	genData, err := p.DerivePseudoRandomData(secret, seed, total)
	if err != nil {
		return KeySet{}, err
	}
	defer secretbuffer.Zeroize(genData)

	signKey, err := secretbuffer.New(genData[:lengths.SignKeyLength])
	if err != nil {
		return KeySet{}, err
	}

	cryptoKey, err := secretbuffer.New(genData[lengths.SignKeyLength : lengths.SignKeyLength+lengths.CryptoKeyLength])
	if err != nil {
		_ = signKey.Close()

		return KeySet{}, err
	}

	iv, err := secretbuffer.New(genData[lengths.SignKeyLength+lengths.CryptoKeyLength:])
	if err != nil {
		_ = signKey.Close()
		_ = cryptoKey.Close()

		return KeySet{}, err
	}

	return KeySet{SignKey: signKey, EncryptKey: cryptoKey, IV: iv}, nil
}

// DeriveKeySetsClient derives both key sets given the client's own exposed
// nonce and the server's nonce, the convenience form used when the caller
// already holds the client nonce unwrapped.
func (p *Provider) DeriveKeySetsClient(clientNonce *secretbuffer.SecretBuffer, serverNonce []byte) (client, server KeySet, err error) {
	err = clientNonce.With(func(exposed []byte) error {
		client, server, err = p.DeriveKeySets(exposed, serverNonce)

		return err
	})

	return client, server, err
}

// DeriveKeySetsServer derives both key sets given the client's nonce and
// the server's own exposed nonce.
func (p *Provider) DeriveKeySetsServer(clientNonce []byte, serverNonce *secretbuffer.SecretBuffer) (client, server KeySet, err error) {
	err = serverNonce.With(func(exposed []byte) error {
		client, server, err = p.DeriveKeySets(clientNonce, exposed)

		return err
	})

	return client, server, err
}
