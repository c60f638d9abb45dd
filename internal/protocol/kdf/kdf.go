// Package kdf turns Diffie-Hellman output, or any other input key material,
// into 32-byte symmetric keys.
//
// Derivation is deterministic and domain-separated by a fixed salt with empty
// info. Raw shared secrets never reach an AEAD without passing through here.
package kdf

import (
	"fmt"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/memzero"
)

// Salt is the protocol's fixed HKDF salt. Changing it breaks interoperability
// with every existing peer.
const Salt = "X3DHSDK-Salt"

// KeyLength is the size of every derived key.
const KeyLength = 32

// Derive expands a raw X25519 shared secret into a symmetric key.
func Derive(h domain.HKDFProvider, sharedSecret [32]byte) domain.SymmetricKey {
	return DeriveFromBytes(h, sharedSecret[:])
}

// DeriveFromBytes expands arbitrary input bytes into a symmetric key.
//
// The provider is expected never to fail for a 32-byte output; a failure is a
// broken precondition and panics rather than surfacing as a runtime error.
func DeriveFromBytes(h domain.HKDFProvider, data []byte) domain.SymmetricKey {
	okm, err := h.Derive(data, []byte(Salt), nil, KeyLength)
	if err != nil || len(okm) != KeyLength {
		panic(fmt.Sprintf("kdf: provider failed to derive %d bytes: %v", KeyLength, err))
	}
	var key domain.SymmetricKey
	copy(key[:], okm)
	memzero.Zero(okm)
	return key
}
