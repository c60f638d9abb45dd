package interfaces

import domaintypes "x3dhkit/internal/domain/types"

// KeyAgreementProvider performs raw Diffie-Hellman over a fixed curve.
type KeyAgreementProvider interface {
	GenerateKeyPair() (domaintypes.X25519Private, domaintypes.X25519Public, error)
	PublicFromPrivate(priv domaintypes.X25519Private) (domaintypes.X25519Public, error)
	// Agree returns the raw shared secret. It must never be used as a key
	// without passing through an HKDFProvider first.
	Agree(priv domaintypes.X25519Private, pub domaintypes.X25519Public) ([32]byte, error)
}

// SignatureProvider signs and verifies byte strings.
type SignatureProvider interface {
	GenerateKeyPair() (domaintypes.Ed25519Private, domaintypes.Ed25519Public, error)
	Sign(priv domaintypes.Ed25519Private, msg []byte) ([]byte, error)
	Verify(pub domaintypes.Ed25519Public, msg, sig []byte) bool
}

// AEADProvider seals and opens self-describing blobs (nonce and tag included).
type AEADProvider interface {
	Seal(key domaintypes.SymmetricKey, plaintext []byte) ([]byte, error)
	Open(key domaintypes.SymmetricKey, blob []byte) ([]byte, error)
}

// HKDFProvider expands input key material into length bytes.
type HKDFProvider interface {
	Derive(secret, salt, info []byte, length int) ([]byte, error)
}

// Suite bundles the primitive providers a session runs on.
type Suite struct {
	KeyAgreement KeyAgreementProvider
	Signature    SignatureProvider
	AEAD         AEADProvider
	HKDF         HKDFProvider
}
