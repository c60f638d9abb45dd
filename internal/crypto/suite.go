package crypto

import "x3dhkit/internal/domain"

// DefaultSuite returns X25519, Ed25519, ChaCha20-Poly1305 and HKDF-SHA256.
func DefaultSuite() domain.Suite {
	return domain.Suite{
		KeyAgreement: X25519{},
		Signature:    Ed25519{},
		AEAD:         ChaCha20Poly1305{},
		HKDF:         HKDFSHA256{},
	}
}
