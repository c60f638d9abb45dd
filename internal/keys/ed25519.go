package keys

import (
	"crypto/subtle"
	"fmt"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/memzero"
)

// SigningPrivateKey is a long-term Ed25519 key, independent of the X25519
// identity key. Only forward-mode sessions use it.
type SigningPrivateKey struct {
	priv domain.Ed25519Private
}

// SigningPublicKey verifies signatures made by the matching SigningPrivateKey.
type SigningPublicKey struct {
	pub domain.Ed25519Public
}

// GenerateSigningKey returns a fresh Ed25519 signing key.
func GenerateSigningKey() (SigningPrivateKey, error) {
	priv, _, err := crypto.Ed25519{}.GenerateKeyPair()
	if err != nil {
		return SigningPrivateKey{}, err
	}
	return SigningPrivateKey{priv: priv}, nil
}

// SigningPrivateKeyFromBytes accepts either the 32-byte seed returned by
// Bytes or a 64-byte expanded key whose public half matches its seed.
func SigningPrivateKeyFromBytes(b []byte) (SigningPrivateKey, error) {
	switch len(b) {
	case domain.KeySize:
		priv, _ := crypto.Ed25519FromSeed(b)
		return SigningPrivateKey{priv: priv}, nil
	case len(domain.Ed25519Private{}):
		priv, _ := crypto.Ed25519FromSeed(b[:domain.KeySize])
		if subtle.ConstantTimeCompare(priv[:], b) != 1 {
			memzero.Zero(priv[:])
			return SigningPrivateKey{}, fmt.Errorf("%w: Ed25519 private: public half does not match seed",
				domain.ErrInvalidKeyData)
		}
		return SigningPrivateKey{priv: priv}, nil
	default:
		return SigningPrivateKey{}, fmt.Errorf("%w: Ed25519 private: want %d or %d bytes, got %d",
			domain.ErrInvalidKeyData, domain.KeySize, len(domain.Ed25519Private{}), len(b))
	}
}

// NewSigningPrivateKey wraps an expanded Ed25519 private key.
func NewSigningPrivateKey(priv domain.Ed25519Private) SigningPrivateKey {
	return SigningPrivateKey{priv: priv}
}

// Bytes returns a copy of the 32-byte seed.
func (k SigningPrivateKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, k.priv.Seed())
	return out
}

// Raw returns the expanded private key.
func (k SigningPrivateKey) Raw() domain.Ed25519Private { return k.priv }

// IsZero reports whether k is unset.
func (k SigningPrivateKey) IsZero() bool { return k.priv == domain.Ed25519Private{} }

// PublicKey returns the verification half.
func (k SigningPrivateKey) PublicKey() SigningPublicKey {
	var pub domain.Ed25519Public
	copy(pub[:], k.priv[domain.KeySize:])
	return SigningPublicKey{pub: pub}
}

// Sign signs data with the default Ed25519 provider.
func (k SigningPrivateKey) Sign(data []byte) ([]byte, error) {
	return crypto.Ed25519{}.Sign(k.priv, data)
}

// Wipe zeroes the key in place.
func (k *SigningPrivateKey) Wipe() { memzero.Zero(k.priv[:]) }

// SigningPublicKeyFromBytes parses a 32-byte Ed25519 public key. Encodings
// off the curve or of small order are rejected.
func SigningPublicKeyFromBytes(b []byte) (SigningPublicKey, error) {
	if len(b) != domain.KeySize {
		return SigningPublicKey{}, fmt.Errorf("%w: Ed25519 public: want %d bytes, got %d",
			domain.ErrInvalidKeyData, domain.KeySize, len(b))
	}
	var pub domain.Ed25519Public
	copy(pub[:], b)
	if err := crypto.CheckEd25519PublicKey(pub); err != nil {
		return SigningPublicKey{}, fmt.Errorf("%w: Ed25519 public: %v", domain.ErrInvalidKeyData, err)
	}
	return SigningPublicKey{pub: pub}, nil
}

// NewSigningPublicKey wraps a raw Ed25519 public key without validation.
func NewSigningPublicKey(pub domain.Ed25519Public) SigningPublicKey {
	return SigningPublicKey{pub: pub}
}

// Bytes returns a copy of the raw public key.
func (p SigningPublicKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, p.pub[:])
	return out
}

// Raw returns the fixed-size public key.
func (p SigningPublicKey) Raw() domain.Ed25519Public { return p.pub }

// IsZero reports whether p is unset.
func (p SigningPublicKey) IsZero() bool { return p.pub == domain.Ed25519Public{} }

// Verify reports whether signature is a valid signature of data.
func (p SigningPublicKey) Verify(data, signature []byte) bool {
	return crypto.Ed25519{}.Verify(p.pub, data, signature)
}

// Validate reports domain.ErrInvalidKeyData for a key that
// SigningPublicKeyFromBytes would have refused.
func (p SigningPublicKey) Validate() error {
	if err := crypto.CheckEd25519PublicKey(p.pub); err != nil {
		return fmt.Errorf("%w: Ed25519 public: %v", domain.ErrInvalidKeyData, err)
	}
	return nil
}

// Fingerprint returns a short display fingerprint.
func (p SigningPublicKey) Fingerprint() domain.Fingerprint { return crypto.Fingerprint(p.pub[:]) }
