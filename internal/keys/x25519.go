package keys

import (
	"crypto/subtle"
	"fmt"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/memzero"
)

// PrivateKey is the private half of an X25519 identity or ephemeral key pair.
// The public half is derived once at construction.
type PrivateKey struct {
	priv domain.X25519Private
	pub  domain.X25519Public
}

// PublicKey is an X25519 public key.
type PublicKey struct {
	pub domain.X25519Public
}

// GeneratePrivateKey returns a fresh, clamped X25519 private key.
func GeneratePrivateKey() (PrivateKey, error) {
	return GeneratePrivateKeyWith(crypto.X25519{})
}

// GeneratePrivateKeyWith generates a key pair through p.
func GeneratePrivateKeyWith(p domain.KeyAgreementProvider) (PrivateKey, error) {
	priv, pub, err := p.GenerateKeyPair()
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{priv: priv, pub: pub}, nil
}

// PrivateKeyFromBytes rebuilds a private key from its 32 raw bytes. The bytes
// are kept as given so that Bytes returns them unchanged; X25519 clamps
// internally when the key is used.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != domain.KeySize {
		return PrivateKey{}, fmt.Errorf("%w: X25519 private: want %d bytes, got %d",
			domain.ErrInvalidKeyData, domain.KeySize, len(b))
	}
	var priv domain.X25519Private
	copy(priv[:], b)
	pub, err := crypto.X25519{}.PublicFromPrivate(priv)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %v", domain.ErrInvalidKeyData, err)
	}
	return PrivateKey{priv: priv, pub: pub}, nil
}

// NewPrivateKey wraps an existing raw pair.
func NewPrivateKey(priv domain.X25519Private, pub domain.X25519Public) PrivateKey {
	return PrivateKey{priv: priv, pub: pub}
}

// Bytes returns a copy of the raw private key.
func (k PrivateKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, k.priv[:])
	return out
}

// Raw returns the fixed-size private key.
func (k PrivateKey) Raw() domain.X25519Private { return k.priv }

// PublicKey returns the public half.
func (k PrivateKey) PublicKey() PublicKey { return PublicKey{pub: k.pub} }

// IsZero reports whether k was never initialised (or has been wiped).
func (k PrivateKey) IsZero() bool { return k.priv == domain.X25519Private{} }

// SharedSecret runs X25519 between k and peer. The result is raw DH output
// and must go through key derivation before use.
func (k PrivateKey) SharedSecret(peer PublicKey) ([32]byte, error) {
	return crypto.X25519{}.Agree(k.priv, peer.pub)
}

// Wipe zeroes the private half in place.
func (k *PrivateKey) Wipe() {
	memzero.Zero(k.priv[:])
}

// PublicKeyFromBytes parses a 32-byte X25519 public key. The all-zero point
// is rejected.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != domain.KeySize {
		return PublicKey{}, fmt.Errorf("%w: X25519 public: want %d bytes, got %d",
			domain.ErrInvalidKeyData, domain.KeySize, len(b))
	}
	var pub domain.X25519Public
	copy(pub[:], b)
	if pub.IsZero() {
		return PublicKey{}, fmt.Errorf("%w: X25519 public: all-zero point", domain.ErrInvalidKeyData)
	}
	return PublicKey{pub: pub}, nil
}

// NewPublicKey wraps a raw public key without validation.
func NewPublicKey(pub domain.X25519Public) PublicKey { return PublicKey{pub: pub} }

// Bytes returns a copy of the raw public key.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, p.pub[:])
	return out
}

// Raw returns the fixed-size public key.
func (p PublicKey) Raw() domain.X25519Public { return p.pub }

// IsZero reports whether p is unset.
func (p PublicKey) IsZero() bool { return p.pub.IsZero() }

// Equal compares two public keys in constant time.
func (p PublicKey) Equal(o PublicKey) bool {
	return subtle.ConstantTimeCompare(p.pub[:], o.pub[:]) == 1
}

// Fingerprint returns a short display fingerprint.
func (p PublicKey) Fingerprint() domain.Fingerprint { return crypto.Fingerprint(p.pub[:]) }
