package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/memzero"
)

// X25519 is the default domain.KeyAgreementProvider.
type X25519 struct{}

// GenerateKeyPair returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func (X25519) GenerateKeyPair() (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = rand.Read(priv[:]); err != nil {
		return priv, pub, err
	}
	clamp(&priv)
	pub, err = X25519{}.PublicFromPrivate(priv)
	return priv, pub, err
}

// PublicFromPrivate derives the public point for priv.
func (X25519) PublicFromPrivate(priv domain.X25519Private) (pub domain.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// Agree computes X25519 Diffie–Hellman. A low-order peer point yields
// domain.ErrKeyAgreementFailed.
func (X25519) Agree(priv domain.X25519Private, pub domain.X25519Public) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrKeyAgreementFailed, err)
	}
	copy(out[:], secret)
	memzero.Zero(secret)
	return out, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

var _ domain.KeyAgreementProvider = X25519{}
