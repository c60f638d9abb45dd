package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"filippo.io/edwards25519"

	"x3dhkit/internal/domain"
)

// ErrWeakSigningKey means an Ed25519 public key does not decode to a point or
// lies in the small-order subgroup. Signatures under such a key can be forged
// without any private key.
var ErrWeakSigningKey = errors.New("crypto: weak or invalid Ed25519 public key")

// Ed25519 is the default domain.SignatureProvider.
type Ed25519 struct{}

// GenerateKeyPair returns a new Ed25519 signing key pair.
func (Ed25519) GenerateKeyPair() (priv domain.Ed25519Private, pub domain.Ed25519Public, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// Sign signs msg with priv and returns the signature.
func (Ed25519) Sign(priv domain.Ed25519Private, msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg), nil
}

// Verify verifies sig over msg with pub.
func (Ed25519) Verify(pub domain.Ed25519Public, msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}

// CheckEd25519PublicKey rejects encodings that are not curve points and the
// eight small-order points, including their non-canonical encodings.
func CheckEd25519PublicKey(pub domain.Ed25519Public) error {
	p, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return ErrWeakSigningKey
	}
	if new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return ErrWeakSigningKey
	}
	return nil
}

// Ed25519FromSeed expands a 32-byte seed into a key pair.
func Ed25519FromSeed(seed []byte) (priv domain.Ed25519Private, pub domain.Ed25519Public) {
	sk := ed25519.NewKeyFromSeed(seed)
	copy(priv[:], sk)
	copy(pub[:], sk[ed25519.SeedSize:])
	return priv, pub
}

var _ domain.SignatureProvider = Ed25519{}
