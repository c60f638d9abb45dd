package cipher

import (
	"x3dhkit/internal/domain"
	"x3dhkit/internal/protocol/aead"
)

// OuterLayer seals an already-encrypted payload again under an independent
// key. The zero value, or one built without a key, passes data through.
type OuterLayer struct {
	aead    domain.AEADProvider
	key     domain.SymmetricKey
	enabled bool
}

// NewOuterLayer copies *key; a nil key disables the layer.
func NewOuterLayer(p domain.AEADProvider, key *domain.SymmetricKey) OuterLayer {
	if key == nil {
		return OuterLayer{}
	}
	return OuterLayer{aead: p, key: *key, enabled: true}
}

// Enabled reports whether the layer adds encryption.
func (l OuterLayer) Enabled() bool { return l.enabled }

// Wrap seals inner under the additional key.
func (l OuterLayer) Wrap(inner []byte) ([]byte, error) {
	if !l.enabled {
		return inner, nil
	}
	return aead.Seal(l.aead, inner, l.key)
}

// Unwrap opens the outer layer.
func (l OuterLayer) Unwrap(blob []byte) ([]byte, error) {
	if !l.enabled {
		return blob, nil
	}
	return aead.Open(l.aead, blob, l.key)
}

// Layered composes an inner session cipher with an optional OuterLayer.
type Layered struct {
	inner ByteCipher
	outer OuterLayer
}

// NewLayered wraps inner. With additional == nil it behaves exactly like inner.
func NewLayered(inner ByteCipher, p domain.AEADProvider, additional *domain.SymmetricKey) *Layered {
	return &Layered{inner: inner, outer: NewOuterLayer(p, additional)}
}

// Encrypt runs the inner cipher, then the outer layer.
func (m *Layered) Encrypt(message []byte) ([]byte, error) {
	inner, err := m.inner.Encrypt(message)
	if err != nil {
		return nil, err
	}
	return m.outer.Wrap(inner)
}

// Decrypt peels the outer layer, then hands the rest to the inner cipher.
func (m *Layered) Decrypt(ciphertext []byte) ([]byte, error) {
	inner, err := m.outer.Unwrap(ciphertext)
	if err != nil {
		return nil, err
	}
	return m.inner.Decrypt(inner)
}

var _ ByteCipher = (*Layered)(nil)
