package cipher

import (
	"fmt"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/protocol/aead"
	"x3dhkit/internal/protocol/kdf"
	"x3dhkit/internal/util/memzero"
)

// ByteCipher is the shape Layered needs from an inner cipher.
type ByteCipher interface {
	Encrypt(message []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Static encrypts with one key derived from a static X25519 agreement.
type Static struct {
	aead domain.AEADProvider
	key  domain.SymmetricKey
}

// NewStatic agrees my x their and derives the session key. A degenerate
// agreement (low-order peer point) is reported as domain.ErrInvalidKeyData.
func NewStatic(suite domain.Suite, my keys.PrivateKey, their keys.PublicKey) (*Static, error) {
	secret, err := suite.KeyAgreement.Agree(my.Raw(), their.Raw())
	if err != nil {
		return nil, fmt.Errorf("%w: static agreement: %w", domain.ErrInvalidKeyData, err)
	}
	key := kdf.Derive(suite.HKDF, secret)
	memzero.Zero32(&secret)
	return &Static{aead: suite.AEAD, key: key}, nil
}

// Encrypt seals message under the session key.
func (c *Static) Encrypt(message []byte) ([]byte, error) {
	return aead.Seal(c.aead, message, c.key)
}

// Decrypt opens a blob sealed by the peer's Static cipher.
func (c *Static) Decrypt(ciphertext []byte) ([]byte, error) {
	return aead.Open(c.aead, ciphertext, c.key)
}

// Wipe zeroes the cached session key. The cipher is unusable afterwards.
func (c *Static) Wipe() {
	memzero.Zero(c.key[:])
}

var _ ByteCipher = (*Static)(nil)
