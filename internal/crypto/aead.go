package crypto

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"x3dhkit/internal/domain"
)

// SealOverhead is the number of bytes a sealed blob adds to its plaintext.
const SealOverhead = chacha20poly1305.NonceSize + chacha20poly1305.Overhead

var (
	ErrCiphertextTooShort = errors.New("crypto: ciphertext too short")
	ErrOpenFailed         = errors.New("crypto: message authentication failed")
)

// ChaCha20Poly1305 is the default domain.AEADProvider.
//
// Output format: nonce (12 bytes) || ciphertext || tag (16 bytes). Each seal
// draws a fresh random nonce, so one key may seal many messages.
type ChaCha20Poly1305 struct{}

// Seal encrypts and authenticates plaintext under key.
func (ChaCha20Poly1305) Seal(key domain.SymmetricKey, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, err
	}
	out := make([]byte, chacha20poly1305.NonceSize, SealOverhead+len(plaintext))
	if _, err := io.ReadFull(rand.Reader, out); err != nil {
		return nil, err
	}
	return aead.Seal(out, out[:chacha20poly1305.NonceSize], plaintext, nil), nil
}

// Open verifies and decrypts a blob produced by Seal.
func (ChaCha20Poly1305) Open(key domain.SymmetricKey, blob []byte) ([]byte, error) {
	if len(blob) < SealOverhead {
		return nil, ErrCiphertextTooShort
	}
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, err
	}
	nonce := blob[:chacha20poly1305.NonceSize]
	pt, err := aead.Open(nil, nonce, blob[chacha20poly1305.NonceSize:], nil)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return pt, nil
}

var _ domain.AEADProvider = ChaCha20Poly1305{}
