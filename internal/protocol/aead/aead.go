// Package aead is the only consumer of derived symmetric keys. It seals and
// opens opaque blobs and collapses every open failure into one error so that
// callers cannot build a decryption oracle on top of it.
package aead

import (
	"x3dhkit/internal/domain"
)

// Seal encrypts plaintext under key. Provider failures surface as
// domain.ErrEncodingFailure.
func Seal(p domain.AEADProvider, plaintext []byte, key domain.SymmetricKey) ([]byte, error) {
	blob, err := p.Seal(key, plaintext)
	if err != nil {
		return nil, domain.ErrEncodingFailure
	}
	return blob, nil
}

// Open decrypts a blob produced by Seal. Wrong key, corruption and truncation
// all return domain.ErrDecryptionFailed.
func Open(p domain.AEADProvider, blob []byte, key domain.SymmetricKey) ([]byte, error) {
	pt, err := p.Open(key, blob)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return pt, nil
}
