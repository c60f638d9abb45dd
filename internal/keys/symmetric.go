package keys

import (
	"crypto/rand"
	"fmt"

	"x3dhkit/internal/domain"
)

// GenerateSymmetricKey returns 32 random bytes, for use as an additional
// outer-layer key.
func GenerateSymmetricKey() (domain.SymmetricKey, error) {
	var k domain.SymmetricKey
	if _, err := rand.Read(k[:]); err != nil {
		return domain.SymmetricKey{}, err
	}
	return k, nil
}

// SymmetricKeyFromBytes copies exactly 32 bytes into a SymmetricKey.
func SymmetricKeyFromBytes(b []byte) (domain.SymmetricKey, error) {
	var k domain.SymmetricKey
	if len(b) != len(k) {
		return k, fmt.Errorf("%w: symmetric key: want %d bytes, got %d",
			domain.ErrInvalidKeyData, len(k), len(b))
	}
	copy(k[:], b)
	return k, nil
}
