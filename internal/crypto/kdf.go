package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"x3dhkit/internal/domain"
)

// HKDFSHA256 is the default domain.HKDFProvider.
type HKDFSHA256 struct{}

// Derive expands secret into length bytes using HKDF-SHA256.
// salt can be nil (uses zero salt), info provides context binding.
func (HKDFSHA256) Derive(secret, salt, info []byte, length int) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.HKDFProvider = HKDFSHA256{}
