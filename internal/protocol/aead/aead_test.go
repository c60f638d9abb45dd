package aead_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/protocol/aead"
)

type failingAEAD struct{}

func (failingAEAD) Seal(domain.SymmetricKey, []byte) ([]byte, error) { return nil, errors.New("seal") }
func (failingAEAD) Open(domain.SymmetricKey, []byte) ([]byte, error) { return nil, errors.New("open") }

func TestSealOpen_RoundTrip(t *testing.T) {
	p := crypto.ChaCha20Poly1305{}
	key := domain.SymmetricKey{1}
	for _, pt := range [][]byte{nil, {}, []byte("a"), make([]byte, 1<<16)} {
		blob, err := aead.Seal(p, pt, key)
		require.NoError(t, err)
		got, err := aead.Open(p, blob, key)
		require.NoError(t, err)
		assert.Equal(t, len(pt), len(got))
	}
}

func TestOpen_FailuresAreUniform(t *testing.T) {
	p := crypto.ChaCha20Poly1305{}
	key := domain.SymmetricKey{1}
	blob, err := aead.Seal(p, []byte("secret"), key)
	require.NoError(t, err)

	flipped := append([]byte(nil), blob...)
	flipped[13] ^= 0x80

	cases := map[string]struct {
		blob []byte
		key  domain.SymmetricKey
	}{
		"wrong key": {blob: blob, key: domain.SymmetricKey{2}},
		"bit flip":  {blob: flipped, key: key},
		"truncated": {blob: blob[:10], key: key},
		"empty":     {blob: nil, key: key},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := aead.Open(p, tc.blob, tc.key)
			require.Nil(t, got)
			require.Equal(t, domain.ErrDecryptionFailed, err)
		})
	}
}

func TestSeal_ProviderFailure(t *testing.T) {
	_, err := aead.Seal(failingAEAD{}, []byte("x"), domain.SymmetricKey{})
	require.Equal(t, domain.ErrEncodingFailure, err)
}
