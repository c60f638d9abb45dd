package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
)

func TestX25519_AgreeIsSymmetric(t *testing.T) {
	var x crypto.X25519
	aPriv, aPub, err := x.GenerateKeyPair()
	require.NoError(t, err)
	bPriv, bPub, err := x.GenerateKeyPair()
	require.NoError(t, err)

	ab, err := x.Agree(aPriv, bPub)
	require.NoError(t, err)
	ba, err := x.Agree(bPriv, aPub)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestX25519_GeneratedKeysAreClamped(t *testing.T) {
	priv, _, err := crypto.X25519{}.GenerateKeyPair()
	require.NoError(t, err)
	assert.Zero(t, priv[0]&7)
	assert.Zero(t, priv[31]&128)
	assert.NotZero(t, priv[31]&64)
}

func TestX25519_LowOrderPointFails(t *testing.T) {
	priv, _, err := crypto.X25519{}.GenerateKeyPair()
	require.NoError(t, err)

	// u = 1 has order 4; a clamped scalar maps it to the identity.
	_, err = crypto.X25519{}.Agree(priv, domain.X25519Public{1})
	require.ErrorIs(t, err, domain.ErrKeyAgreementFailed)
}

func TestEd25519_SignVerify(t *testing.T) {
	var e crypto.Ed25519
	priv, pub, err := e.GenerateKeyPair()
	require.NoError(t, err)

	sig, err := e.Sign(priv, []byte("msg"))
	require.NoError(t, err)
	require.Len(t, sig, domain.SignatureSize)

	assert.True(t, e.Verify(pub, []byte("msg"), sig))
	assert.False(t, e.Verify(pub, []byte("msh"), sig))
	assert.False(t, e.Verify(pub, []byte("msg"), sig[:63]))
}

func TestCheckEd25519PublicKey(t *testing.T) {
	_, pub, err := crypto.Ed25519{}.GenerateKeyPair()
	require.NoError(t, err)
	require.NoError(t, crypto.CheckEd25519PublicKey(pub))

	var zero, identity, orderTwo domain.Ed25519Public
	identity[0] = 1
	orderTwo[0] = 0xec
	for i := 1; i < 31; i++ {
		orderTwo[i] = 0xff
	}
	orderTwo[31] = 0x7f
	for name, k := range map[string]domain.Ed25519Public{
		"zero":      zero,
		"identity":  identity,
		"order two": orderTwo,
	} {
		assert.ErrorIs(t, crypto.CheckEd25519PublicKey(k), crypto.ErrWeakSigningKey, name)
	}
}

func TestEd25519FromSeed_MatchesGenerated(t *testing.T) {
	priv, pub, err := crypto.Ed25519{}.GenerateKeyPair()
	require.NoError(t, err)

	gotPriv, gotPub := crypto.Ed25519FromSeed(priv.Seed())
	assert.Equal(t, priv, gotPriv)
	assert.Equal(t, pub, gotPub)
}

func TestChaCha20Poly1305_BlobLayout(t *testing.T) {
	var a crypto.ChaCha20Poly1305
	key := domain.SymmetricKey{7}
	pt := []byte("attack at dawn")

	blob, err := a.Seal(key, pt)
	require.NoError(t, err)
	require.Len(t, blob, len(pt)+crypto.SealOverhead)

	again, err := a.Seal(key, pt)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(blob[:12], again[:12]), "nonce reused")

	got, err := a.Open(key, blob)
	require.NoError(t, err)
	assert.Equal(t, pt, got)
}

func TestChaCha20Poly1305_OpenFailures(t *testing.T) {
	var a crypto.ChaCha20Poly1305
	key := domain.SymmetricKey{7}
	blob, err := a.Seal(key, []byte("x"))
	require.NoError(t, err)

	_, err = a.Open(domain.SymmetricKey{8}, blob)
	require.ErrorIs(t, err, crypto.ErrOpenFailed)

	_, err = a.Open(key, blob[:crypto.SealOverhead-1])
	require.ErrorIs(t, err, crypto.ErrCiphertextTooShort)

	blob[len(blob)-1] ^= 1
	_, err = a.Open(key, blob)
	require.ErrorIs(t, err, crypto.ErrOpenFailed)
}

// RFC 5869 appendix A.1.
func TestHKDFSHA256_RFC5869(t *testing.T) {
	ikm := bytes.Repeat([]byte{0x0b}, 22)
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")
	want := "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865"

	okm, err := crypto.HKDFSHA256{}.Derive(ikm, salt, info, 42)
	require.NoError(t, err)
	assert.Equal(t, want, hex.EncodeToString(okm))
}

func TestFingerprint_Shape(t *testing.T) {
	fp := crypto.Fingerprint([]byte("key"))
	assert.Len(t, fp.String(), 20)
	assert.Equal(t, fp, crypto.Fingerprint([]byte("key")))
	assert.NotEqual(t, fp, crypto.Fingerprint([]byte("kez")))
}

func TestFromB64_Length(t *testing.T) {
	b := []byte{1, 2, 3}
	got, err := crypto.FromB64(crypto.B64(b), 3)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = crypto.FromB64(crypto.B64(b), 4)
	require.Error(t, err)
	_, err = crypto.FromB64("!!", 1)
	require.Error(t, err)
}
