package session_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/session"
)

type party struct {
	id  keys.PrivateKey
	sig keys.SigningPrivateKey
}

func newParty(t *testing.T) party {
	t.Helper()
	id, err := keys.GeneratePrivateKey()
	require.NoError(t, err)
	sig, err := keys.GenerateSigningKey()
	require.NoError(t, err)
	return party{id: id, sig: sig}
}

func forwardPair(t *testing.T, opts ...session.Option) (send, recv *session.Session) {
	t.Helper()
	a, b := newParty(t), newParty(t)
	send, err := session.NewForward(a.id, b.id.PublicKey(), a.sig, opts...)
	require.NoError(t, err)
	recvOpts := append([]session.Option{session.WithPeerSigningKey(a.sig.PublicKey())}, opts...)
	recv, err = session.NewForward(b.id, a.id.PublicKey(), b.sig, recvOpts...)
	require.NoError(t, err)
	return send, recv
}

func TestZeroSession_IsInvalid(t *testing.T) {
	var s session.Session
	assert.Equal(t, domain.ModeNone, s.Mode())

	_, err := s.Encrypt([]byte("x"))
	require.Equal(t, domain.ErrInvalidSessionConfiguration, err)
	_, err = s.Decrypt(session.SessionMessage{Ciphertext: []byte("x")})
	require.Equal(t, domain.ErrInvalidSessionConfiguration, err)

	var nilSession *session.Session
	_, err = nilSession.Encrypt([]byte("x"))
	require.Equal(t, domain.ErrInvalidSessionConfiguration, err)
}

func TestConstructors_RejectUnsetKeys(t *testing.T) {
	a, b := newParty(t), newParty(t)

	_, err := session.NewStatic(keys.PrivateKey{}, b.id.PublicKey())
	require.ErrorIs(t, err, domain.ErrInvalidKeyData)
	_, err = session.NewStatic(a.id, keys.PublicKey{})
	require.ErrorIs(t, err, domain.ErrInvalidKeyData)
	_, err = session.NewForward(a.id, b.id.PublicKey(), keys.SigningPrivateKey{})
	require.ErrorIs(t, err, domain.ErrInvalidSessionConfiguration)
}

func TestModes(t *testing.T) {
	a, b := newParty(t), newParty(t)
	st, err := session.NewStatic(a.id, b.id.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSession, st.Mode())

	fw, err := session.NewForward(a.id, b.id.PublicKey(), a.sig)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeForward, fw.Mode())

	msg, err := st.Encrypt([]byte("x"))
	require.NoError(t, err)
	assert.IsType(t, session.SessionMessage{}, msg)

	msg, err = fw.Encrypt([]byte("x"))
	require.NoError(t, err)
	assert.IsType(t, session.ForwardMessage{}, msg)
}

func TestDecrypt_ForwardWithoutPeerSigningKey(t *testing.T) {
	a, b := newParty(t), newParty(t)
	send, err := session.NewForward(a.id, b.id.PublicKey(), a.sig)
	require.NoError(t, err)
	recv, err := session.NewForward(b.id, a.id.PublicKey(), b.sig)
	require.NoError(t, err)

	msg, err := send.Encrypt([]byte("x"))
	require.NoError(t, err)
	_, err = recv.Decrypt(msg)
	require.Equal(t, domain.ErrMissingSigningPublicKey, err)
}

func TestNewForward_SmallOrderPeerSigningKeyRejected(t *testing.T) {
	a, b := newParty(t), newParty(t)
	var weak domain.Ed25519Public
	weak[0] = 1

	_, err := session.NewForward(b.id, a.id.PublicKey(), b.sig,
		session.WithPeerSigningKey(keys.NewSigningPublicKey(weak)))
	require.ErrorIs(t, err, domain.ErrInvalidKeyData)
}

func TestDecrypt_ZeroPeerSigningKeyCountsAsMissing(t *testing.T) {
	a, b := newParty(t), newParty(t)
	recv, err := session.NewForward(b.id, a.id.PublicKey(), b.sig,
		session.WithPeerSigningKey(keys.SigningPublicKey{}))
	require.NoError(t, err)

	eph, err := keys.GeneratePrivateKey()
	require.NoError(t, err)
	forged := make([]byte, domain.SignatureSize)
	forged[0] = 1
	_, err = recv.Decrypt(session.ForwardMessage{
		Ciphertext:         []byte("forged by eve"),
		EphemeralPublicKey: eph.PublicKey(),
		Signature:          forged,
	})
	require.Equal(t, domain.ErrMissingSigningPublicKey, err)
}

func TestDecrypt_UnknownVariant(t *testing.T) {
	a, b := newParty(t), newParty(t)
	st, err := session.NewStatic(a.id, b.id.PublicKey())
	require.NoError(t, err)

	_, err = st.Decrypt(nil)
	require.Equal(t, domain.ErrInvalidSessionConfiguration, err)
}

func TestAdditionalSecret_BothSidesMustAgree(t *testing.T) {
	send, recv := forwardPair(t, session.WithAdditionalSecret([]byte("pepper")))
	msg, err := send.Encrypt([]byte("x"))
	require.NoError(t, err)
	pt, err := recv.Decrypt(msg)
	require.NoError(t, err)
	assert.Equal(t, "x", string(pt))

	a, b := newParty(t), newParty(t)
	s1, err := session.NewStatic(a.id, b.id.PublicKey(), session.WithAdditionalSecret([]byte("pepper")))
	require.NoError(t, err)
	s2, err := session.NewStatic(b.id, a.id.PublicKey(), session.WithAdditionalSecret([]byte("salt")))
	require.NoError(t, err)
	m, err := s1.Encrypt([]byte("x"))
	require.NoError(t, err)
	_, err = s2.Decrypt(m)
	require.Equal(t, domain.ErrDecryptionFailed, err)
}

func TestAdditionalKey_LastOptionWins(t *testing.T) {
	a, b := newParty(t), newParty(t)
	k := domain.SymmetricKey{9}

	s1, err := session.NewStatic(a.id, b.id.PublicKey(),
		session.WithAdditionalSecret([]byte("ignored")), session.WithAdditionalKey(k))
	require.NoError(t, err)
	s2, err := session.NewStatic(b.id, a.id.PublicKey(), session.WithAdditionalKey(k))
	require.NoError(t, err)

	m, err := s1.Encrypt([]byte("x"))
	require.NoError(t, err)
	pt, err := s2.Decrypt(m)
	require.NoError(t, err)
	assert.Equal(t, "x", string(pt))
}

func TestWithSuite_FillsMissingProviders(t *testing.T) {
	send, recv := forwardPair(t, session.WithSuite(domain.Suite{AEAD: crypto.ChaCha20Poly1305{}}))
	msg, err := send.Encrypt([]byte("x"))
	require.NoError(t, err)
	pt, err := recv.Decrypt(msg)
	require.NoError(t, err)
	assert.Equal(t, "x", string(pt))
}

func TestLogging_NoSecretsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	send, recv := forwardPair(t, session.WithLogger(logrus.NewEntry(logger)))
	msg, err := send.Encrypt([]byte("top secret plaintext"))
	require.NoError(t, err)
	_, err = recv.Decrypt(msg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "mode=forward")
	assert.Contains(t, out, "operation=encrypt")
	assert.NotContains(t, out, "top secret plaintext")
}
