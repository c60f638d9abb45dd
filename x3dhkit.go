package x3dhkit

import (
	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/session"
)

type (
	PrivateKey        = keys.PrivateKey
	PublicKey         = keys.PublicKey
	SigningPrivateKey = keys.SigningPrivateKey
	SigningPublicKey  = keys.SigningPublicKey
	SymmetricKey      = domain.SymmetricKey
	Fingerprint       = domain.Fingerprint
	Mode              = domain.Mode

	Suite                = domain.Suite
	KeyAgreementProvider = domain.KeyAgreementProvider
	SignatureProvider    = domain.SignatureProvider
	AEADProvider         = domain.AEADProvider
	HKDFProvider         = domain.HKDFProvider

	Session          = session.Session
	Option           = session.Option
	EncryptedMessage = session.EncryptedMessage
	SessionMessage   = session.SessionMessage
	ForwardMessage   = session.ForwardMessage
)

const (
	ModeNone    = domain.ModeNone
	ModeSession = domain.ModeSession
	ModeForward = domain.ModeForward

	KeySize       = domain.KeySize
	SignatureSize = domain.SignatureSize
)

var (
	ErrInvalidKeyData              = domain.ErrInvalidKeyData
	ErrEncodingFailure             = domain.ErrEncodingFailure
	ErrDecryptionFailed            = domain.ErrDecryptionFailed
	ErrInvalidSignature            = domain.ErrInvalidSignature
	ErrInvalidSessionConfiguration = domain.ErrInvalidSessionConfiguration
	ErrMissingSigningPublicKey     = domain.ErrMissingSigningPublicKey
	ErrKeyAgreementFailed          = domain.ErrKeyAgreementFailed
	ErrDecodingFailure             = domain.ErrDecodingFailure
)

// GeneratePrivateKey returns a new X25519 identity key.
func GeneratePrivateKey() (PrivateKey, error) { return keys.GeneratePrivateKey() }

// PrivateKeyFromBytes rebuilds an X25519 private key from 32 raw bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) { return keys.PrivateKeyFromBytes(b) }

// PublicKeyFromBytes parses a 32-byte X25519 public key.
func PublicKeyFromBytes(b []byte) (PublicKey, error) { return keys.PublicKeyFromBytes(b) }

// GenerateSigningKey returns a new Ed25519 signing key.
func GenerateSigningKey() (SigningPrivateKey, error) { return keys.GenerateSigningKey() }

// SigningPrivateKeyFromBytes accepts a 32-byte seed or a 64-byte expanded key.
func SigningPrivateKeyFromBytes(b []byte) (SigningPrivateKey, error) {
	return keys.SigningPrivateKeyFromBytes(b)
}

// SigningPublicKeyFromBytes parses a 32-byte Ed25519 public key, refusing
// small-order points.
func SigningPublicKeyFromBytes(b []byte) (SigningPublicKey, error) {
	return keys.SigningPublicKeyFromBytes(b)
}

// GenerateSymmetricKey returns 32 random bytes for WithAdditionalKey.
func GenerateSymmetricKey() (SymmetricKey, error) { return keys.GenerateSymmetricKey() }

// SymmetricKeyFromBytes copies exactly 32 bytes into a SymmetricKey.
func SymmetricKeyFromBytes(b []byte) (SymmetricKey, error) { return keys.SymmetricKeyFromBytes(b) }

// DefaultSuite returns the X25519, Ed25519, ChaCha20-Poly1305 and
// HKDF-SHA256 providers every session uses unless WithSuite says otherwise.
func DefaultSuite() Suite { return crypto.DefaultSuite() }

// NewStaticSession builds a session whose key is derived once from my and
// their identity keys.
func NewStaticSession(my PrivateKey, their PublicKey, opts ...Option) (*Session, error) {
	return session.NewStatic(my, their, opts...)
}

// NewForwardSession builds a session that derives a fresh key per message.
// Pass WithPeerSigningKey to be able to decrypt.
func NewForwardSession(my PrivateKey, their PublicKey, signing SigningPrivateKey, opts ...Option) (*Session, error) {
	return session.NewForward(my, their, signing, opts...)
}

// Session options.
var (
	WithAdditionalKey    = session.WithAdditionalKey
	WithAdditionalSecret = session.WithAdditionalSecret
	WithPeerSigningKey   = session.WithPeerSigningKey
	WithSuite            = session.WithSuite
	WithLogger           = session.WithLogger
)
