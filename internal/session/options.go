package session

import (
	"github.com/sirupsen/logrus"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/protocol/kdf"
	"x3dhkit/internal/util/logging"
)

// Option configures a Session at construction.
type Option func(*options)

type options struct {
	suite            domain.Suite
	additionalKey    *domain.SymmetricKey
	additionalSecret []byte
	peerSigning      *keys.SigningPublicKey
	log              *logrus.Entry
}

func defaultOptions() options {
	return options{
		suite: crypto.DefaultSuite(),
		log:   logging.For("session"),
	}
}

// WithAdditionalKey adds an outer encryption layer keyed by k. Both peers must
// supply the same key.
func WithAdditionalKey(k domain.SymmetricKey) Option {
	return func(o *options) {
		o.additionalKey = &k
		o.additionalSecret = nil
	}
}

// WithAdditionalSecret is WithAdditionalKey with the key derived from an
// arbitrary shared secret.
func WithAdditionalSecret(secret []byte) Option {
	return func(o *options) {
		o.additionalSecret = append([]byte(nil), secret...)
		o.additionalKey = nil
	}
}

// WithPeerSigningKey sets the key used to verify the peer's ephemeral keys.
// Forward-mode sessions cannot decrypt without it.
func WithPeerSigningKey(pub keys.SigningPublicKey) Option {
	return func(o *options) { o.peerSigning = &pub }
}

// WithSuite replaces the primitive providers. Any field left nil falls back
// to the default.
func WithSuite(s domain.Suite) Option {
	return func(o *options) {
		def := crypto.DefaultSuite()
		if s.KeyAgreement == nil {
			s.KeyAgreement = def.KeyAgreement
		}
		if s.Signature == nil {
			s.Signature = def.Signature
		}
		if s.AEAD == nil {
			s.AEAD = def.AEAD
		}
		if s.HKDF == nil {
			s.HKDF = def.HKDF
		}
		o.suite = s
	}
}

// WithLogger sets the entry the session logs to.
func WithLogger(e *logrus.Entry) Option {
	return func(o *options) {
		if e != nil {
			o.log = e
		}
	}
}

func (o *options) outerKey() *domain.SymmetricKey {
	if o.additionalKey != nil {
		return o.additionalKey
	}
	if o.additionalSecret != nil {
		k := kdf.DeriveFromBytes(o.suite.HKDF, o.additionalSecret)
		return &k
	}
	return nil
}
