package session

import (
	"github.com/sirupsen/logrus"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/protocol/cipher"
)

// config is implemented by staticConfig and forwardConfig only.
type config interface {
	mode() domain.Mode
}

type staticConfig struct {
	cipher *cipher.Layered
}

type forwardConfig struct {
	cipher      *cipher.Forward
	signing     keys.SigningPrivateKey
	peerSigning *keys.SigningPublicKey
}

func (staticConfig) mode() domain.Mode  { return domain.ModeSession }
func (forwardConfig) mode() domain.Mode { return domain.ModeForward }

// Session encrypts to and decrypts from one peer. It is immutable after
// construction and safe for concurrent use.
type Session struct {
	cfg config
	log *logrus.Entry
}

// NewStatic builds a static-mode session between my identity key and the
// peer's identity public key.
func NewStatic(my keys.PrivateKey, their keys.PublicKey, opts ...Option) (*Session, error) {
	if my.IsZero() || their.IsZero() {
		return nil, domain.ErrInvalidKeyData
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	static, err := cipher.NewStatic(o.suite, my, their)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg: staticConfig{cipher: cipher.NewLayered(static, o.suite.AEAD, o.outerKey())},
		log: o.log.WithField("mode", domain.ModeSession.String()),
	}, nil
}

// NewForward builds a forward-mode session. signing signs the ephemeral key
// of every outgoing message; the peer's signing key, set with
// WithPeerSigningKey, verifies incoming ones. An all-zero peer key counts as
// absent; any other small-order key is domain.ErrInvalidKeyData.
func NewForward(my keys.PrivateKey, their keys.PublicKey, signing keys.SigningPrivateKey, opts ...Option) (*Session, error) {
	if my.IsZero() || their.IsZero() {
		return nil, domain.ErrInvalidKeyData
	}
	if signing.IsZero() {
		return nil, domain.ErrInvalidSessionConfiguration
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.peerSigning != nil {
		if o.peerSigning.IsZero() {
			o.peerSigning = nil
		} else if err := o.peerSigning.Validate(); err != nil {
			return nil, err
		}
	}
	fwd := cipher.NewForward(o.suite, my, their).
		WithOuterLayer(cipher.NewOuterLayer(o.suite.AEAD, o.outerKey()))
	return &Session{
		cfg: forwardConfig{
			cipher:      fwd,
			signing:     signing,
			peerSigning: o.peerSigning,
		},
		log: o.log.WithField("mode", domain.ModeForward.String()),
	}, nil
}

// Mode reports how the session was built. The zero Session reports
// domain.ModeNone.
func (s *Session) Mode() domain.Mode {
	if s == nil || s.cfg == nil {
		return domain.ModeNone
	}
	return s.cfg.mode()
}

// Encrypt seals message in the variant matching the session's mode.
func (s *Session) Encrypt(message []byte) (EncryptedMessage, error) {
	if s == nil {
		return nil, domain.ErrInvalidSessionConfiguration
	}
	switch cfg := s.cfg.(type) {
	case staticConfig:
		ct, err := cfg.cipher.Encrypt(message)
		if err != nil {
			return nil, err
		}
		s.log.WithField("operation", "encrypt").Debug("message sealed")
		return SessionMessage{Ciphertext: ct}, nil

	case forwardConfig:
		res, err := cfg.cipher.Encrypt(message, cfg.signing)
		if err != nil {
			return nil, err
		}
		s.log.WithField("operation", "encrypt").Debug("message sealed")
		return ForwardMessage{
			Ciphertext:         res.Ciphertext,
			EphemeralPublicKey: res.EphemeralPublicKey,
			Signature:          res.Signature,
		}, nil

	default:
		return nil, domain.ErrInvalidSessionConfiguration
	}
}

// Decrypt opens msg. The message variant must match the session's mode.
func (s *Session) Decrypt(msg EncryptedMessage) ([]byte, error) {
	if s == nil || s.cfg == nil {
		return nil, domain.ErrInvalidSessionConfiguration
	}
	switch m := msg.(type) {
	case SessionMessage:
		cfg, ok := s.cfg.(staticConfig)
		if !ok {
			return nil, domain.ErrInvalidSessionConfiguration
		}
		pt, err := cfg.cipher.Decrypt(m.Ciphertext)
		if err != nil {
			return nil, err
		}
		s.log.WithField("operation", "decrypt").Debug("message opened")
		return pt, nil

	case ForwardMessage:
		cfg, ok := s.cfg.(forwardConfig)
		if !ok {
			return nil, domain.ErrInvalidSessionConfiguration
		}
		if cfg.peerSigning == nil {
			return nil, domain.ErrMissingSigningPublicKey
		}
		pt, err := cfg.cipher.Decrypt(m.Ciphertext, m.EphemeralPublicKey, m.Signature, *cfg.peerSigning)
		if err != nil {
			return nil, err
		}
		s.log.WithField("operation", "decrypt").Debug("message opened")
		return pt, nil

	default:
		return nil, domain.ErrInvalidSessionConfiguration
	}
}
