package message

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/session"
	"x3dhkit/internal/util/logging"
	"x3dhkit/internal/wire"
)

// Service seals and opens envelopes between the local identity and a contact.
type Service struct {
	idStore domain.IdentityStore
	opts    []session.Option
}

// New returns a message service reading the identity from idStore. opts are
// applied to every session it builds.
func New(idStore domain.IdentityStore, opts ...session.Option) *Service {
	return &Service{idStore: idStore, opts: opts}
}

// Seal encrypts plaintext to the contact in the given mode. A non-empty
// additionalSecret adds an outer layer both sides must agree on.
func (s *Service) Seal(
	passphrase string,
	to domain.ContactCard,
	mode domain.Mode,
	additionalSecret []byte,
	plaintext []byte,
) (domain.Envelope, error) {
	sess, err := s.sessionFor(passphrase, to, mode, additionalSecret)
	if err != nil {
		return domain.Envelope{}, err
	}
	msg, err := sess.Encrypt(plaintext)
	if err != nil {
		return domain.Envelope{}, err
	}
	logging.For("message").WithFields(logrus.Fields{
		"operation": "seal",
		"mode":      mode.String(),
		"to":        to.Name.String(),
	}).Debug("envelope sealed")
	return wire.ToEnvelope(msg)
}

// Open validates env, then decrypts it with a session matching its mode.
func (s *Service) Open(
	passphrase string,
	from domain.ContactCard,
	additionalSecret []byte,
	env domain.Envelope,
) (domain.DecryptedMessage, error) {
	msg, err := wire.FromEnvelope(env)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	sess, err := s.sessionFor(passphrase, from, msg.Mode(), additionalSecret)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	pt, err := sess.Decrypt(msg)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	return domain.DecryptedMessage{From: from.Name, Mode: msg.Mode(), Plaintext: pt}, nil
}

func (s *Service) sessionFor(
	passphrase string,
	peer domain.ContactCard,
	mode domain.Mode,
	additionalSecret []byte,
) (*session.Session, error) {
	id, err := s.idStore.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	my := keys.NewPrivateKey(id.XPriv, id.XPub)
	their, err := keys.PublicKeyFromBytes(peer.IdentityKey.Slice())
	if err != nil {
		return nil, err
	}

	opts := append([]session.Option(nil), s.opts...)
	if len(additionalSecret) > 0 {
		opts = append(opts, session.WithAdditionalSecret(additionalSecret))
	}

	switch mode {
	case domain.ModeSession:
		return session.NewStatic(my, their, opts...)
	case domain.ModeForward:
		opts = append(opts, session.WithPeerSigningKey(keys.NewSigningPublicKey(peer.SigningKey)))
		return session.NewForward(my, their, keys.NewSigningPrivateKey(id.EdPriv), opts...)
	default:
		return nil, fmt.Errorf("%w: mode %s", domain.ErrInvalidSessionConfiguration, mode)
	}
}

var _ domain.MessageService = (*Service)(nil)
