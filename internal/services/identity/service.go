package identity

import (
	"fmt"
	"unicode"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/logging"
)

// minPassphraseLength is the shortest passphrase GenerateIdentity accepts.
const minPassphraseLength = 12

// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is too weak (must be at least %d characters and include upper, lower, "+
		"number, and symbol)",
	minPassphraseLength,
)

// Service creates and reads the local identity through an IdentityStore.
//
// An identity is two independent key pairs:
//   - X25519, agreed with the peer's identity key in both session modes.
//   - Ed25519, signing the ephemeral key of every forward-mode message.
type Service struct {
	store domain.IdentityStore
	suite domain.Suite
}

// New returns an identity service backed by s, generating keys with the
// default suite.
func New(s domain.IdentityStore) *Service {
	return &Service{store: s, suite: crypto.DefaultSuite()}
}

// GenerateIdentity creates and stores a fresh identity sealed under
// passphrase, returning it with the fingerprint of its X25519 public key.
func (s *Service) GenerateIdentity(passphrase string) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	xpriv, xpub, err := s.suite.KeyAgreement.GenerateKeyPair()
	if err != nil {
		return domain.Identity{}, "", err
	}
	edpriv, edpub, err := s.suite.Signature.GenerateKeyPair()
	if err != nil {
		return domain.Identity{}, "", err
	}

	id := domain.Identity{XPub: xpub, XPriv: xpriv, EdPub: edpub, EdPriv: edpriv}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", err
	}

	fp := crypto.Fingerprint(id.XPub.Slice())
	logging.For("identity").WithField("identity_fp", fp).Debug("identity generated")
	return id, fp, nil
}

// LoadIdentity decrypts and returns the local identity.
func (s *Service) LoadIdentity(passphrase string) (domain.Identity, error) {
	return s.store.LoadIdentity(passphrase)
}

// FingerprintIdentity returns the fingerprint of the local X25519 public key.
func (s *Service) FingerprintIdentity(passphrase string) (domain.Fingerprint, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(id.XPub.Slice()), nil
}

// ExportContact returns the public half of the local identity, labelled name,
// for handing to a peer.
func (s *Service) ExportContact(passphrase string, name domain.ContactName) (domain.ContactCard, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return domain.ContactCard{}, err
	}
	return domain.ContactCard{Name: name, IdentityKey: id.XPub, SigningKey: id.EdPub}, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

var _ domain.IdentityService = (*Service)(nil)
