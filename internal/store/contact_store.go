package store

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
)

// serializedCard is the YAML layout of a contact card. The fingerprint is
// redundant and checked on load, so a card that was hand-edited or truncated
// is caught before it is used.
type serializedCard struct {
	Name        string `yaml:"name"`
	IdentityKey string `yaml:"identity_key"`
	SigningKey  string `yaml:"signing_key"`
	Fingerprint string `yaml:"fingerprint"`
}

// ContactFileStore reads and writes contact cards at caller-chosen paths.
type ContactFileStore struct{}

// NewContactFileStore returns a ContactFileStore.
func NewContactFileStore() *ContactFileStore { return &ContactFileStore{} }

// SaveContact writes card to path as YAML.
func (ContactFileStore) SaveContact(path string, card domain.ContactCard) error {
	b, err := MarshalContact(card)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o644)
}

// LoadContact reads a card written by SaveContact.
func (ContactFileStore) LoadContact(path string) (domain.ContactCard, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.ContactCard{}, err
	}
	return UnmarshalContact(b)
}

// MarshalContact encodes card as YAML.
func MarshalContact(card domain.ContactCard) ([]byte, error) {
	return yaml.Marshal(serializedCard{
		Name:        card.Name.String(),
		IdentityKey: crypto.B64(card.IdentityKey.Slice()),
		SigningKey:  crypto.B64(card.SigningKey.Slice()),
		Fingerprint: crypto.Fingerprint(card.IdentityKey.Slice()).String(),
	})
}

// UnmarshalContact decodes a YAML card. Every malformed field is reported,
// each wrapping domain.ErrDecodingFailure; an all-zero identity key or a
// small-order signing key wraps domain.ErrInvalidKeyData.
func UnmarshalContact(b []byte) (domain.ContactCard, error) {
	var sc serializedCard
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return domain.ContactCard{}, fmt.Errorf("%w: contact card: %v", domain.ErrDecodingFailure, err)
	}

	var (
		card domain.ContactCard
		errs error
	)
	card.Name = domain.ContactName(sc.Name)

	xk, err := crypto.FromB64(sc.IdentityKey, domain.KeySize)
	switch {
	case err != nil:
		errs = multierr.Append(errs, fmt.Errorf("%w: identity_key: %v", domain.ErrDecodingFailure, err))
	default:
		copy(card.IdentityKey[:], xk)
		if card.IdentityKey.IsZero() {
			errs = multierr.Append(errs, fmt.Errorf("%w: identity_key: all-zero point", domain.ErrInvalidKeyData))
		} else if sc.Fingerprint != "" && sc.Fingerprint != crypto.Fingerprint(xk).String() {
			errs = multierr.Append(errs, fmt.Errorf("%w: fingerprint does not match identity_key", domain.ErrDecodingFailure))
		}
	}

	ek, err := crypto.FromB64(sc.SigningKey, domain.KeySize)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: signing_key: %v", domain.ErrDecodingFailure, err))
	} else {
		copy(card.SigningKey[:], ek)
		if err := crypto.CheckEd25519PublicKey(card.SigningKey); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: signing_key: %v", domain.ErrInvalidKeyData, err))
		}
	}

	if errs != nil {
		return domain.ContactCard{}, errs
	}
	return card, nil
}

var _ domain.ContactStore = ContactFileStore{}
