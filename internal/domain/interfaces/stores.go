package interfaces

import domaintypes "x3dhkit/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// ContactStore reads and writes public contact cards.
type ContactStore interface {
	SaveContact(path string, card domaintypes.ContactCard) error
	LoadContact(path string) (domaintypes.ContactCard, error)
}
