package interfaces

import domaintypes "x3dhkit/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
	ExportContact(passphrase string, name domaintypes.ContactName) (domaintypes.ContactCard, error)
}

// MessageService encrypts messages to, and decrypts messages from, a contact.
type MessageService interface {
	Seal(
		passphrase string,
		to domaintypes.ContactCard,
		mode domaintypes.Mode,
		additionalSecret []byte,
		plaintext []byte,
	) (domaintypes.Envelope, error)
	Open(
		passphrase string,
		from domaintypes.ContactCard,
		additionalSecret []byte,
		envelope domaintypes.Envelope,
	) (domaintypes.DecryptedMessage, error)
}
