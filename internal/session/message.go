package session

import (
	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
)

// EncryptedMessage is either a SessionMessage or a ForwardMessage. The set is
// closed; switch on the concrete type to read the fields.
type EncryptedMessage interface {
	Mode() domain.Mode
	encryptedMessage()
}

// SessionMessage is produced by a static-mode session.
type SessionMessage struct {
	Ciphertext []byte
}

// ForwardMessage is produced by a forward-mode session. The three fields
// travel together and in this order.
type ForwardMessage struct {
	Ciphertext         []byte
	EphemeralPublicKey keys.PublicKey
	Signature          []byte
}

// Mode returns domain.ModeSession.
func (SessionMessage) Mode() domain.Mode { return domain.ModeSession }

// Mode returns domain.ModeForward.
func (ForwardMessage) Mode() domain.Mode { return domain.ModeForward }

func (SessionMessage) encryptedMessage() {}
func (ForwardMessage) encryptedMessage() {}
