package domain

import (
	interfaces "x3dhkit/internal/domain/interfaces"
	types "x3dhkit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ContactName      = types.ContactName
	Fingerprint      = types.Fingerprint
	Mode             = types.Mode
	Identity         = types.Identity
	ContactCard      = types.ContactCard
	Envelope         = types.Envelope
	DecryptedMessage = types.DecryptedMessage
	X25519Public     = types.X25519Public
	X25519Private    = types.X25519Private
	Ed25519Public    = types.Ed25519Public
	Ed25519Private   = types.Ed25519Private
	SymmetricKey     = types.SymmetricKey
)

// Mode values re-exported for callers that only import domain.
const (
	ModeNone    = types.ModeNone
	ModeSession = types.ModeSession
	ModeForward = types.ModeForward
)

// Sizes re-exported from types.
const (
	KeySize       = types.KeySize
	SignatureSize = types.SignatureSize
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyAgreementProvider = interfaces.KeyAgreementProvider
	SignatureProvider    = interfaces.SignatureProvider
	AEADProvider         = interfaces.AEADProvider
	HKDFProvider         = interfaces.HKDFProvider
	Suite                = interfaces.Suite
	IdentityStore        = interfaces.IdentityStore
	ContactStore         = interfaces.ContactStore
	IdentityService      = interfaces.IdentityService
	MessageService       = interfaces.MessageService
)

// ParseMode maps a wire name to a Mode.
func ParseMode(s string) Mode { return types.ParseMode(s) }
