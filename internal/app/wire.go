package app

import (
	"errors"
	"os"

	"x3dhkit/internal/domain"
	identitysvc "x3dhkit/internal/services/identity"
	messagesvc "x3dhkit/internal/services/message"
	"x3dhkit/internal/session"
	"x3dhkit/internal/store"
	"x3dhkit/internal/util/logging"
)

// Wire bundles the stores and services the CLI needs.
type Wire struct {
	IdentityStore domain.IdentityStore
	Contacts      domain.ContactStore
	Identity      domain.IdentityService
	Messages      domain.MessageService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("app: home directory not set")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		logging.SetLogger(cfg.Logger)
	}

	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home)
	contactStore := store.NewContactFileStore()

	// High-level services
	idSvc := identitysvc.New(identityStore)
	msgSvc := messagesvc.New(identityStore, session.WithLogger(logging.For("session")))

	return &Wire{
		IdentityStore: identityStore,
		Contacts:      contactStore,
		Identity:      idSvc,
		Messages:      msgSvc,
	}, nil
}
