package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/util/memzero"
)

// IdentityFilename is the keystore file inside the home directory.
const IdentityFilename = "identity.json.enc"

// ErrNoIdentity is returned by LoadIdentity when no keystore exists yet.
var ErrNoIdentity = errors.New("store: no identity, run init first")

// identityRecord is the plaintext sealed inside the keystore. Public halves
// are recomputed on load.
type identityRecord struct {
	X25519Private []byte `json:"x25519_private"`
	Ed25519Seed   []byte `json:"ed25519_seed"`
}

// IdentityFileStore keeps the local identity in one passphrase-sealed file.
type IdentityFileStore struct {
	dir    string
	params scryptParams
	mu     sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir, params: defaultScryptParams()}
}

// Path returns the keystore location.
func (s *IdentityFileStore) Path() string { return filepath.Join(s.dir, IdentityFilename) }

// SaveIdentity seals id under passphrase and replaces the keystore.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(identityRecord{
		X25519Private: id.XPriv.Slice(),
		Ed25519Seed:   id.EdPriv.Seed(),
	})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	sealed, err := sealWithPassphrase(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), sealed, 0o600)
}

// LoadIdentity opens the keystore with passphrase.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.Identity{}, err
	}
	if b == nil {
		return domain.Identity{}, ErrNoIdentity
	}
	pt, err := openWithPassphrase(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(pt)

	var rec identityRecord
	if err := json.Unmarshal(pt, &rec); err != nil {
		return domain.Identity{}, fmt.Errorf("store: parse identity: %w", err)
	}
	defer memzero.Zero(rec.X25519Private)
	defer memzero.Zero(rec.Ed25519Seed)

	return identityFromRecord(rec)
}

func identityFromRecord(rec identityRecord) (domain.Identity, error) {
	if len(rec.X25519Private) != domain.KeySize || len(rec.Ed25519Seed) != domain.KeySize {
		return domain.Identity{}, fmt.Errorf("store: identity: %w", domain.ErrInvalidKeyData)
	}
	var id domain.Identity
	copy(id.XPriv[:], rec.X25519Private)
	xpub, err := crypto.X25519{}.PublicFromPrivate(id.XPriv)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("store: identity: %w: %v", domain.ErrInvalidKeyData, err)
	}
	id.XPub = xpub
	id.EdPriv, id.EdPub = crypto.Ed25519FromSeed(rec.Ed25519Seed)
	return id, nil
}

var _ domain.IdentityStore = (*IdentityFileStore)(nil)
