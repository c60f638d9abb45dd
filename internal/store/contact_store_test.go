package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"x3dhkit/internal/crypto"
	"x3dhkit/internal/domain"
	"x3dhkit/internal/store"
)

func newCard(t *testing.T) domain.ContactCard {
	t.Helper()
	id := newIdentity(t)
	return domain.ContactCard{Name: "bob", IdentityKey: id.XPub, SigningKey: id.EdPub}
}

func TestContact_SaveLoad_OK(t *testing.T) {
	cs := store.NewContactFileStore()
	path := filepath.Join(t.TempDir(), "bob.yaml")
	card := newCard(t)

	require.NoError(t, cs.SaveContact(path, card))
	got, err := cs.LoadContact(path)
	require.NoError(t, err)
	assert.Equal(t, card, got)
}

func TestContact_YAMLCarriesFingerprint(t *testing.T) {
	card := newCard(t)
	b, err := store.MarshalContact(card)
	require.NoError(t, err)

	assert.Contains(t, string(b), "name: bob")
	assert.Contains(t, string(b), "fingerprint: "+crypto.Fingerprint(card.IdentityKey.Slice()).String())
}

func TestContact_Unmarshal_Rejects(t *testing.T) {
	card := newCard(t)
	good := "name: bob\n" +
		"identity_key: " + crypto.B64(card.IdentityKey.Slice()) + "\n" +
		"signing_key: " + crypto.B64(card.SigningKey.Slice()) + "\n"

	_, err := store.UnmarshalContact([]byte(good))
	require.NoError(t, err)

	cases := map[string]struct {
		yaml string
		want error
	}{
		"not yaml":        {yaml: "name: [", want: domain.ErrDecodingFailure},
		"missing keys":    {yaml: "name: bob\n", want: domain.ErrDecodingFailure},
		"short key":       {yaml: "name: bob\nidentity_key: AAAA\nsigning_key: AAAA\n", want: domain.ErrDecodingFailure},
		"bad fingerprint": {yaml: good + "fingerprint: 00\n", want: domain.ErrDecodingFailure},
		"zero identity": {
			yaml: "name: bob\nidentity_key: " + crypto.B64(make([]byte, 32)) +
				"\nsigning_key: " + crypto.B64(card.SigningKey.Slice()) + "\n",
			want: domain.ErrInvalidKeyData,
		},
		"zero signing": {
			yaml: "name: bob\nidentity_key: " + crypto.B64(card.IdentityKey.Slice()) +
				"\nsigning_key: " + crypto.B64(make([]byte, 32)) + "\n",
			want: domain.ErrInvalidKeyData,
		},
		"identity point signing": {
			yaml: "name: bob\nidentity_key: " + crypto.B64(card.IdentityKey.Slice()) +
				"\nsigning_key: " + crypto.B64(identityPoint()) + "\n",
			want: domain.ErrInvalidKeyData,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.UnmarshalContact([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestContact_Unmarshal_ReportsEveryField(t *testing.T) {
	_, err := store.UnmarshalContact([]byte("name: bob\nidentity_key: AAAA\nsigning_key: '!!'\n"))
	require.ErrorIs(t, err, domain.ErrDecodingFailure)
	assert.Len(t, multierr.Errors(err), 2)
}

// identityPoint is the canonical encoding of the Ed25519 neutral element.
func identityPoint() []byte {
	b := make([]byte, 32)
	b[0] = 1
	return b
}
