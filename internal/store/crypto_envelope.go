package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"x3dhkit/internal/util/memzero"
)

// keystoreFormatVersion is the newest sealed-blob layout this build reads.
const keystoreFormatVersion = 1

// ErrWrongPassphrase is returned when the keystore cannot be opened, either
// because the passphrase is wrong or because the file was modified.
var ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted identity")

// ErrUnsafeKeystoreParams is returned when a keystore asks for scrypt costs
// beyond what this build will spend on opening it.
var ErrUnsafeKeystoreParams = errors.New("store: keystore scrypt parameters out of range")

// sealedBlob is the on-disk JSON layout of a passphrase-sealed payload.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the cost parameters used for new keystores.
type scryptParams struct {
	N, R, P int
}

func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds accepted when opening. 128*N*r bytes at the caps is 1 GiB.
const (
	maxScryptN = 1 << 20
	maxScryptR = 8
	maxScryptP = 16
)

func (sp scryptParams) check() error {
	if sp.N <= 1 || sp.N&(sp.N-1) != 0 || sp.N > maxScryptN {
		return fmt.Errorf("%w: N=%d", ErrUnsafeKeystoreParams, sp.N)
	}
	if sp.R < 1 || sp.R > maxScryptR {
		return fmt.Errorf("%w: r=%d", ErrUnsafeKeystoreParams, sp.R)
	}
	if sp.P < 1 || sp.P > maxScryptP {
		return fmt.Errorf("%w: p=%d", ErrUnsafeKeystoreParams, sp.P)
	}
	return nil
}

// sealWithPassphrase derives a key from passphrase and a fresh salt, then
// seals raw. The salt doubles as associated data.
func sealWithPassphrase(passphrase string, raw []byte, sp scryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], sp.N, sp.R, sp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	// A fresh salt gives a fresh key, so the zero nonce is never reused.
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(sealedBlob{
		V:      keystoreFormatVersion,
		Salt:   salt[:],
		N:      sp.N,
		R:      sp.R,
		P:      sp.P,
		Cipher: ct,
	})
}

// openWithPassphrase reverses sealWithPassphrase.
func openWithPassphrase(passphrase string, b []byte) ([]byte, error) {
	var bl sealedBlob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("store: parse keystore: %w", err)
	}
	if bl.V < 1 || bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("store: unsupported keystore version %d", bl.V)
	}

	if err := (scryptParams{N: bl.N, R: bl.R, P: bl.P}).check(); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("store: keystore parameters: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
