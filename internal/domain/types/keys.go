package types

// KeySize is the raw length of every X25519 key, Ed25519 public key, Ed25519
// seed and derived symmetric key handled by x3dhkit.
const KeySize = 32

// SignatureSize is the length of an Ed25519 signature.
const SignatureSize = 64

// X25519Public is a Curve25519 public key.
type X25519Public [KeySize]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// IsZero reports whether p is the all-zero point.
func (p X25519Public) IsZero() bool { return p == X25519Public{} }

// X25519Private is a clamped Curve25519 private key.
type X25519Private [KeySize]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [KeySize]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key (ed25519.PrivateKey layout:
// seed followed by public key).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Seed returns the 32-byte seed half of the key.
func (k Ed25519Private) Seed() []byte { return k[:KeySize] }

// SymmetricKey is a 32-byte key derived for one AEAD layer.
type SymmetricKey [KeySize]byte

// Slice returns the key as a []byte.
func (k SymmetricKey) Slice() []byte { return k[:] }
