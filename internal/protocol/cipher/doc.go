// Package cipher implements the two session ciphers and the layered message
// encryptor built on top of them.
//
// # Static
//
// Static performs one X25519 agreement between two long-term identity keys
// at construction, derives a single symmetric key and uses it for every
// message. It is the low-overhead mode: a later compromise of either private
// key exposes every message ever sent under that pairing.
//
// # Forward
//
// Forward generates a fresh ephemeral key pair per message:
//  1. Agree ephemeral private x peer identity public, derive a one-time key.
//  2. Seal the message under that key.
//  3. Sign the ephemeral public key with the sender's Ed25519 key.
//  4. Wipe the ephemeral private key and the one-time key before returning.
//
// The receiver verifies the signature before the ephemeral key touches any
// agreement, so an active attacker cannot substitute their own ephemeral key.
//
// # Layered
//
// Layered wraps any ByteCipher with an optional outer AEAD layer under an
// independent key. Without that key it is a pass-through. Forward takes the
// same OuterLayer through WithOuterLayer and opens it only after the
// signature check.
//
// All types are immutable after construction and safe for concurrent use.
package cipher
