// Package crypto provides the default primitive providers used by x3dhkit.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (X25519)
//   - Ed25519 key generation, signing and verification (Ed25519)
//   - ChaCha20-Poly1305 sealing into a combined nonce||ciphertext||tag blob
//     (ChaCha20Poly1305)
//   - HKDF-SHA256 expansion (HKDFSHA256)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Every provider is a stateless value; DefaultSuite bundles them into a
// domain.Suite. Keys are the fixed-size array types defined in
// internal/domain to avoid accidental reallocations.
package crypto
