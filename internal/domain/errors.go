package domain

import "errors"

// Error kinds surfaced by every layer of x3dhkit. Callers match them with
// errors.Is; the decrypt path returns them unwrapped so that a failure carries
// no detail beyond its kind.
var (
	// ErrInvalidKeyData means raw bytes do not decode to a key of the expected
	// length or curve.
	ErrInvalidKeyData = errors.New("x3dh: invalid key data")

	// ErrEncodingFailure means sealing or signing failed inside a provider.
	ErrEncodingFailure = errors.New("x3dh: encoding failed")

	// ErrDecryptionFailed covers a wrong key, a corrupted blob and truncated
	// input alike.
	ErrDecryptionFailed = errors.New("x3dh: decryption failed")

	// ErrInvalidSignature means the ephemeral key signature did not verify.
	// The message must be dropped.
	ErrInvalidSignature = errors.New("x3dh: invalid signature")

	// ErrInvalidSessionConfiguration means a session/message mode mismatch or
	// a session without a configured cipher.
	ErrInvalidSessionConfiguration = errors.New("x3dh: invalid session configuration")

	// ErrMissingSigningPublicKey means a forward message arrived at a session
	// that has no peer signing key to verify it with.
	ErrMissingSigningPublicKey = errors.New("x3dh: missing signing public key")

	// ErrKeyAgreementFailed means Diffie-Hellman produced a degenerate result.
	ErrKeyAgreementFailed = errors.New("x3dh: key agreement failed")

	// ErrDecodingFailure means a wire envelope or contact card is malformed.
	ErrDecodingFailure = errors.New("x3dh: decoding failed")
)
