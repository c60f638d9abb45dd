package cipher

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/protocol/aead"
	"x3dhkit/internal/protocol/kdf"
	"x3dhkit/internal/util/logging"
	"x3dhkit/internal/util/memzero"
)

// ForwardResult is the wire triple produced for one forward-mode message.
type ForwardResult struct {
	Ciphertext         []byte
	EphemeralPublicKey keys.PublicKey
	Signature          []byte
}

// Forward derives a one-time key per message from a fresh ephemeral key and
// the peer's static identity key.
type Forward struct {
	suite    domain.Suite
	identity keys.PrivateKey
	peer     keys.PublicKey
	outer    OuterLayer
	log      *logrus.Entry
}

// NewForward captures the local identity private key and the peer's
// identity public key.
func NewForward(suite domain.Suite, identity keys.PrivateKey, peer keys.PublicKey) *Forward {
	return &Forward{
		suite:    suite,
		identity: identity,
		peer:     peer,
		log:      logging.For("cipher.forward"),
	}
}

// WithOuterLayer returns a copy of c whose ciphertext field is additionally
// sealed by l. The signature check on decrypt still runs before l is opened.
func (c *Forward) WithOuterLayer(l OuterLayer) *Forward {
	cp := *c
	cp.outer = l
	return &cp
}

// Encrypt seals message under a one-time key and signs the ephemeral public
// key with signingKey. Any provider failure is domain.ErrEncodingFailure.
func (c *Forward) Encrypt(message []byte, signingKey keys.SigningPrivateKey) (ForwardResult, error) {
	ephPriv, ephPub, err := c.suite.KeyAgreement.GenerateKeyPair()
	if err != nil {
		return ForwardResult{}, fmt.Errorf("%w: ephemeral key: %w", domain.ErrEncodingFailure, err)
	}
	// The ephemeral private key never outlives this call.
	defer memzero.Zero(ephPriv[:])

	secret, err := c.suite.KeyAgreement.Agree(ephPriv, c.peer.Raw())
	if err != nil {
		return ForwardResult{}, fmt.Errorf("%w: ephemeral agreement: %w", domain.ErrEncodingFailure, err)
	}
	key := kdf.Derive(c.suite.HKDF, secret)
	memzero.Zero32(&secret)
	defer memzero.Zero(key[:])

	ciphertext, err := aead.Seal(c.suite.AEAD, message, key)
	if err != nil {
		return ForwardResult{}, err
	}
	if ciphertext, err = c.outer.Wrap(ciphertext); err != nil {
		return ForwardResult{}, err
	}

	signature, err := c.suite.Signature.Sign(signingKey.Raw(), ephPub.Slice())
	if err != nil {
		return ForwardResult{}, fmt.Errorf("%w: sign ephemeral key: %w", domain.ErrEncodingFailure, err)
	}

	ephemeral := keys.NewPublicKey(ephPub)
	c.log.WithFields(logrus.Fields{
		"operation":    "encrypt",
		"ephemeral_fp": ephemeral.Fingerprint(),
		"peer_fp":      c.peer.Fingerprint(),
	}).Debug("forward message sealed")

	return ForwardResult{
		Ciphertext:         ciphertext,
		EphemeralPublicKey: ephemeral,
		Signature:          signature,
	}, nil
}

// Decrypt authenticates senderEphemeral against senderSigning, then derives
// the one-time key and opens ciphertext. The signature check always runs
// first; an unauthenticated ephemeral key is never used for agreement. A
// small-order senderSigning key fails the check outright.
func (c *Forward) Decrypt(
	ciphertext []byte,
	senderEphemeral keys.PublicKey,
	signature []byte,
	senderSigning keys.SigningPublicKey,
) ([]byte, error) {
	ephPub := senderEphemeral.Raw()
	if senderSigning.Validate() != nil {
		c.log.WithFields(logrus.Fields{
			"operation": "decrypt",
			"signer_fp": senderSigning.Fingerprint(),
		}).Warn("weak sender signing key refused")
		return nil, domain.ErrInvalidSignature
	}
	if !c.suite.Signature.Verify(senderSigning.Raw(), ephPub.Slice(), signature) {
		c.log.WithFields(logrus.Fields{
			"operation":    "decrypt",
			"ephemeral_fp": senderEphemeral.Fingerprint(),
			"signer_fp":    senderSigning.Fingerprint(),
		}).Warn("ephemeral key signature rejected")
		return nil, domain.ErrInvalidSignature
	}

	inner, err := c.outer.Unwrap(ciphertext)
	if err != nil {
		return nil, err
	}

	secret, err := c.suite.KeyAgreement.Agree(c.identity.Raw(), ephPub)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	key := kdf.Derive(c.suite.HKDF, secret)
	memzero.Zero32(&secret)
	defer memzero.Zero(key[:])

	return aead.Open(c.suite.AEAD, inner, key)
}
