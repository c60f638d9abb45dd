// Package wire converts encrypted messages to and from their JSON transport
// form. The mode tag and, for forward messages, the ciphertext, ephemeral key
// and signature triple are carried intact; anything else is rejected.
package wire

import (
	"encoding/json"
	"fmt"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/keys"
	"x3dhkit/internal/session"
)

// ToEnvelope flattens msg into its transport form.
func ToEnvelope(msg session.EncryptedMessage) (domain.Envelope, error) {
	switch m := msg.(type) {
	case session.SessionMessage:
		return domain.Envelope{
			Mode:       domain.ModeSession.String(),
			Ciphertext: m.Ciphertext,
		}, nil
	case session.ForwardMessage:
		return domain.Envelope{
			Mode:         domain.ModeForward.String(),
			Ciphertext:   m.Ciphertext,
			EphemeralKey: m.EphemeralPublicKey.Bytes(),
			Signature:    m.Signature,
		}, nil
	default:
		return domain.Envelope{}, fmt.Errorf("%w: unknown message variant %T", domain.ErrEncodingFailure, msg)
	}
}

// FromEnvelope validates env and rebuilds the message variant it carries.
func FromEnvelope(env domain.Envelope) (session.EncryptedMessage, error) {
	if len(env.Ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", domain.ErrDecodingFailure)
	}
	switch domain.ParseMode(env.Mode) {
	case domain.ModeSession:
		if len(env.EphemeralKey) != 0 || len(env.Signature) != 0 {
			return nil, fmt.Errorf("%w: session message carries forward fields", domain.ErrDecodingFailure)
		}
		return session.SessionMessage{Ciphertext: env.Ciphertext}, nil

	case domain.ModeForward:
		if len(env.EphemeralKey) != domain.KeySize {
			return nil, fmt.Errorf("%w: ephemeral_key: want %d bytes, got %d",
				domain.ErrDecodingFailure, domain.KeySize, len(env.EphemeralKey))
		}
		if len(env.Signature) != domain.SignatureSize {
			return nil, fmt.Errorf("%w: signature: want %d bytes, got %d",
				domain.ErrDecodingFailure, domain.SignatureSize, len(env.Signature))
		}
		eph, err := keys.PublicKeyFromBytes(env.EphemeralKey)
		if err != nil {
			return nil, fmt.Errorf("%w: ephemeral_key: %v", domain.ErrDecodingFailure, err)
		}
		return session.ForwardMessage{
			Ciphertext:         env.Ciphertext,
			EphemeralPublicKey: eph,
			Signature:          env.Signature,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrDecodingFailure, env.Mode)
	}
}

// Marshal encodes msg as indented JSON.
func Marshal(msg session.EncryptedMessage) ([]byte, error) {
	env, err := ToEnvelope(msg)
	if err != nil {
		return nil, err
	}
	return MarshalEnvelope(env)
}

// Unmarshal decodes JSON produced by Marshal.
func Unmarshal(b []byte) (session.EncryptedMessage, error) {
	env, err := UnmarshalEnvelope(b)
	if err != nil {
		return nil, err
	}
	return FromEnvelope(env)
}

// MarshalEnvelope encodes env as indented JSON. Byte fields are base64.
func MarshalEnvelope(env domain.Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalEnvelope decodes JSON into an Envelope without validating it.
func UnmarshalEnvelope(b []byte) (domain.Envelope, error) {
	var env domain.Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrDecodingFailure, err)
	}
	return env, nil
}
