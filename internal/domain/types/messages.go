package types

// Envelope is the transport form of an encrypted message. Mode carries the
// variant tag; EphemeralKey and Signature are set only for forward messages.
type Envelope struct {
	Mode         string `json:"mode"`
	Ciphertext   []byte `json:"ciphertext"`
	EphemeralKey []byte `json:"ephemeral_key,omitempty"`
	Signature    []byte `json:"signature,omitempty"`
}

// DecryptedMessage is what MessageService.Open returns.
type DecryptedMessage struct {
	From      ContactName `json:"from"`
	Mode      Mode        `json:"mode"`
	Plaintext []byte      `json:"plaintext"`
}
