// Package x3dhkit encrypts messages between two parties identified by
// long-term X25519 keys.
//
// Two session modes are offered. A static session derives one symmetric key
// from both identity keys and uses it for every message. A forward session
// generates a fresh ephemeral key per message, signs it with the sender's
// Ed25519 key, and derives a one-time key from it, so that compromising the
// identity keys later does not expose earlier messages.
//
//	alice, _ := x3dhkit.GeneratePrivateKey()
//	bob, _ := x3dhkit.GeneratePrivateKey()
//	aliceSig, _ := x3dhkit.GenerateSigningKey()
//	bobSig, _ := x3dhkit.GenerateSigningKey()
//
//	s, _ := x3dhkit.NewForwardSession(alice, bob.PublicKey(), aliceSig)
//	msg, _ := s.Encrypt([]byte("hello"))
//
//	r, _ := x3dhkit.NewForwardSession(bob, alice.PublicKey(), bobSig,
//		x3dhkit.WithPeerSigningKey(aliceSig.PublicKey()))
//	pt, _ := r.Decrypt(msg)
//
// Nothing is persisted. Keys, sessions and messages are plain values owned by
// the caller.
package x3dhkit
