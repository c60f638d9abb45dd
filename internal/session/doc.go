// Package session is the entry point applications use to encrypt and decrypt
// messages between two identities.
//
// A Session is built in exactly one of two modes. NewStatic derives a single
// key from both static identity keys. NewForward additionally holds a signing
// key and derives a fresh key for every message from a signed ephemeral key.
// The mode is fixed at construction and every message carries it as its
// variant, so a message is only ever opened by the cipher that produced it.
package session
