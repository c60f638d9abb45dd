// Package message encrypts messages to contacts and decrypts messages from
// them using the local identity.
//
// Each call builds a fresh session from the stored identity and the
// contact's card, so no session state outlives the call.
package message
