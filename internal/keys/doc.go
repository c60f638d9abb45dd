// Package keys wraps raw key bytes in typed values.
//
// Every key type offers generation, construction from raw bytes (fixed
// length, otherwise domain.ErrInvalidKeyData), export of raw bytes and, for
// private halves, derivation of the public half. Values are immutable; the
// only mutating method is Wipe, which callers use when a private key reaches
// the end of its life.
package keys
