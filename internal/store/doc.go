// Package store persists what the x3dhkit command line needs between runs.
//
// The session library itself keeps nothing on disk. The CLI keeps two kinds
// of file:
//   - the local identity, sealed under a passphrase (IdentityFileStore)
//   - public contact cards exchanged with peers, as YAML (ContactFileStore)
//
// Writes go through a temp file and a rename so a crash never leaves a
// half-written file behind.
package store
