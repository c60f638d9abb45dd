// Package commands defines the x3dhkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Create the local identity
//   - fingerprint  Print the identity fingerprint
//   - export       Write your contact card for a peer
//   - encrypt      Encrypt a message to a contact card
//   - decrypt      Decrypt an envelope from a contact card
//
// # Implementation
//
// The root command builds the dependency graph (stores, services) before any
// subcommand runs. Envelopes are JSON and contact cards are YAML, so both can
// be passed around by any out-of-band channel.
package commands
