package types

// ContactName is the local label of a peer's contact card.
type ContactName string

// String returns the string form of the name.
func (n ContactName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Mode selects how a session derives its message keys.
type Mode int

const (
	// ModeNone is the zero value; no session is ever configured with it.
	ModeNone Mode = iota
	// ModeSession derives one key from the two static identity keys.
	ModeSession
	// ModeForward derives a fresh key per message from a signed ephemeral key.
	ModeForward
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSession:
		return "session"
	case ModeForward:
		return "forward"
	default:
		return "none"
	}
}

// ParseMode maps a wire name back to a Mode. Unknown names yield ModeNone.
func ParseMode(s string) Mode {
	switch s {
	case "session", "static":
		return ModeSession
	case "forward":
		return ModeForward
	default:
		return ModeNone
	}
}
