// Package memzero wipes secret material from memory on a best-effort basis.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	// Keep b live until after the copy so the write is not elided.
	runtime.KeepAlive(b)
}

// Zero32 wipes a fixed-size key in place.
func Zero32(k *[32]byte) {
	if k == nil {
		return
	}
	Zero(k[:])
}
