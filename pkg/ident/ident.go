// Package ident generates prefixed record identifiers such as "sess_1f8a2c3de9lx4m".
// The suffix combines random bytes with a base-36 timestamp, so ids sort loosely
// by creation time and are collision-free in practice.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// New returns a fresh identifier with the given prefix.
func New(prefix string) string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp alone rather than panicking in a request path.
		return prefix + "_" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return prefix + "_" + hex.EncodeToString(buf[:]) + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
