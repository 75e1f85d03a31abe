// Package util holds small helpers shared by the node's packages.
package util

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/sasha-s/go-deadlock"
)

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// RWMutex reports lock waits longer than the deadlock timeout.
type RWMutex = deadlock.RWMutex

// PadL left-aligns s in a column of width l. Longer strings are returned unchanged.
func PadL(s string, l int) string {
	if len(s) >= l {
		return s
	}
	return s + strings.Repeat(" ", l-len(s))
}

// AssertHexDec decodes a hex constant and panics if it is malformed. Network parameters
// and test vectors only.
func AssertHexDec(s string) []byte {
	dat, err := hex.DecodeString(s)
	if err != nil {
		panic("util: bad hex constant " + s + ": " + err.Error())
	}
	return dat
}

func isLowerHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f')
}

// IsHex reports whether s has only lowercase hex digits.
func IsHex(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !isLowerHexDigit(r) }) < 0
}

func Wipe(b []byte) {
	clear(b)
}
