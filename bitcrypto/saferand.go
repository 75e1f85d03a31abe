package bitcrypto

import (
	"crypto/rand"
	"fmt"
)

// RandRead fills b with random bytes from the operating system. A failing system
// random source is not recoverable for key generation, so it panics.
func RandRead(b []byte) {
	n, err := rand.Read(b)
	if err != nil {
		panic(fmt.Errorf("system random source failed: %w", err))
	}
	if n != len(b) {
		panic(fmt.Errorf("short random read: %d of %d bytes", n, len(b)))
	}
}
