package util

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Hash is a 256-bit block or transaction hash, stored in the big-endian order it is
// displayed in (the reverse of the internal little-endian uint256 layout).
type Hash [32]byte

// HashFromStr parses a display-order hex string. Shorter strings are left-padded with
// zeros, so "0x00" is the zero hash.
func HashFromStr(s string) (Hash, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) > 64 {
		return Hash{}, errors.New("hash string too long")
	}
	for len(s) < 64 {
		s = "0" + s
	}
	var h Hash
	_, err := hex.Decode(h[:], []byte(s))
	return h, err
}

// AssertHash is HashFromStr for static chain parameters.
func AssertHash(s string) Hash {
	h, err := HashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (m Hash) IsZero() bool {
	return m == Hash{}
}

func (m Hash) String() string {
	return hex.EncodeToString(m[:])
}

func (m Hash) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
func (m *Hash) UnmarshalText(c []byte) error {
	if len(c) != 64 {
		return errors.New("invalid length")
	}
	_, err := hex.Decode(m[:], c)
	return err
}

func (m Hash) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, m.String())
}
