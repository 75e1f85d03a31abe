// Package enc has text encodings for byte fields in CLI and JSON output.
package enc

import (
	"encoding/hex"
	"errors"
)

// Hex is a byte string that marshals as lowercase hex.
type Hex []byte

var errNotString = errors.New("enc: hex value must be a JSON string")

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(out, h)
	return out, nil
}

// UnmarshalText reuses h's storage. h is left empty when c is malformed.
func (h *Hex) UnmarshalText(c []byte) error {
	buf := (*h)[:0]
	if cap(buf) < hex.DecodedLen(len(c)) {
		buf = make([]byte, hex.DecodedLen(len(c)))
	}
	buf = buf[:hex.DecodedLen(len(c))]
	n, err := hex.Decode(buf, c)
	if err != nil {
		*h = buf[:0]
		return err
	}
	*h = buf[:n]
	return nil
}

func (h Hex) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, hex.EncodedLen(len(h))+2)
	out = append(out, '"')
	out = hex.AppendEncode(out, h)
	return append(out, '"'), nil
}

func (h *Hex) UnmarshalJSON(c []byte) error {
	if len(c) < 2 || c[0] != '"' || c[len(c)-1] != '"' {
		return errNotString
	}
	return h.UnmarshalText(c[1 : len(c)-1])
}
