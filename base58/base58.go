// Package base58 implements Base58 and Base58Check text encoding with the Bitcoin
// alphabet. Base58Check appends the first four bytes of SHA-256d of the payload before
// encoding, so single-character typos are detected on decode.
package base58

import (
	"errors"
	"fmt"
	"strings"

	mrbase58 "github.com/mr-tron/base58"

	"github.com/mogwai-project/mogwai-node/bitcrypto"
)

const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const ChecksumSize = 4

var (
	ErrChecksumMismatch = errors.New("base58: checksum mismatch")
	ErrInvalidCharacter = errors.New("base58: invalid character")
)

// Encode maps b to base-58. Each leading zero byte becomes a leading '1'.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return mrbase58.EncodeAlphabet(b, mrbase58.BTCAlphabet)
}

// Decode reverses Encode. Any character outside Alphabet fails with
// ErrInvalidCharacter.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
	}
	if len(s) == 0 {
		return []byte{}, nil
	}
	b, err := mrbase58.DecodeAlphabet(s, mrbase58.BTCAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	return b, nil
}

func checksum(payload []byte) [ChecksumSize]byte {
	h := bitcrypto.DoubleSHA256(payload)
	return [ChecksumSize]byte(h[:ChecksumSize])
}

// CheckEncode returns the Base58Check encoding of payload.
func CheckEncode(payload []byte) string {
	sum := checksum(payload)

	b := make([]byte, 0, len(payload)+ChecksumSize)
	b = append(b, payload...)
	b = append(b, sum[:]...)

	return Encode(b)
}

// CheckDecode decodes s and verifies its checksum, returning the payload. Input that
// decodes to fewer than ChecksumSize bytes cannot carry a checksum and fails with
// ErrChecksumMismatch.
func CheckDecode(s string) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) < ChecksumSize {
		return nil, fmt.Errorf("%w: decoded length %d is shorter than the checksum", ErrChecksumMismatch, len(b))
	}

	payload, sum := b[:len(b)-ChecksumSize], b[len(b)-ChecksumSize:]
	if checksum(payload) != [ChecksumSize]byte(sum) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// CheckEncodeVersion encodes version || payload. Address and WIF encodings use a one
// byte version, extended keys a four byte version.
func CheckEncodeVersion(version, payload []byte) string {
	b := make([]byte, 0, len(version)+len(payload))
	b = append(b, version...)
	b = append(b, payload...)
	return CheckEncode(b)
}

// CheckDecodeVersion splits the first versionLen bytes of the checked payload off as
// the version.
func CheckDecodeVersion(s string, versionLen int) (version, payload []byte, err error) {
	b, err := CheckDecode(s)
	if err != nil {
		return nil, nil, err
	}
	if len(b) < versionLen {
		return nil, nil, fmt.Errorf("base58: payload of %d bytes has no %d byte version", len(b), versionLen)
	}
	return b[:versionLen], b[versionLen:], nil
}
