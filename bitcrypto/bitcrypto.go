package bitcrypto

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const PRIVKEY_SIZE = 32
const PUBKEY_SIZE = 33 // compressed point

// Privkey is a secp256k1 scalar, big-endian.
type Privkey [PRIVKEY_SIZE]byte

// Pubkey is a compressed secp256k1 point (0x02/0x03 || X).
type Pubkey [PUBKEY_SIZE]byte

var (
	ErrInvalidPrivkey  = errors.New("private key is zero or not below the curve order")
	ErrInvalidPubkey   = errors.New("invalid compressed public key")
	ErrTweakOverflow   = errors.New("tweak is not below the curve order")
	ErrZeroKey         = errors.New("tweaked private key is zero")
	ErrPointAtInfinity = errors.New("tweaked public key is the point at infinity")
)

// parseScalar reports whether b is a valid private key, 1 <= b < n.
func parseScalar(b []byte) (s secp256k1.ModNScalar, ok bool) {
	overflow := s.SetByteSlice(b)
	if overflow || s.IsZero() {
		s.Zero()
		return s, false
	}
	return s, true
}

// IsValidPrivkey reports whether b is a 32-byte scalar in [1, n-1].
func IsValidPrivkey(b []byte) bool {
	if len(b) != PRIVKEY_SIZE {
		return false
	}
	s, ok := parseScalar(b)
	s.Zero()
	return ok
}

func PrivkeyFromBytes(b []byte) (Privkey, error) {
	if !IsValidPrivkey(b) {
		return Privkey{}, ErrInvalidPrivkey
	}
	return Privkey(b), nil
}

func (p Privkey) IsValid() bool {
	return IsValidPrivkey(p[:])
}

// Public returns the compressed public key. p must be valid.
func (p Privkey) Public() Pubkey {
	priv := secp256k1.PrivKeyFromBytes(p[:])
	defer priv.Zero()

	return Pubkey(priv.PubKey().SerializeCompressed())
}

// ECPrivKey converts p to a btcec private key for signing callers.
func (p Privkey) ECPrivKey() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(p[:])
	return priv
}

// ParsePubkey accepts only the 33-byte compressed encoding of a point on the curve.
func ParsePubkey(b []byte) (Pubkey, error) {
	if len(b) != PUBKEY_SIZE || (b[0] != 0x02 && b[0] != 0x03) {
		return Pubkey{}, ErrInvalidPubkey
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return Pubkey{}, ErrInvalidPubkey
	}
	return Pubkey(b), nil
}

func (p Pubkey) IsValid() bool {
	_, err := ParsePubkey(p[:])
	return err == nil
}

func (p Pubkey) ECPubKey() (*btcec.PublicKey, error) {
	if p[0] != 0x02 && p[0] != 0x03 {
		return nil, ErrInvalidPubkey
	}
	return btcec.ParsePubKey(p[:])
}

// TweakAddPrivkey returns (tweak + k) mod n.
func TweakAddPrivkey(k Privkey, tweak [32]byte) (Privkey, error) {
	key, ok := parseScalar(k[:])
	if !ok {
		return Privkey{}, ErrInvalidPrivkey
	}
	defer key.Zero()

	var t secp256k1.ModNScalar
	if t.SetByteSlice(tweak[:]) {
		t.Zero()
		return Privkey{}, ErrTweakOverflow
	}
	defer t.Zero()

	key.Add(&t)
	if key.IsZero() {
		return Privkey{}, ErrZeroKey
	}

	var out [32]byte
	key.PutBytes(&out)
	return Privkey(out), nil
}

// TweakAddPubkey returns tweak*G + p.
func TweakAddPubkey(p Pubkey, tweak [32]byte) (Pubkey, error) {
	if p[0] != 0x02 && p[0] != 0x03 {
		return Pubkey{}, ErrInvalidPubkey
	}
	parsed, err := secp256k1.ParsePubKey(p[:])
	if err != nil {
		return Pubkey{}, ErrInvalidPubkey
	}

	var t secp256k1.ModNScalar
	if t.SetByteSlice(tweak[:]) {
		return Pubkey{}, ErrTweakOverflow
	}

	var tweakPoint, parentPoint, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&t, &tweakPoint)
	parsed.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&tweakPoint, &parentPoint, &sum)

	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return Pubkey{}, ErrPointAtInfinity
	}
	sum.ToAffine()

	return Pubkey(secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed()), nil
}
