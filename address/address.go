// Package address encodes pay-to-pubkey-hash and pay-to-script-hash addresses and WIF
// private keys with the Base58Check prefixes of a network.
package address

import (
	"errors"
	"fmt"

	"github.com/mogwai-project/mogwai-node/base58"
	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/chaincfg"
)

const SIZE = 20

type Kind uint8

const (
	PubKeyHash Kind = iota
	ScriptHash
)

func (k Kind) String() string {
	switch k {
	case PubKeyHash:
		return "p2pkh"
	case ScriptHash:
		return "p2sh"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrWrongNetwork   = errors.New("address belongs to another network")
)

type Address struct {
	Kind Kind
	Hash [SIZE]byte
}

// The zero-value of address is considered invalid
var INVALID_ADDRESS = Address{}

// FromPubKey returns the P2PKH address of a compressed public key.
func FromPubKey(p bitcrypto.Pubkey) Address {
	return Address{
		Kind: PubKeyHash,
		Hash: bitcrypto.Hash160(p[:]),
	}
}

// FromScript returns the P2SH address of a redeem script.
func FromScript(script []byte) Address {
	return Address{
		Kind: ScriptHash,
		Hash: bitcrypto.Hash160(script),
	}
}

func (a Address) IsValid() bool {
	return a != INVALID_ADDRESS
}

func (a Address) version(params *chaincfg.Params) byte {
	if a.Kind == ScriptHash {
		return params.ScriptHashAddrID
	}
	return params.PubKeyHashAddrID
}

// Encode returns the Base58Check string of a on the given network.
func (a Address) Encode(params *chaincfg.Params) string {
	return base58.CheckEncodeVersion([]byte{a.version(params)}, a.Hash[:])
}

// Decode parses an address of the given network. Addresses of other registered
// networks are reported with ErrWrongNetwork.
func Decode(s string, params *chaincfg.Params) (Address, error) {
	version, hash, err := base58.CheckDecodeVersion(s, 1)
	if err != nil {
		return Address{}, err
	}
	if len(hash) != SIZE {
		return Address{}, fmt.Errorf("%w: hash is %d bytes", ErrInvalidAddress, len(hash))
	}

	a := Address{
		Hash: [SIZE]byte(hash),
	}
	switch version[0] {
	case params.PubKeyHashAddrID:
		a.Kind = PubKeyHash
	case params.ScriptHashAddrID:
		a.Kind = ScriptHash
	default:
		if chaincfg.IsPubKeyHashAddrID(version[0]) || chaincfg.IsScriptHashAddrID(version[0]) {
			return Address{}, fmt.Errorf("%w: prefix %d is not used by %s", ErrWrongNetwork, version[0], params.Name)
		}
		return Address{}, fmt.Errorf("%w: unknown prefix %d", ErrInvalidAddress, version[0])
	}
	return a, nil
}
