package address

import (
	"errors"
	"fmt"

	"github.com/mogwai-project/mogwai-node/base58"
	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/chaincfg"
)

const compressMagic = 0x01

var ErrInvalidWIF = errors.New("invalid WIF private key")

// WIF is a private key in wallet import format.
type WIF struct {
	Key bitcrypto.Privkey
	// Compressed marks keys whose address is built from the compressed public key.
	Compressed bool
}

func NewWIF(key bitcrypto.Privkey, compressed bool) (WIF, error) {
	if !key.IsValid() {
		return WIF{}, bitcrypto.ErrInvalidPrivkey
	}
	return WIF{key, compressed}, nil
}

func (w WIF) Encode(params *chaincfg.Params) string {
	payload := make([]byte, 0, bitcrypto.PRIVKEY_SIZE+1)
	payload = append(payload, w.Key[:]...)
	if w.Compressed {
		payload = append(payload, compressMagic)
	}
	s := base58.CheckEncodeVersion([]byte{params.PrivateKeyID}, payload)
	clear(payload)
	return s
}

// DecodeWIF parses a WIF private key of the given network.
func DecodeWIF(s string, params *chaincfg.Params) (WIF, error) {
	version, payload, err := base58.CheckDecodeVersion(s, 1)
	if err != nil {
		return WIF{}, err
	}
	defer clear(payload)

	if version[0] != params.PrivateKeyID {
		return WIF{}, fmt.Errorf("%w: prefix %d is not used by %s", ErrWrongNetwork, version[0], params.Name)
	}

	var w WIF
	switch {
	case len(payload) == bitcrypto.PRIVKEY_SIZE+1 && payload[bitcrypto.PRIVKEY_SIZE] == compressMagic:
		w.Compressed = true
	case len(payload) == bitcrypto.PRIVKEY_SIZE:
	default:
		return WIF{}, fmt.Errorf("%w: payload is %d bytes", ErrInvalidWIF, len(payload))
	}

	key, err := bitcrypto.PrivkeyFromBytes(payload[:bitcrypto.PRIVKEY_SIZE])
	if err != nil {
		return WIF{}, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	w.Key = key
	return w, nil
}

// Address returns the P2PKH address of the key. Only compressed keys are supported.
func (w WIF) Address() (Address, error) {
	if !w.Compressed {
		return Address{}, fmt.Errorf("%w: uncompressed keys are not supported", ErrInvalidWIF)
	}
	return FromPubKey(w.Key.Public()), nil
}
