package hdkey

import (
	"errors"
	"fmt"
	"io"

	"github.com/mogwai-project/mogwai-node/base58"
	"github.com/mogwai-project/mogwai-node/binary"
	"github.com/mogwai-project/mogwai-node/chaincfg"
)

// SERIALIZED_SIZE is the length of version || depth || fingerprint || child number ||
// chain code || key.
const SERIALIZED_SIZE = 78

// Serialize returns the 78-byte BIP32 encoding of k with the network's version bytes.
// Multi-byte fields are big-endian.
func (k *ExtendedKey) Serialize(params *chaincfg.Params) [SERIALIZED_SIZE]byte {
	version := params.HDVersion(k.isPrivate)

	s := binary.NewSer(make([]byte, 0, SERIALIZED_SIZE))
	s.AddFixedByteArray(version[:])
	s.AddUint8(k.depth)
	s.AddFixedByteArray(k.parentFP[:])
	s.AddUint32BE(k.childNum)
	s.AddFixedByteArray(k.chainCode[:])
	s.AddFixedByteArray(k.key[:])

	return [SERIALIZED_SIZE]byte(s.Output())
}

// Deserialize parses the 78-byte encoding of an extended key of the given network.
func Deserialize(buf []byte, params *chaincfg.Params) (*ExtendedKey, error) {
	if len(buf) != SERIALIZED_SIZE {
		return nil, fmt.Errorf("%w: length %d, expected %d", ErrMalformedKeyMaterial, len(buf), SERIALIZED_SIZE)
	}

	d := binary.NewDes(buf)

	var version [4]byte
	d.ReadInto(version[:])

	var isPrivate bool
	switch version {
	case params.HDPrivateKeyID:
		isPrivate = true
	case params.HDPublicKeyID:
		isPrivate = false
	default:
		return nil, fmt.Errorf("%w %x for network %s", ErrUnknownVersion, version, params.Name)
	}

	depth := d.ReadUint8()
	var parentFP [4]byte
	d.ReadInto(parentFP[:])
	childNum := d.ReadUint32BE()
	var chainCode [32]byte
	d.ReadInto(chainCode[:])
	var key [KEY_SIZE]byte
	d.ReadInto(key[:])

	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKeyMaterial, err)
	}

	if depth == 0 && (parentFP != [4]byte{} || childNum != 0) {
		return nil, fmt.Errorf("%w: master key with parent fingerprint %x and index %d",
			ErrMalformedKeyMaterial, parentFP, childNum)
	}

	if isPrivate {
		if key[0] != 0x00 {
			return nil, fmt.Errorf("%w: private key prefix %02x", ErrMalformedKeyMaterial, key[0])
		}
		return NewExtendedKey(key[1:], chainCode, parentFP, childNum, depth, true)
	}
	return NewExtendedKey(key[:], chainCode, parentFP, childNum, depth, false)
}

// String returns the Base58Check encoding of the serialized key, the mpub/mprv (or
// tpub/tprv) form wallets exchange.
func (k *ExtendedKey) String(params *chaincfg.Params) string {
	ser := k.Serialize(params)
	return base58.CheckEncode(ser[:])
}

// FromString parses a Base58Check extended key of the given network.
func FromString(s string, params *chaincfg.Params) (*ExtendedKey, error) {
	buf, err := base58.CheckDecode(s)
	if err != nil {
		return nil, err
	}
	return Deserialize(buf, params)
}

// Decode parses a Base58Check extended key of any registered network and returns the
// network its version resolved to. Test and regtest keys both resolve to test.
func Decode(s string) (*ExtendedKey, *chaincfg.Params, error) {
	buf, err := base58.CheckDecode(s)
	if err != nil {
		return nil, nil, err
	}
	if len(buf) != SERIALIZED_SIZE {
		return nil, nil, fmt.Errorf("%w: length %d, expected %d", ErrMalformedKeyMaterial, len(buf), SERIALIZED_SIZE)
	}

	params, _, err := chaincfg.HDVersionInfo([4]byte(buf[:4]))
	if errors.Is(err, chaincfg.ErrUnknownHDKeyID) {
		return nil, nil, fmt.Errorf("%w %x", ErrUnknownVersion, buf[:4])
	} else if err != nil {
		return nil, nil, err
	}

	k, err := Deserialize(buf, params)
	if err != nil {
		return nil, nil, err
	}
	return k, params, nil
}

// WriteExtendedKey writes k in its length-prefixed stream form: one length byte
// followed by the serialized key.
func WriteExtendedKey(w io.Writer, k *ExtendedKey, params *chaincfg.Params) error {
	ser := k.Serialize(params)

	s := binary.NewSer(make([]byte, 0, SERIALIZED_SIZE+1))
	s.AddUint8(SERIALIZED_SIZE)
	s.AddFixedByteArray(ser[:])

	_, err := w.Write(s.Output())
	return err
}

// ReadExtendedKey reads a key written by WriteExtendedKey.
func ReadExtendedKey(r io.Reader, params *chaincfg.Params) (*ExtendedKey, error) {
	var buf [SERIALIZED_SIZE + 1]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return nil, err
	}
	if buf[0] != SERIALIZED_SIZE {
		return nil, fmt.Errorf("%w: length prefix %d, expected %d", ErrMalformedKeyMaterial, buf[0], SERIALIZED_SIZE)
	}
	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		return nil, err
	}
	return Deserialize(buf[1:], params)
}
