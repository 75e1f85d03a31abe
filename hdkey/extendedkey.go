// Package hdkey implements BIP32 hierarchical deterministic extended keys: master key
// generation, child derivation and the 78-byte serialization with network specific
// version bytes.
//
// ExtendedKey values are immutable. Derivation returns new keys and never modifies the
// parent.
package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/util"
)

// HARDENED_KEY_START is the first hardened child index.
const HARDENED_KEY_START uint32 = 0x80000000

// MAX_DEPTH is the depth limit imposed by the one byte depth field.
const MAX_DEPTH = 255

const KEY_SIZE = 33 // 0x00 || scalar, or compressed point

type ExtendedKey struct {
	key       [KEY_SIZE]byte
	pubKey    bitcrypto.Pubkey
	chainCode [32]byte
	parentFP  [4]byte
	childNum  uint32
	depth     uint8
	isPrivate bool
}

// NewExtendedKey builds an extended key from its parts. key is a 32-byte scalar when
// isPrivate is set and a 33-byte compressed point otherwise; both are validated.
func NewExtendedKey(key []byte, chainCode [32]byte, parentFP [4]byte, childNum uint32,
	depth uint8, isPrivate bool) (*ExtendedKey, error) {

	k := &ExtendedKey{
		chainCode: chainCode,
		parentFP:  parentFP,
		childNum:  childNum,
		depth:     depth,
		isPrivate: isPrivate,
	}

	if isPrivate {
		priv, err := bitcrypto.PrivkeyFromBytes(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedKeyMaterial, err)
		}
		copy(k.key[1:], priv[:])
		k.pubKey = priv.Public()
		util.Wipe(priv[:])
		return k, nil
	}

	pub, err := bitcrypto.ParsePubkey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKeyMaterial, err)
	}
	k.key = pub
	k.pubKey = pub
	return k, nil
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildIndex returns the index this key was derived at, 0 for a master key.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childNum
}

func (k *ExtendedKey) IsHardened() bool {
	return k.childNum >= HARDENED_KEY_START
}

func (k *ExtendedKey) ParentFingerprint() [4]byte {
	return k.parentFP
}

func (k *ExtendedKey) ChainCode() [32]byte {
	return k.chainCode
}

// PublicKey returns the compressed public key, for private keys too.
func (k *ExtendedKey) PublicKey() bitcrypto.Pubkey {
	return k.pubKey
}

// PrivateKey returns a copy of the private scalar. The caller should wipe it.
func (k *ExtendedKey) PrivateKey() (bitcrypto.Privkey, error) {
	if !k.isPrivate {
		return bitcrypto.Privkey{}, ErrNotPrivateKey
	}
	return bitcrypto.Privkey(k.key[1:]), nil
}

// Identifier is hash160 of the compressed public key.
func (k *ExtendedKey) Identifier() [20]byte {
	return bitcrypto.Hash160(k.pubKey[:])
}

// Fingerprint is the first 4 bytes of the identifier. Children store it as their
// parent fingerprint.
func (k *ExtendedKey) Fingerprint() [4]byte {
	id := k.Identifier()
	return [4]byte(id[:4])
}

func (k *ExtendedKey) ECPubKey() (*btcec.PublicKey, error) {
	return k.pubKey.ECPubKey()
}

func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	priv, err := k.PrivateKey()
	if err != nil {
		return nil, err
	}
	defer util.Wipe(priv[:])

	return priv.ECPrivKey(), nil
}

// Neuter returns the public variant of k. A public key is returned unchanged.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k
	}
	return &ExtendedKey{
		key:       k.pubKey,
		pubKey:    k.pubKey,
		chainCode: k.chainCode,
		parentFP:  k.parentFP,
		childNum:  k.childNum,
		depth:     k.depth,
		isPrivate: false,
	}
}

func (k *ExtendedKey) Equal(o *ExtendedKey) bool {
	return k.isPrivate == o.isPrivate &&
		k.depth == o.depth &&
		k.parentFP == o.parentFP &&
		k.childNum == o.childNum &&
		k.chainCode == o.chainCode &&
		k.key == o.key
}

// Zero wipes the key material. k must not be used afterwards.
func (k *ExtendedKey) Zero() {
	util.Wipe(k.key[:])
	util.Wipe(k.pubKey[:])
	util.Wipe(k.chainCode[:])
	util.Wipe(k.parentFP[:])
	k.childNum = 0
	k.depth = 0
	k.isPrivate = false
}
