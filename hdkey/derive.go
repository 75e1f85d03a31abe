package hdkey

import (
	"fmt"

	"github.com/mogwai-project/mogwai-node/binary"
	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/util"
)

var masterKey = []byte("Bitcoin seed")

// NewMaster creates the master extended private key of seed. BIP32 recommends seeds of
// 128 to 512 bits; the length is not enforced here.
func NewMaster(seed []byte) (*ExtendedKey, error) {
	lr := bitcrypto.HMACSHA512(masterKey, seed)
	defer util.Wipe(lr[:])

	if !bitcrypto.IsValidPrivkey(lr[:32]) {
		return nil, ErrInvalidMasterKey
	}

	k, err := NewExtendedKey(lr[:32], [32]byte(lr[32:]), [4]byte{}, 0, 0, true)
	if err != nil {
		return nil, ErrInvalidMasterKey
	}
	return k, nil
}

// Derive returns the child key at index i. Indices from HARDENED_KEY_START up are
// hardened and need a private parent. The child of a public key is public.
//
// ErrInvalidChildKey is returned for the rare indices that produce no valid key;
// Derive never moves on to another index by itself.
func (k *ExtendedKey) Derive(i uint32) (*ExtendedKey, error) {
	if k.depth == MAX_DEPTH {
		return nil, ErrDepthOverflow
	}

	hardened := i >= HARDENED_KEY_START
	if hardened && !k.isPrivate {
		return nil, ErrHardenedRequiresPrivateKey
	}

	s := binary.NewSer(make([]byte, 0, KEY_SIZE+4))
	if hardened {
		s.AddFixedByteArray(k.key[:])
	} else {
		s.AddFixedByteArray(k.pubKey[:])
	}
	s.AddUint32BE(i)
	data := s.Output()

	lr := bitcrypto.HMACSHA512(k.chainCode[:], data)
	util.Wipe(data)
	defer util.Wipe(lr[:])

	il := [32]byte(lr[:32])
	defer util.Wipe(il[:])

	child := &ExtendedKey{
		chainCode: [32]byte(lr[32:]),
		parentFP:  k.Fingerprint(),
		childNum:  i,
		depth:     k.depth + 1,
		isPrivate: k.isPrivate,
	}

	if k.isPrivate {
		parent := bitcrypto.Privkey(k.key[1:])
		priv, err := bitcrypto.TweakAddPrivkey(parent, il)
		util.Wipe(parent[:])
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidChildKey, i, err)
		}
		copy(child.key[1:], priv[:])
		child.pubKey = priv.Public()
		util.Wipe(priv[:])
		return child, nil
	}

	pub, err := bitcrypto.TweakAddPubkey(k.pubKey, il)
	if err != nil {
		return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidChildKey, i, err)
	}
	child.key = pub
	child.pubKey = pub
	return child, nil
}

// DerivePath derives each index of p in turn. Intermediate keys are wiped and k is left
// untouched. An empty path returns k itself.
func (k *ExtendedKey) DerivePath(p Path) (*ExtendedKey, error) {
	cur := k
	for n, i := range p {
		child, err := cur.Derive(i)
		if cur != k {
			cur.Zero()
		}
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", p[:n+1], err)
		}
		cur = child
	}
	return cur, nil
}
