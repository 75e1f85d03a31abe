package wallet

import (
	"github.com/mogwai-project/mogwai-node/address"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/config"
	"github.com/mogwai-project/mogwai-node/hdkey"

	"github.com/pkg/errors"
)

var ErrIndexExhausted = errors.New("no valid child key found")

const (
	External uint32 = 0
	Internal uint32 = 1
)

// overridden by tests to simulate invalid child indices
var deriveChild = (*hdkey.ExtendedKey).Derive

// Account is a BIP44 account, m/44'/coin'/account'. It can be watch-only, in that case
// only the account extended public key is known.
type Account struct {
	Index  uint32
	params *chaincfg.Params
	key    *hdkey.ExtendedKey

	// branch keys, m/44'/coin'/account'/change
	branches [2]*hdkey.ExtendedKey
	// next unused index of each branch
	next     [2]uint32
}

// NewAccount derives the BIP44 account `index` from the master key.
func NewAccount(master *hdkey.ExtendedKey, params *chaincfg.Params, index uint32) (*Account, error) {
	if !master.IsPrivate() {
		return nil, hdkey.ErrHardenedRequiresPrivateKey
	}
	if master.Depth() != 0 {
		return nil, errors.New("account must be derived from a master key")
	}
	if index >= hdkey.HARDENED_KEY_START {
		return nil, errors.Errorf("account index %d out of range", index)
	}

	key, err := master.DerivePath(hdkey.BIP44AccountPath(params, index))
	if err != nil {
		return nil, err
	}
	return newAccount(key, params, index)
}

// NewWatchAccount builds an account from its extended key, usually an account xpub.
func NewWatchAccount(key *hdkey.ExtendedKey, params *chaincfg.Params) (*Account, error) {
	if key.Depth() != 3 || !key.IsHardened() {
		return nil, errors.Errorf("key at depth %d is not a BIP44 account key", key.Depth())
	}
	return newAccount(key, params, key.ChildIndex()-hdkey.HARDENED_KEY_START)
}

func newAccount(key *hdkey.ExtendedKey, params *chaincfg.Params, index uint32) (*Account, error) {
	a := &Account{
		Index:  index,
		params: params,
		key:    key,
	}
	for _, change := range []uint32{External, Internal} {
		b, err := deriveChild(key, change)
		if err != nil {
			return nil, errors.Wrapf(err, "account %d branch %d", index, change)
		}
		a.branches[change] = b
	}
	return a, nil
}

func (a *Account) IsWatchOnly() bool {
	return !a.key.IsPrivate()
}

func (a *Account) Params() *chaincfg.Params {
	return a.params
}

// Zero wipes the private keys of the account. Watch-only accounts are left untouched.
func (a *Account) Zero() {
	if a.IsWatchOnly() {
		return
	}
	a.key.Zero()
	for _, b := range a.branches {
		if b != nil {
			b.Zero()
		}
	}
}

// ExtendedPublicKey returns the encoded account xpub.
func (a *Account) ExtendedPublicKey() string {
	return a.key.Neuter().String(a.params)
}

func (a *Account) Key() *hdkey.ExtendedKey {
	return a.key
}

func (a *Account) Path() hdkey.Path {
	return hdkey.BIP44AccountPath(a.params, a.Index)
}

// NextIndex returns the next unused index of a branch.
func (a *Account) NextIndex(change uint32) uint32 {
	return a.next[change&1]
}

// SetNextIndex moves a branch cursor, used when restoring a stored account.
func (a *Account) SetNextIndex(change, index uint32) {
	a.next[change&1] = index
}

// Derive returns the first valid key of the branch at or after index, together with
// the index it was found at. At most MAX_INDEX_SKIP invalid indices are skipped.
func (a *Account) Derive(change, index uint32) (*hdkey.ExtendedKey, uint32, error) {
	if change > Internal {
		return nil, 0, errors.Errorf("invalid branch %d", change)
	}
	branch := a.branches[change]

	for skipped := 0; skipped <= config.MAX_INDEX_SKIP; skipped++ {
		if index >= hdkey.HARDENED_KEY_START {
			break
		}
		k, err := deriveChild(branch, index)
		if err == nil {
			return k, index, nil
		}
		if !errors.Is(err, hdkey.ErrInvalidChildKey) {
			return nil, 0, err
		}
		index++
	}
	return nil, 0, errors.Wrapf(ErrIndexExhausted, "branch %d at index %d", change, index)
}

// Address returns the P2PKH address at change/index.
func (a *Account) Address(change, index uint32) (address.Address, uint32, error) {
	k, i, err := a.Derive(change, index)
	if err != nil {
		return address.INVALID_ADDRESS, 0, err
	}
	if !a.IsWatchOnly() {
		defer k.Zero()
	}
	return address.FromPubKey(k.PublicKey()), i, nil
}

// NextAddress returns the next unused address of a branch and advances its cursor.
func (a *Account) NextAddress(change uint32) (address.Address, hdkey.Path, error) {
	addr, i, err := a.Address(change, a.NextIndex(change))
	if err != nil {
		return address.INVALID_ADDRESS, nil, err
	}
	a.next[change] = i + 1

	return addr, hdkey.BIP44Path(a.params, a.Index, change, i), nil
}
