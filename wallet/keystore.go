package wallet

import (
	"cmp"
	"encoding/hex"
	"slices"

	"github.com/mogwai-project/mogwai-node/adb"
	"github.com/mogwai-project/mogwai-node/address"
	"github.com/mogwai-project/mogwai-node/binary"
	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/config"
	"github.com/mogwai-project/mogwai-node/hdkey"
	"github.com/mogwai-project/mogwai-node/logger"
	"github.com/mogwai-project/mogwai-node/util"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("wrong password or corrupted keystore entry")
)

const recordVersion = 1

// AccountID identifies a stored account. It is the blake3 hash of the account xpub.
type AccountID [32]byte

func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

func ParseAccountID(s string) (AccountID, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(AccountID{}) {
		return AccountID{}, errors.Errorf("invalid account id %q", s)
	}
	return AccountID(b), nil
}

func accountID(xpub [hdkey.SERIALIZED_SIZE]byte) AccountID {
	return AccountID(blake3.Sum256(xpub[:]))
}

// AccountInfo is the public part of a keystore entry.
type AccountInfo struct {
	ID       AccountID
	Index    uint32
	XPub     *hdkey.ExtendedKey
	External uint32
	Internal uint32
}

type record struct {
	AccountInfo
	kdf    bitcrypto.KDFParams
	// nonce || AES-256-GCM(xprv) with the account id as associated data
	encKey []byte
}

func (r *record) Serialize(params *chaincfg.Params) []byte {
	s := binary.NewSer(make([]byte, 0, 256))
	s.AddUint8(recordVersion)
	s.AddUint32(r.Index)
	s.AddUint32(r.External)
	s.AddUint32(r.Internal)
	xpub := r.XPub.Serialize(params)
	s.AddFixedByteArray(xpub[:])
	r.kdf.Serialize(&s)
	s.AddByteSlice(r.encKey)
	return s.Output()
}

func (r *record) Deserialize(data []byte, params *chaincfg.Params) error {
	d := binary.NewDes(data)
	if v := d.ReadUint8(); d.Error() == nil && v != recordVersion {
		return errors.Errorf("unsupported record version %d", v)
	}
	r.Index = d.ReadUint32()
	r.External = d.ReadUint32()
	r.Internal = d.ReadUint32()
	xpub := d.ReadFixedByteArray(hdkey.SERIALIZED_SIZE)
	if err := r.kdf.Deserialize(&d); err != nil {
		return err
	}
	r.encKey = d.ReadByteSlice()
	if err := d.Error(); err != nil {
		return err
	}

	k, err := hdkey.Deserialize(xpub, params)
	if err != nil {
		return err
	}
	if k.IsPrivate() {
		return errors.New("record holds a private key in its public part")
	}
	r.XPub = k
	r.ID = accountID([hdkey.SERIALIZED_SIZE]byte(xpub))
	return nil
}

// Keystore persists BIP44 accounts in an adb database. Account private keys are
// encrypted with a password-derived key; the public part is cached in memory.
// Keystore is safe for concurrent use.
type Keystore struct {
	db     adb.DB
	index  adb.Index
	params *chaincfg.Params
	log    *logger.Log

	kdfTime   uint32
	kdfMemory uint32

	mu      util.RWMutex
	records map[AccountID]*record
}

// OpenKeystore loads the accounts of params' network stored in db.
func OpenKeystore(db adb.DB, params *chaincfg.Params, log *logger.Log) (*Keystore, error) {
	index, err := db.Index("accounts_" + params.Name)
	if err != nil {
		return nil, errors.Wrap(err, "open keystore")
	}

	k := &Keystore{
		db:        db,
		index:     index,
		params:    params,
		log:       log,
		kdfTime:   config.KDF_ITERATIONS,
		kdfMemory: config.KDF_MEMORY,
	}

	err = db.View(func(txn adb.Txn) error {
		n, err := txn.Entries(index)
		if err != nil {
			return err
		}
		k.records = make(map[AccountID]*record, n)
		return txn.ForEach(index, func(key, v []byte) error {
			r := &record{}
			if err := r.Deserialize(v, params); err != nil {
				return errors.Wrapf(err, "entry %x", key)
			}
			if !slices.Equal(r.ID[:], key) {
				return errors.Errorf("entry %x does not match its account key", key)
			}
			k.records[r.ID] = r
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "load keystore")
	}

	log.Debugf("keystore: loaded %d %s accounts", len(k.records), params.Name)
	return k, nil
}

// SetKDF changes the argon2id parameters used for accounts added from now on.
func (k *Keystore) SetKDF(time, memory uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.kdfTime = time
	k.kdfMemory = memory
}

func (k *Keystore) Params() *chaincfg.Params {
	return k.params
}

func (k *Keystore) put(r *record) error {
	return k.db.Update(func(txn adb.Txn) error {
		return txn.Put(k.index, r.ID[:], r.Serialize(k.params))
	})
}

// AddAccount derives the BIP44 account `index` of master and stores it encrypted
// with pass.
func (k *Keystore) AddAccount(master *hdkey.ExtendedKey, index uint32, pass []byte) (AccountID, error) {
	acc, err := NewAccount(master, k.params, index)
	if err != nil {
		return AccountID{}, err
	}
	defer acc.Zero()

	xpub := acc.key.Neuter()
	id := accountID(xpub.Serialize(k.params))

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := k.records[id]; ok {
		return id, errors.Wrapf(ErrAccountExists, "account %s", id)
	}

	r := &record{
		AccountInfo: AccountInfo{
			ID:    id,
			Index: index,
			XPub:  xpub,
		},
		kdf: bitcrypto.NewKDFParams(k.kdfTime, k.kdfMemory),
	}

	key := r.kdf.Key(pass)
	defer util.Wipe(key[:])
	cip, err := bitcrypto.NewCipher(key)
	if err != nil {
		return id, err
	}

	xprv := acc.key.Serialize(k.params)
	defer util.Wipe(xprv[:])
	r.encKey, err = cip.Encrypt(xprv[:], id[:])
	if err != nil {
		return id, err
	}

	if err := k.put(r); err != nil {
		return id, errors.Wrap(err, "store account")
	}
	k.records[id] = r

	k.log.Infof("keystore: added account %d (%s)", index, id)
	return id, nil
}

// Accounts lists the stored accounts ordered by account index.
func (k *Keystore) Accounts() []AccountInfo {
	k.mu.RLock()
	defer k.mu.RUnlock()

	list := make([]AccountInfo, 0, len(k.records))
	for _, r := range k.records {
		list = append(list, r.AccountInfo)
	}
	slices.SortFunc(list, func(a, b AccountInfo) int {
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return list
}

func (k *Keystore) Account(id AccountID) (AccountInfo, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	r, ok := k.records[id]
	if !ok {
		return AccountInfo{}, errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}
	return r.AccountInfo, nil
}

// Unlock decrypts the account with pass. The returned account can derive private keys;
// callers should Zero its key when done.
func (k *Keystore) Unlock(id AccountID, pass []byte) (*Account, error) {
	k.mu.RLock()
	stored, ok := k.records[id]
	var r record
	if ok {
		r = *stored
	}
	k.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}

	key := r.kdf.Key(pass)
	defer util.Wipe(key[:])
	cip, err := bitcrypto.NewCipher(key)
	if err != nil {
		return nil, err
	}
	xprv, err := cip.Decrypt(r.encKey, id[:])
	if err != nil {
		return nil, errors.Wrapf(ErrWrongPassword, "account %s", id)
	}
	defer util.Wipe(xprv)

	ext, err := hdkey.Deserialize(xprv, k.params)
	if err != nil {
		return nil, errors.Wrap(err, "decrypted account key")
	}
	if !ext.IsPrivate() || !ext.Neuter().Equal(r.XPub) {
		ext.Zero()
		return nil, errors.Errorf("account %s: decrypted key does not match the stored xpub", id)
	}

	acc, err := newAccount(ext, k.params, r.Index)
	if err != nil {
		ext.Zero()
		return nil, err
	}
	acc.next = [2]uint32{r.External, r.Internal}
	return acc, nil
}

// NextAddress returns the next unused address of the account and persists the cursor.
// Only the account xpub is used.
func (k *Keystore) NextAddress(id AccountID, change uint32) (address.Address, hdkey.Path, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	r, ok := k.records[id]
	if !ok {
		return address.INVALID_ADDRESS, nil, errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}

	acc, err := newAccount(r.XPub, k.params, r.Index)
	if err != nil {
		return address.INVALID_ADDRESS, nil, err
	}
	acc.next = [2]uint32{r.External, r.Internal}

	addr, path, err := acc.NextAddress(change)
	if err != nil {
		return address.INVALID_ADDRESS, nil, err
	}

	updated := *r
	updated.External, updated.Internal = acc.next[External], acc.next[Internal]
	if err := k.put(&updated); err != nil {
		return address.INVALID_ADDRESS, nil, errors.Wrap(err, "store account")
	}
	*r = updated

	k.log.Debugf("keystore: account %d next address %s at %s", r.Index, addr.Encode(k.params), path)
	return addr, path, nil
}

// Remove deletes an account from the keystore.
func (k *Keystore) Remove(id AccountID) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := k.records[id]; !ok {
		return errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}
	err := k.db.Update(func(txn adb.Txn) error {
		return txn.Del(k.index, id[:])
	})
	if err != nil {
		return errors.Wrap(err, "remove account")
	}
	delete(k.records, id)

	k.log.Infof("keystore: removed account %s", id)
	return nil
}
