// Package lmdb stores keystore indices as named databases of an LMDB environment.
package lmdb

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/mogwai-project/mogwai-node/adb"
	"github.com/mogwai-project/mogwai-node/logger"

	lmdb "github.com/PowerDNS/lmdb-go/lmdb"
	"github.com/pkg/errors"
)

const (
	maxIndices     = 16
	initialMapSize = 512 << 10
	maxMapStep     = 1 << 30
	mapFullRetries = 4
)

var _ adb.DB = &DB{}

type DB struct {
	env *lmdb.Env
	log *logger.Log

	mapLock sync.Mutex
}

// New opens (creating if needed) the environment directory dir. Data files get mode.
func New(dir string, mode os.FileMode, log *logger.Log) (*DB, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := prepareDir(dir, log); err != nil {
		return nil, err
	}

	env, err := lmdb.NewEnv()
	if err != nil {
		return nil, errors.Wrap(err, "lmdb env")
	}
	if err = env.SetMaxDBs(maxIndices); err == nil {
		err = env.SetMapSize(initialMapSize)
	}
	if err == nil {
		// keystore writes are rare, keep full durability
		err = env.Open(dir, lmdb.WriteMap, mode)
	}
	if err != nil {
		env.Close()
		return nil, errors.Wrapf(err, "open %s", dir)
	}

	return &DB{env: env, log: log}, nil
}

func prepareDir(dir string, log *logger.Log) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create keystore directory")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "keystore directory")
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	if info.Mode().Perm()&0o077 != 0 {
		log.Warnf("keystore directory %s is accessible by other users (%v)", dir, info.Mode().Perm())
	}
	return nil
}

func (d *DB) Index(name string) (adb.Index, error) {
	var handle lmdb.DBI
	err := d.env.Update(func(txn *lmdb.Txn) (err error) {
		handle, err = txn.CreateDBI(name)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create dbi %s", name)
	}
	return handle, nil
}

func txnOp(fn func(adb.Txn) error) lmdb.TxnOp {
	return func(txn *lmdb.Txn) error {
		return fn(&Txn{txn: txn})
	}
}

func (d *DB) View(fn func(adb.Txn) error) error {
	return d.env.View(txnOp(fn))
}

// Update grows the memory map ahead of the write when it is nearly full, and again each
// time the write fails with MDB_MAP_FULL.
func (d *DB) Update(fn func(adb.Txn) error) error {
	if err := d.growMap(false); err != nil {
		return err
	}
	for attempt := 0; ; attempt++ {
		err := d.env.Update(txnOp(fn))
		if !lmdb.IsMapFull(err) || attempt == mapFullRetries {
			return err
		}
		d.log.Warn("lmdb: map full, growing")
		if err := d.growMap(true); err != nil {
			return err
		}
	}
}

// growMap doubles the map, by at most maxMapStep, when less than a tenth of it is free
// or when force is set.
func (d *DB) growMap(force bool) error {
	d.mapLock.Lock()
	defer d.mapLock.Unlock()

	info, err := d.env.Info()
	if err != nil {
		return err
	}
	if !force {
		stat, err := d.env.Stat()
		if err != nil {
			return err
		}
		used := int64(stat.PSize) * info.LastPNO
		if used*10 < info.MapSize*9 {
			return nil
		}
	}

	size := info.MapSize + min(info.MapSize, maxMapStep)
	d.log.Infof("lmdb: map size %d KiB -> %d KiB", info.MapSize>>10, size>>10)
	return d.env.SetMapSize(size)
}

func (d *DB) Close() error {
	return d.env.Close()
}

type Txn struct {
	txn *lmdb.Txn
}

func dbi(idx adb.Index) (lmdb.DBI, error) {
	d, ok := idx.(lmdb.DBI)
	if !ok {
		return 0, errors.Wrapf(adb.ErrIndexNotFound, "index %v", idx)
	}
	return d, nil
}

func (t *Txn) Get(idx adb.Index, key []byte) []byte {
	d, err := dbi(idx)
	if err != nil {
		return nil
	}
	v, err := t.txn.Get(d, key)
	if err != nil {
		return nil
	}
	return v
}

func (t *Txn) Put(idx adb.Index, key, value []byte) error {
	d, err := dbi(idx)
	if err != nil {
		return err
	}
	return t.txn.Put(d, key, value, 0)
}

func (t *Txn) Del(idx adb.Index, key []byte) error {
	d, err := dbi(idx)
	if err != nil {
		return err
	}
	if err := t.txn.Del(d, key, nil); err != nil && !lmdb.IsNotFound(err) {
		return err
	}
	return nil
}

func (t *Txn) ForEach(idx adb.Index, fn func(k, v []byte) error) error {
	d, err := dbi(idx)
	if err != nil {
		return err
	}
	cur, err := t.txn.OpenCursor(d)
	if err != nil {
		return errors.Wrap(err, "open cursor")
	}
	defer cur.Close()

	op := uint(lmdb.First)
	for {
		k, v, err := cur.Get(nil, nil, op)
		if lmdb.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "cursor get")
		}
		if err := fn(k, v); err != nil {
			return adb.Stopped(err)
		}
		op = uint(lmdb.Next)
	}
}

func (t *Txn) Entries(idx adb.Index) (uint64, error) {
	d, err := dbi(idx)
	if err != nil {
		return 0, err
	}
	stat, err := t.txn.Stat(d)
	if err != nil {
		return 0, err
	}
	return stat.Entries, nil
}
