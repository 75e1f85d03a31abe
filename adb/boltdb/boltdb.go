// Package boltdb stores keystore indices as bbolt buckets in a single file.
package boltdb

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mogwai-project/mogwai-node/adb"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// lockTimeout bounds the wait for the file lock held by another process.
const lockTimeout = 2 * time.Second

var _ adb.DB = &DB{}

type DB struct {
	db *bolt.DB
}

func New(path string, mode os.FileMode) (*DB, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, mode, &bolt.Options{
		Timeout:        lockTimeout,
		NoFreelistSync: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &DB{db: db}, nil
}

// Index returns the bucket name as the handle.
func (d *DB) Index(name string) (adb.Index, error) {
	err := d.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create bucket %s", name)
	}
	return []byte(name), nil
}

func txFunc(fn func(adb.Txn) error) func(*bolt.Tx) error {
	return func(tx *bolt.Tx) error {
		return fn(&Txn{tx: tx})
	}
}

func (d *DB) View(fn func(adb.Txn) error) error {
	return d.db.View(txFunc(fn))
}

func (d *DB) Update(fn func(adb.Txn) error) error {
	return d.db.Update(txFunc(fn))
}

func (d *DB) Close() error {
	return d.db.Close()
}

type Txn struct {
	tx *bolt.Tx
}

func (t *Txn) bucket(idx adb.Index) (*bolt.Bucket, error) {
	name, ok := idx.([]byte)
	if !ok {
		return nil, errors.Wrapf(adb.ErrIndexNotFound, "index %v", idx)
	}
	b := t.tx.Bucket(name)
	if b == nil {
		return nil, errors.Wrapf(adb.ErrIndexNotFound, "bucket %s", name)
	}
	return b, nil
}

func (t *Txn) Get(idx adb.Index, key []byte) []byte {
	if b, err := t.bucket(idx); err == nil {
		return b.Get(key)
	}
	return nil
}

func (t *Txn) Put(idx adb.Index, key, value []byte) error {
	b, err := t.bucket(idx)
	if err != nil {
		return err
	}
	return b.Put(key, value)
}

func (t *Txn) Del(idx adb.Index, key []byte) error {
	b, err := t.bucket(idx)
	if err != nil {
		return err
	}
	return b.Delete(key)
}

func (t *Txn) ForEach(idx adb.Index, fn func(k, v []byte) error) error {
	b, err := t.bucket(idx)
	if err != nil {
		return err
	}
	return adb.Stopped(b.ForEach(fn))
}

func (t *Txn) Entries(idx adb.Index) (uint64, error) {
	b, err := t.bucket(idx)
	if err != nil {
		return 0, err
	}
	return uint64(b.Stats().KeyN), nil
}
