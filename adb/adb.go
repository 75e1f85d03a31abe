// Package adb abstracts the key/value stores the keystore persists to. Backends live in
// the boltdb and lmdb subpackages and share the checks in adbtest.
package adb

import "errors"

var (
	ErrIndexNotFound = errors.New("index not found")

	// ErrStop ends a ForEach early. ForEach then returns nil.
	ErrStop = errors.New("stop iteration")
)

type DB interface {
	// Index opens the named index, creating it if needed.
	Index(name string) (Index, error)

	View(fn func(Txn) error) error
	// Update runs fn in a write transaction that is rolled back when fn fails.
	Update(fn func(Txn) error) error
	Close() error
}

// Index is a backend specific handle: a bucket name for bbolt, a DBI for LMDB.
type Index any

type Txn interface {
	// Get returns nil when the key is missing. The value is only valid during the
	// transaction.
	Get(idx Index, key []byte) []byte
	Put(idx Index, key, value []byte) error
	// Del succeeds when the key is missing.
	Del(idx Index, key []byte) error
	// ForEach visits entries in key order.
	ForEach(idx Index, fn func(k, v []byte) error) error
	Entries(idx Index) (uint64, error)
}

// Stopped maps ErrStop to nil and returns other errors unchanged.
func Stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
