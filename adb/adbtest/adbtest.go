// Package adbtest holds the behaviour checks every adb backend must pass.
package adbtest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/mogwai-project/mogwai-node/adb"
)

// Run exercises db through the adb interfaces.
func Run(t *testing.T, db adb.DB) {
	idx, err := db.Index("accounts")
	if err != nil {
		t.Fatal(err)
	}
	other, err := db.Index("meta")
	if err != nil {
		t.Fatal(err)
	}

	err = db.Update(func(txn adb.Txn) error {
		for i := 0; i < 10; i++ {
			if err := txn.Put(idx, []byte(fmt.Sprintf("key%02d", i)), []byte{byte(i)}); err != nil {
				return err
			}
		}
		return txn.Put(other, []byte("version"), []byte{1})
	})
	if err != nil {
		t.Fatal(err)
	}

	err = db.View(func(txn adb.Txn) error {
		if v := txn.Get(idx, []byte("key03")); !bytes.Equal(v, []byte{3}) {
			return fmt.Errorf("key03 = %x", v)
		}
		if v := txn.Get(idx, []byte("missing")); v != nil {
			return fmt.Errorf("missing key returned %x", v)
		}
		if v := txn.Get(other, []byte("key03")); v != nil {
			return errors.New("indices are not separate")
		}

		n, err := txn.Entries(idx)
		if err != nil {
			return err
		}
		if n != 10 {
			return fmt.Errorf("%d entries", n)
		}

		var keys []string
		err = txn.ForEach(idx, func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			return err
		}
		if len(keys) != 10 || keys[0] != "key00" || keys[9] != "key09" {
			return fmt.Errorf("ForEach visited %v", keys)
		}

		visited := 0
		err = txn.ForEach(idx, func(k, v []byte) error {
			if visited++; visited == 3 {
				return adb.ErrStop
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("ErrStop leaked out of ForEach: %v", err)
		}
		if visited != 3 {
			return fmt.Errorf("ForEach visited %d entries before stopping", visited)
		}

		stop := errors.New("stop")
		if err := txn.ForEach(idx, func(k, v []byte) error { return stop }); !errors.Is(err, stop) {
			return fmt.Errorf("ForEach did not return the callback error: %v", err)
		}
		if _, err := txn.Entries("bogus"); !errors.Is(err, adb.ErrIndexNotFound) {
			return fmt.Errorf("foreign index handle: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	err = db.Update(func(txn adb.Txn) error {
		if err := txn.Del(idx, []byte("key03")); err != nil {
			return err
		}
		return txn.Del(idx, []byte("missing"))
	})
	if err != nil {
		t.Fatal(err)
	}

	// a failed update is rolled back
	rollback := errors.New("rollback")
	err = db.Update(func(txn adb.Txn) error {
		if err := txn.Put(idx, []byte("key99"), []byte{99}); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("expected the update error, got %v", err)
	}

	err = db.View(func(txn adb.Txn) error {
		if txn.Get(idx, []byte("key03")) != nil {
			return errors.New("deleted key is still present")
		}
		if txn.Get(idx, []byte("key99")) != nil {
			return errors.New("rolled back key is present")
		}
		n, err := txn.Entries(idx)
		if err != nil {
			return err
		}
		if n != 9 {
			return fmt.Errorf("%d entries after delete", n)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
