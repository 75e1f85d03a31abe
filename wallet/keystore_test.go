package wallet

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mogwai-project/mogwai-node/adb"
	"github.com/mogwai-project/mogwai-node/adb/boltdb"
	"github.com/mogwai-project/mogwai-node/adb/lmdb"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/logger"
)

var testPass = []byte("correct horse battery staple")

func openTestKeystore(t *testing.T, db adb.DB, params *chaincfg.Params) *Keystore {
	ks, err := OpenKeystore(db, params, logger.DiscardLog)
	if err != nil {
		t.Fatal(err)
	}
	ks.SetKDF(1, 64)
	return ks
}

func openBolt(t *testing.T, path string) *boltdb.DB {
	db, err := boltdb.New(path, 0o600)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestKeystore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")
	db := openBolt(t, path)
	ks := openTestKeystore(t, db, mainnet)

	master := testMaster(t)
	id, err := ks.AddAccount(master, 0, testPass)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ks.AddAccount(master, 0, testPass); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	info, err := ks.Account(id)
	if err != nil {
		t.Fatal(err)
	}
	if s := info.XPub.String(mainnet); s != accountVectors[0].xpub {
		t.Fatalf("stored xpub %s", s)
	}

	for i := 0; i < 2; i++ {
		addr, p, err := ks.NextAddress(id, External)
		if err != nil {
			t.Fatal(err)
		}
		if addr.Encode(mainnet) != accountVectors[0].external[i] {
			t.Fatalf("address %d: %s", i, addr.Encode(mainnet))
		}
		if p[len(p)-1] != uint32(i) {
			t.Fatalf("path %s", p)
		}
	}
	if _, _, err := ks.NextAddress(id, Internal); err != nil {
		t.Fatal(err)
	}

	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	// cursors and keys survive a reopen
	db = openBolt(t, path)
	defer db.Close()
	ks = openTestKeystore(t, db, mainnet)

	list := ks.Accounts()
	if len(list) != 1 || list[0].ID != id || list[0].External != 2 || list[0].Internal != 1 {
		t.Fatalf("accounts after reopen: %+v", list)
	}

	if _, err := ks.Unlock(id, []byte("wrong")); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	acc, err := ks.Unlock(id, testPass)
	if err != nil {
		t.Fatal(err)
	}
	defer acc.Zero()
	if acc.IsWatchOnly() || acc.ExtendedPublicKey() != accountVectors[0].xpub {
		t.Fatal("unlocked account does not match")
	}
	if acc.NextIndex(External) != 2 || acc.NextIndex(Internal) != 1 {
		t.Fatal("unlocked account lost its cursors")
	}
	addr, _, err := acc.NextAddress(External)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Encode(mainnet) != accountVectors[0].external[2] {
		t.Fatalf("address 2: %s", addr.Encode(mainnet))
	}

	if err := ks.Remove(id); err != nil {
		t.Fatal(err)
	}
	if len(ks.Accounts()) != 0 {
		t.Fatal("account not removed")
	}
	if err := ks.Remove(id); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if _, err := ks.Unlock(id, testPass); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestKeystoreNetworks(t *testing.T) {
	db := openBolt(t, filepath.Join(t.TempDir(), "keystore.db"))
	defer db.Close()

	master := testMaster(t)
	mainKS := openTestKeystore(t, db, mainnet)
	if _, err := mainKS.AddAccount(master, 0, testPass); err != nil {
		t.Fatal(err)
	}
	if _, err := mainKS.AddAccount(master, 1, testPass); err != nil {
		t.Fatal(err)
	}

	testKS := openTestKeystore(t, db, &chaincfg.TestNetParams)
	if len(testKS.Accounts()) != 0 {
		t.Fatal("testnet keystore sees mainnet accounts")
	}
	id, err := testKS.AddAccount(master, 0, testPass)
	if err != nil {
		t.Fatal(err)
	}
	info, _ := testKS.Account(id)
	if info.XPub.String(&chaincfg.TestNetParams) != accountVectors[1].xpub {
		t.Fatal("testnet account uses the wrong coin type")
	}

	list := mainKS.Accounts()
	if len(list) != 2 || list[0].Index != 0 || list[1].Index != 1 {
		t.Fatalf("mainnet accounts: %+v", list)
	}
}

func TestKeystoreLMDB(t *testing.T) {
	db, err := lmdb.New(filepath.Join(t.TempDir(), "keystore"), 0o600, logger.DiscardLog)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ks := openTestKeystore(t, db, mainnet)
	id, err := ks.AddAccount(testMaster(t), 0, testPass)
	if err != nil {
		t.Fatal(err)
	}
	addr, _, err := ks.NextAddress(id, External)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Encode(mainnet) != accountVectors[0].external[0] {
		t.Fatalf("address %s", addr.Encode(mainnet))
	}

	reopened := openTestKeystore(t, db, mainnet)
	acc, err := reopened.Unlock(id, testPass)
	if err != nil {
		t.Fatal(err)
	}
	defer acc.Zero()
	if acc.NextIndex(External) != 1 {
		t.Fatalf("next index %d", acc.NextIndex(External))
	}
}

func TestKeystoreConcurrentNextAddress(t *testing.T) {
	db := openBolt(t, filepath.Join(t.TempDir(), "keystore.db"))
	defer db.Close()

	ks := openTestKeystore(t, db, mainnet)
	id, err := ks.AddAccount(testMaster(t), 0, testPass)
	if err != nil {
		t.Fatal(err)
	}

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, _, err := ks.NextAddress(id, External)
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			seen[addr.Encode(mainnet)] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers {
		t.Fatalf("%d distinct addresses for %d calls", len(seen), workers)
	}
	info, _ := ks.Account(id)
	if info.External != workers {
		t.Fatalf("cursor at %d", info.External)
	}
}

func TestKeystoreLockNotExported(t *testing.T) {
	db := openBolt(t, filepath.Join(t.TempDir(), "keystore.db"))
	defer db.Close()

	ks := openTestKeystore(t, db, mainnet)
	if _, ok := any(ks).(interface{ Lock() }); ok {
		t.Fatal("keystore exposes its mutex")
	}
	if _, ok := any(ks).(interface{ RLock() }); ok {
		t.Fatal("keystore exposes its mutex")
	}
}

func TestKeystoreMismatchedEntry(t *testing.T) {
	db := openBolt(t, filepath.Join(t.TempDir(), "keystore.db"))
	defer db.Close()

	ks := openTestKeystore(t, db, mainnet)
	id, err := ks.AddAccount(testMaster(t), 0, testPass)
	if err != nil {
		t.Fatal(err)
	}

	// an entry copied under another account id is rejected
	err = db.Update(func(txn adb.Txn) error {
		v := txn.Get(ks.index, id[:])
		other := id
		other[0] ^= 1
		return txn.Put(ks.index, other[:], append([]byte(nil), v...))
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := OpenKeystore(db, mainnet, logger.DiscardLog); err == nil {
		t.Fatal("mismatched entry accepted")
	}
}

func TestAccountID(t *testing.T) {
	var id AccountID
	id[0], id[31] = 0xab, 0x01
	parsed, err := ParseAccountID(id.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != id {
		t.Fatal("account id does not round trip")
	}
	for _, s := range []string{"", "ab", id.String() + "00", "zz" + id.String()[2:]} {
		if _, err := ParseAccountID(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}
