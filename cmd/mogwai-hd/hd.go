package main

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mogwai-project/mogwai-node/adb"
	"github.com/mogwai-project/mogwai-node/address"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/hdkey"
	"github.com/mogwai-project/mogwai-node/logger"
	"github.com/mogwai-project/mogwai-node/util"
	"github.com/mogwai-project/mogwai-node/util/enc"
	"github.com/mogwai-project/mogwai-node/wallet"

	"github.com/pkg/errors"
)

type app struct {
	params *chaincfg.Params
	log    *logger.Log

	// bip39 passphrase used by master, mnemonic and account add
	passphrase string
	json       bool

	readPassword func(prompt string) ([]byte, error)

	// the keystore is opened on first use
	openDB   func() (adb.DB, error)
	db       adb.DB
	keystore *wallet.Keystore
	fastKDF  bool
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("failed to close keystore:", err)
		}
	}
}

func (a *app) getKeystore() (*wallet.Keystore, error) {
	if a.keystore != nil {
		return a.keystore, nil
	}
	db, err := a.openDB()
	if err != nil {
		return nil, errors.Wrap(err, "open keystore database")
	}
	ks, err := wallet.OpenKeystore(db, a.params, a.log)
	if err != nil {
		db.Close()
		return nil, err
	}
	if a.fastKDF {
		ks.SetKDF(kdfFast())
	}
	a.db = db
	a.keystore = ks
	return ks, nil
}

// masterFromArgs accepts either a hex seed or the words of a mnemonic.
func (a *app) masterFromArgs(args []string) (*hdkey.ExtendedKey, error) {
	if len(args) == 1 && util.IsHex(args[0]) {
		seed, err := hex.DecodeString(args[0])
		if err != nil {
			return nil, err
		}
		defer util.Wipe(seed)
		return wallet.MasterFromSeed(seed)
	}
	return wallet.MasterFromMnemonic(strings.Join(args, " "), a.passphrase)
}

func (a *app) printKey(k *hdkey.ExtendedKey, params *chaincfg.Params) {
	if k.IsPrivate() {
		a.log.Info("xprv:", k.String(params))
	}
	a.log.Info("xpub:", k.Neuter().String(params))
}

func (a *app) cmdMaster(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: master <hex seed | mnemonic words>")
	}
	master, err := a.masterFromArgs(args)
	if err != nil {
		return err
	}
	defer master.Zero()

	a.printKey(master, a.params)
	fp := master.Fingerprint()
	a.log.Info("fingerprint:", enc.Hex(fp[:]))
	return nil
}

func (a *app) cmdMnemonic(args []string) error {
	mnemonic, err := wallet.NewMnemonic()
	if err != nil {
		return err
	}
	master, err := wallet.MasterFromMnemonic(mnemonic, a.passphrase)
	if err != nil {
		return err
	}
	defer master.Zero()

	a.log.Info("mnemonic:", mnemonic)
	a.log.Warn("Write down the mnemonic, it is the only way to recover the keys.")
	a.printKey(master, a.params)
	return nil
}

// decodeKey decodes an extended key of any registered network.
func decodeKey(s string) (*hdkey.ExtendedKey, *chaincfg.Params, error) {
	k, params, err := hdkey.Decode(s)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode extended key")
	}
	return k, params, nil
}

func (a *app) cmdDerive(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: derive <extended key> <path>")
	}
	k, params, err := decodeKey(args[0])
	if err != nil {
		return err
	}
	defer k.Zero()

	p, err := hdkey.ParsePath(args[1])
	if err != nil {
		return err
	}
	child, err := k.DerivePath(p)
	if err != nil {
		return err
	}
	defer child.Zero()

	a.log.Info("path:", p)
	a.printKey(child, params)
	return nil
}

func (a *app) cmdNeuter(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: neuter <extended key>")
	}
	k, params, err := decodeKey(args[0])
	if err != nil {
		return err
	}
	defer k.Zero()

	a.log.Info("xpub:", k.Neuter().String(params))
	return nil
}

type keyInfo struct {
	Network           string  `json:"network"`
	Private           bool    `json:"private"`
	Depth             uint8   `json:"depth"`
	ParentFingerprint enc.Hex `json:"parent_fingerprint"`
	ChildIndex        uint32  `json:"child_index"`
	Hardened          bool    `json:"hardened"`
	ChainCode         enc.Hex `json:"chain_code"`
	PublicKey         enc.Hex `json:"public_key"`
	Identifier        enc.Hex `json:"identifier"`
	Address           string  `json:"address"`
}

func newKeyInfo(k *hdkey.ExtendedKey, params *chaincfg.Params) keyInfo {
	fp := k.ParentFingerprint()
	cc := k.ChainCode()
	pub := k.PublicKey()
	id := k.Identifier()

	return keyInfo{
		Network:           params.Name,
		Private:           k.IsPrivate(),
		Depth:             k.Depth(),
		ParentFingerprint: fp[:],
		ChildIndex:        k.ChildIndex(),
		Hardened:          k.IsHardened(),
		ChainCode:         cc[:],
		PublicKey:         pub[:],
		Identifier:        id[:],
		Address:           address.FromPubKey(pub).Encode(params),
	}
}

func (a *app) cmdDecode(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: decode <extended key>")
	}
	k, params, err := decodeKey(args[0])
	if err != nil {
		return err
	}
	defer k.Zero()

	info := newKeyInfo(k, params)
	if a.json {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		a.log.Info(string(out))
		return nil
	}

	a.log.Info("network:           ", info.Network)
	a.log.Info("private:           ", info.Private)
	a.log.Info("depth:             ", info.Depth)
	a.log.Info("parent fingerprint:", info.ParentFingerprint)
	a.log.Info("child index:       ", info.ChildIndex, "hardened:", info.Hardened)
	a.log.Info("chain code:        ", info.ChainCode)
	a.log.Info("public key:        ", info.PublicKey)
	a.log.Info("identifier:        ", info.Identifier)
	a.log.Info("address:           ", info.Address)
	return nil
}

// cmdAddress prints the address of an extended key or WIF, or decodes an address.
func (a *app) cmdAddress(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: address <extended key | wif | address>")
	}
	s := args[0]

	if k, params, err := hdkey.Decode(s); err == nil {
		defer k.Zero()
		a.log.Info("address:", address.FromPubKey(k.PublicKey()).Encode(params))
		return nil
	}

	if w, err := address.DecodeWIF(s, a.params); err == nil {
		addr, err := w.Address()
		if err != nil {
			return err
		}
		a.log.Info("address:", addr.Encode(a.params), "compressed:", w.Compressed)
		return nil
	}

	addr, err := address.Decode(s, a.params)
	if err != nil {
		return err
	}
	a.log.Info("type:", addr.Kind)
	a.log.Info("hash:", enc.Hex(addr.Hash[:]))
	return nil
}

func (a *app) resolveAccount(ks *wallet.Keystore, s string) (wallet.AccountID, error) {
	if id, err := wallet.ParseAccountID(s); err == nil {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return wallet.AccountID{}, errors.Errorf("invalid account %q", s)
	}
	for _, v := range ks.Accounts() {
		if v.Index == uint32(n) {
			return v.ID, nil
		}
	}
	return wallet.AccountID{}, errors.Wrapf(wallet.ErrAccountNotFound, "account %d", n)
}

func (a *app) newPassword() ([]byte, error) {
	pass, err := a.readPassword("Keystore password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := a.readPassword("Repeat password: ")
	if err != nil {
		return nil, err
	}
	if string(pass) != string(confirm) {
		return nil, errors.New("password doesn't match")
	}
	return pass, nil
}

func (a *app) cmdAccount(args []string) error {
	const USAGE = "usage: account [list | add <index> <mnemonic words> | remove <account> | xprv <account>]"

	ks, err := a.getKeystore()
	if err != nil {
		return err
	}

	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		list := ks.Accounts()
		if len(list) == 0 {
			a.log.Info("no accounts in the", a.params.Name, "keystore")
		}
		for _, v := range list {
			a.log.Infof("#%d %s next %d/%d", v.Index, v.ID, v.External, v.Internal)
			a.log.Info("   ", v.XPub.String(a.params))
		}
		return nil
	case "add":
		if len(args) < 2 {
			return errors.New(USAGE)
		}
		index, err := strconv.ParseUint(args[0], 10, 31)
		if err != nil {
			return errors.Wrap(err, "invalid account index")
		}
		master, err := a.masterFromArgs(args[1:])
		if err != nil {
			return err
		}
		defer master.Zero()

		pass, err := a.newPassword()
		if err != nil {
			return err
		}
		defer util.Wipe(pass)

		id, err := ks.AddAccount(master, uint32(index), pass)
		if err != nil {
			return err
		}
		info, _ := ks.Account(id)
		a.log.Info("account id:", id)
		a.log.Info("xpub:", info.XPub.String(a.params))
		return nil
	case "remove":
		if len(args) != 1 {
			return errors.New(USAGE)
		}
		id, err := a.resolveAccount(ks, args[0])
		if err != nil {
			return err
		}
		return ks.Remove(id)
	case "xprv":
		if len(args) != 1 {
			return errors.New(USAGE)
		}
		id, err := a.resolveAccount(ks, args[0])
		if err != nil {
			return err
		}
		pass, err := a.readPassword("Keystore password: ")
		if err != nil {
			return err
		}
		defer util.Wipe(pass)

		acc, err := ks.Unlock(id, pass)
		if err != nil {
			return err
		}
		defer acc.Zero()

		a.log.Info("path:", acc.Path())
		a.log.Info("xprv:", acc.Key().String(a.params))
		return nil
	default:
		return errors.New(USAGE)
	}
}

func (a *app) cmdNext(args []string) error {
	const USAGE = "usage: next <account> [receive | change]"
	if len(args) < 1 || len(args) > 2 {
		return errors.New(USAGE)
	}

	change := wallet.External
	if len(args) == 2 {
		switch args[1] {
		case "receive", "0":
		case "change", "1":
			change = wallet.Internal
		default:
			return errors.New(USAGE)
		}
	}

	ks, err := a.getKeystore()
	if err != nil {
		return err
	}
	id, err := a.resolveAccount(ks, args[0])
	if err != nil {
		return err
	}

	addr, path, err := ks.NextAddress(id, change)
	if err != nil {
		return err
	}
	a.log.Info("address:", addr.Encode(a.params))
	a.log.Info("path:   ", path)
	return nil
}
