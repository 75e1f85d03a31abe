package chaincfg

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mogwai-project/mogwai-node/util"
)

var (
	// ErrDuplicateNet is returned by Register when a network with the same magic or
	// name is already registered.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet is returned when a network name does not resolve.
	ErrUnknownNet = errors.New("unknown network")

	// ErrUnknownHDKeyID is returned when an extended key version matches no
	// registered network.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

// registry is written only by Register, which callers run during init.
type registry struct {
	util.RWMutex

	nets   map[[4]byte]*Params
	names  map[string]*Params
	pkh    map[byte]struct{}
	sh     map[byte]struct{}
	hdPriv map[[4]byte]*Params
	hdPub  map[[4]byte]*Params
}

var reg = registry{
	nets:   make(map[[4]byte]*Params),
	names:  make(map[string]*Params),
	pkh:    make(map[byte]struct{}),
	sh:     make(map[byte]struct{}),
	hdPriv: make(map[[4]byte]*Params),
	hdPub:  make(map[[4]byte]*Params),
}

// aliases maps the command line spellings to network names.
var aliases = map[string]string{
	"mainnet":  "main",
	"testnet":  "test",
	"testnet3": "test",
}

// Register adds a network to the registry. Version bytes that another network already
// uses keep resolving to the network registered first.
func Register(p *Params) error {
	reg.Lock()
	defer reg.Unlock()

	if _, ok := reg.nets[p.Net]; ok {
		return fmt.Errorf("%w: magic %x", ErrDuplicateNet, p.Net)
	}
	if _, ok := reg.names[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateNet, p.Name)
	}

	reg.nets[p.Net] = p
	reg.names[p.Name] = p
	reg.pkh[p.PubKeyHashAddrID] = struct{}{}
	reg.sh[p.ScriptHashAddrID] = struct{}{}
	if _, ok := reg.hdPriv[p.HDPrivateKeyID]; !ok {
		reg.hdPriv[p.HDPrivateKeyID] = p
	}
	if _, ok := reg.hdPub[p.HDPublicKeyID]; !ok {
		reg.hdPub[p.HDPublicKeyID] = p
	}
	return nil
}

func mustRegister(p *Params) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// ParamsForName returns the registered network with the given name. "mainnet" and
// "testnet" are accepted for main and test.
func ParamsForName(name string) (*Params, error) {
	if n, ok := aliases[name]; ok {
		name = n
	}

	reg.RLock()
	defer reg.RUnlock()

	p, ok := reg.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return p, nil
}

// HDVersionInfo resolves an extended key version to its network and reports whether
// it is the private variant. Test and regtest share version bytes; they resolve to
// test.
func HDVersionInfo(version [4]byte) (*Params, bool, error) {
	reg.RLock()
	defer reg.RUnlock()

	if p, ok := reg.hdPriv[version]; ok {
		return p, true, nil
	}
	if p, ok := reg.hdPub[version]; ok {
		return p, false, nil
	}
	return nil, false, fmt.Errorf("%w: %x", ErrUnknownHDKeyID, version)
}

// HDPrivateKeyToPublicKeyID returns the public version bytes paired with a private
// version.
func HDPrivateKeyToPublicKeyID(id [4]byte) ([4]byte, error) {
	reg.RLock()
	defer reg.RUnlock()

	p, ok := reg.hdPriv[id]
	if !ok {
		return [4]byte{}, fmt.Errorf("%w: %x", ErrUnknownHDKeyID, id)
	}
	return p.HDPublicKeyID, nil
}

// IsPubKeyHashAddrID reports whether id is the pay-to-pubkey-hash prefix of any
// registered network.
func IsPubKeyHashAddrID(id byte) bool {
	reg.RLock()
	defer reg.RUnlock()

	_, ok := reg.pkh[id]
	return ok
}

// IsScriptHashAddrID reports whether id is the pay-to-script-hash prefix of any
// registered network.
func IsScriptHashAddrID(id byte) bool {
	reg.RLock()
	defer reg.RUnlock()

	_, ok := reg.sh[id]
	return ok
}

// Nets returns the names of the registered networks.
func Nets() []string {
	reg.RLock()
	defer reg.RUnlock()

	names := make([]string, 0, len(reg.names))
	for n := range reg.names {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}
