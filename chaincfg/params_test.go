package chaincfg_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/mogwai-project/mogwai-node/base58"
	. "github.com/mogwai-project/mogwai-node/chaincfg"
)

func TestVersionPrefixes(t *testing.T) {
	tests := []struct {
		params *Params
		pub    string
		priv   string
	}{
		{&MainNetParams, "mpub", "mprv"},
		{&TestNetParams, "tpub", "tprv"},
		{&RegressionNetParams, "tpub", "tprv"},
	}
	for _, tt := range tests {
		for _, fill := range []byte{0x00, 0xff} {
			body := make([]byte, 74)
			for i := range body {
				body[i] = fill
			}
			pub := tt.params.HDVersion(false)
			s := base58.CheckEncodeVersion(pub[:], body)
			if !strings.HasPrefix(s, tt.pub) {
				t.Errorf("%s: public key %q does not start with %s", tt.params.Name, s, tt.pub)
			}
			priv := tt.params.HDVersion(true)
			s = base58.CheckEncodeVersion(priv[:], body)
			if !strings.HasPrefix(s, tt.priv) {
				t.Errorf("%s: private key %q does not start with %s", tt.params.Name, s, tt.priv)
			}
		}
	}
}

func TestAddressPrefixes(t *testing.T) {
	tests := []struct {
		params *Params
		pkh    string
		sh     []string
	}{
		{&MainNetParams, "M", []string{"7"}},
		{&TestNetParams, "t", []string{"8", "9"}},
		{&RegressionNetParams, "m", []string{"8", "9"}},
	}
	for _, tt := range tests {
		for _, fill := range []byte{0x00, 0xff} {
			hash := make([]byte, 20)
			for i := range hash {
				hash[i] = fill
			}
			s := base58.CheckEncodeVersion([]byte{tt.params.PubKeyHashAddrID}, hash)
			if !strings.HasPrefix(s, tt.pkh) {
				t.Errorf("%s: p2pkh %q does not start with %s", tt.params.Name, s, tt.pkh)
			}
			s = base58.CheckEncodeVersion([]byte{tt.params.ScriptHashAddrID}, hash)
			if !strings.HasPrefix(s, tt.sh[0]) && !strings.HasPrefix(s, tt.sh[len(tt.sh)-1]) {
				t.Errorf("%s: p2sh %q does not start with %v", tt.params.Name, s, tt.sh)
			}
		}
	}
}

func TestStaticValues(t *testing.T) {
	if MainNetParams.Net != [4]byte{0x91, 0x70, 0xca, 0xca} || MainNetParams.DefaultPort != 17777 {
		t.Fatal("unexpected main network magic or port")
	}
	if MainNetParams.HDCoinType != 5 || TestNetParams.HDCoinType != 1 || RegressionNetParams.HDCoinType != 1 {
		t.Fatal("unexpected BIP44 coin types")
	}
	if MainNetParams.Genesis.Hash.String() != "000006ba48cbdecd71bc411a3e0b609f1acab9806fc652040f247c8b86831d06" {
		t.Fatalf("main genesis %s", MainNetParams.Genesis.Hash)
	}
	if MainNetParams.Consensus.BIP34Hash != MainNetParams.Genesis.Hash {
		t.Fatal("main BIP34 hash should be the genesis hash")
	}
	if TestNetParams.Genesis.MerkleRoot != MainNetParams.Genesis.MerkleRoot {
		t.Fatal("test and main share the genesis merkle root")
	}
	if RegressionNetParams.Consensus.BIP34Height != -1 || !RegressionNetParams.Consensus.BIP34Hash.IsZero() {
		t.Fatal("regtest BIP34 should be unset")
	}
	if RegressionNetParams.Consensus.PowLimit[0] != 0x7f {
		t.Fatalf("regtest pow limit %s", RegressionNetParams.Consensus.PowLimit)
	}
	if TestNetParams.Consensus.PowTargetSpacing.Seconds() != 111 {
		t.Fatalf("test target spacing %v", TestNetParams.Consensus.PowTargetSpacing)
	}
	if d := TestNetParams.Consensus.Deployments[DeploymentDIP0001]; d.WindowSize != 4032 || d.Threshold != 3226 {
		t.Fatalf("test DIP0001 deployment %+v", d)
	}
	if len(RegressionNetParams.DNSSeeds) != 0 || len(MainNetParams.DNSSeeds) != 4 {
		t.Fatal("unexpected DNS seed count")
	}

	for _, p := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		cps := p.Checkpoints()
		if len(cps) == 0 {
			t.Fatalf("%s has no checkpoints", p.Name)
		}
		if p.HDPrivateKeyID == p.HDPublicKeyID {
			t.Fatalf("%s: private and public versions must differ", p.Name)
		}
	}
}

func TestParamsForName(t *testing.T) {
	tests := []struct {
		name string
		want *Params
	}{
		{"main", &MainNetParams},
		{"mainnet", &MainNetParams},
		{"test", &TestNetParams},
		{"testnet", &TestNetParams},
		{"regtest", &RegressionNetParams},
	}
	for _, tt := range tests {
		p, err := ParamsForName(tt.name)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if p != tt.want {
			t.Fatalf("%s resolved to %s", tt.name, p.Name)
		}
	}
	if _, err := ParamsForName("simnet"); !errors.Is(err, ErrUnknownNet) {
		t.Fatalf("expected ErrUnknownNet, got %v", err)
	}
}

func TestHDVersionInfo(t *testing.T) {
	p, private, err := HDVersionInfo([4]byte{0x03, 0xa3, 0xf9, 0x89})
	if err != nil || p != &MainNetParams || !private {
		t.Fatalf("mprv: %v %v %v", p, private, err)
	}
	p, private, err = HDVersionInfo([4]byte{0x03, 0xa3, 0xfd, 0xc2})
	if err != nil || p != &MainNetParams || private {
		t.Fatalf("mpub: %v %v %v", p, private, err)
	}

	// shared with regtest, test was registered first
	p, private, err = HDVersionInfo(RegressionNetParams.HDPublicKeyID)
	if err != nil || p != &TestNetParams || private {
		t.Fatalf("tpub: %v %v %v", p, private, err)
	}

	if _, _, err = HDVersionInfo([4]byte{0x04, 0x88, 0xb2, 0x1e}); !errors.Is(err, ErrUnknownHDKeyID) {
		t.Fatalf("expected ErrUnknownHDKeyID for xpub, got %v", err)
	}

	id, err := HDPrivateKeyToPublicKeyID(MainNetParams.HDPrivateKeyID)
	if err != nil || id != MainNetParams.HDPublicKeyID {
		t.Fatalf("private to public id: %x %v", id, err)
	}
	if _, err = HDPrivateKeyToPublicKeyID(MainNetParams.HDPublicKeyID); !errors.Is(err, ErrUnknownHDKeyID) {
		t.Fatalf("public id should not resolve as private: %v", err)
	}
}

func TestAddrIDs(t *testing.T) {
	for _, id := range []byte{50, 127, 110} {
		if !IsPubKeyHashAddrID(id) {
			t.Errorf("%d should be a p2pkh prefix", id)
		}
	}
	for _, id := range []byte{16, 19} {
		if !IsScriptHashAddrID(id) {
			t.Errorf("%d should be a p2sh prefix", id)
		}
	}
	if IsPubKeyHashAddrID(0) || IsScriptHashAddrID(5) || IsPubKeyHashAddrID(16) {
		t.Error("bitcoin prefixes should not be registered")
	}
}

func TestRegister(t *testing.T) {
	dup := MainNetParams
	dup.Name = "main-copy"
	if err := Register(&dup); !errors.Is(err, ErrDuplicateNet) {
		t.Fatalf("duplicate magic: expected ErrDuplicateNet, got %v", err)
	}

	dup = TestNetParams
	dup.Net = [4]byte{1, 2, 3, 4}
	if err := Register(&dup); !errors.Is(err, ErrDuplicateNet) {
		t.Fatalf("duplicate name: expected ErrDuplicateNet, got %v", err)
	}

	custom := RegressionNetParams
	custom.Name = "devnet"
	custom.Net = [4]byte{0xd0, 0x70, 0xcd, 0xcd}
	custom.PubKeyHashAddrID = 30
	custom.HDPrivateKeyID = [4]byte{0x02, 0x00, 0x00, 0x01}
	custom.HDPublicKeyID = [4]byte{0x02, 0x00, 0x00, 0x02}
	if err := Register(&custom); err != nil {
		t.Fatal(err)
	}

	p, err := ParamsForName("devnet")
	if err != nil || p != &custom {
		t.Fatalf("devnet lookup: %v", err)
	}
	p, private, err := HDVersionInfo(custom.HDPrivateKeyID)
	if err != nil || p != &custom || !private {
		t.Fatalf("devnet version lookup: %v", err)
	}
	if !IsPubKeyHashAddrID(30) {
		t.Fatal("devnet prefix not registered")
	}
	if !slices.Contains(Nets(), "devnet") || !slices.Contains(Nets(), "regtest") {
		t.Fatalf("nets: %v", Nets())
	}
}
