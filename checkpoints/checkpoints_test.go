package checkpoints

import (
	"testing"

	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/util"
)

func TestCheckpoints(t *testing.T) {
	p := &chaincfg.MainNetParams

	h, ok := Get(p, 100)
	if !ok || h.String() != "00000f7507d7ec543e61914078aec2ff1f97aa005855421746a9b1dad4b0e751" {
		t.Fatalf("checkpoint 100: %s %v", h, ok)
	}
	if IsCheckpoint(p, 99) || IsCheckpoint(p, 101) {
		t.Fatal("only height 100 is checkpointed on main")
	}
	if !IsSecured(p, 50) || !IsSecured(p, 100) || IsSecured(p, 101) {
		t.Fatal("unexpected IsSecured result")
	}

	if !Verify(p, 100, h) || Verify(p, 100, util.Hash{1}) {
		t.Fatal("checkpoint hash is not enforced")
	}
	if !Verify(p, 5, util.Hash{1}) {
		t.Fatal("heights without a checkpoint accept any hash")
	}

	last, ok := Last(&chaincfg.TestNetParams)
	if !ok || last.Height != 0 || last.Hash != chaincfg.TestNetParams.Genesis.Hash {
		t.Fatalf("test last checkpoint %+v", last)
	}
}

func TestNoCheckpoints(t *testing.T) {
	p := chaincfg.RegressionNetParams
	p.CheckpointData.Checkpoints = nil

	if _, ok := Last(&p); ok {
		t.Fatal("expected no checkpoints")
	}
	if IsSecured(&p, 0) || IsCheckpoint(&p, 0) {
		t.Fatal("nothing should be secured without checkpoints")
	}
}

func TestDigest(t *testing.T) {
	a := Digest(&chaincfg.MainNetParams)
	if a != Digest(&chaincfg.MainNetParams) {
		t.Fatal("digest is not deterministic")
	}
	if a == Digest(&chaincfg.TestNetParams) {
		t.Fatal("main and test tables should differ")
	}
	t.Logf("main checkpoints digest: %x", a)
}
