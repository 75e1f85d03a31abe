// Package checkpoints answers checkpoint queries against a network's static checkpoint
// table.
package checkpoints

import (
	"sort"

	"github.com/mogwai-project/mogwai-node/binary"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/util"

	"github.com/zeebo/blake3"
)

// Get returns the checkpointed hash at height, if any.
func Get(p *chaincfg.Params, height int32) (util.Hash, bool) {
	cps := p.Checkpoints()
	i := sort.Search(len(cps), func(i int) bool {
		return cps[i].Height >= height
	})
	if i < len(cps) && cps[i].Height == height {
		return cps[i].Hash, true
	}
	return util.Hash{}, false
}

// returns true if the given height is directly checkpointed
func IsCheckpoint(p *chaincfg.Params, height int32) bool {
	_, ok := Get(p, height)
	return ok
}

// Verify reports whether hash is acceptable at height: either the height is not
// checkpointed or the hash matches the checkpoint.
func Verify(p *chaincfg.Params, height int32, hash util.Hash) bool {
	h, ok := Get(p, height)
	return !ok || h == hash
}

// Last returns the highest checkpoint. ok is false if the network has none.
func Last(p *chaincfg.Params) (cp chaincfg.Checkpoint, ok bool) {
	cps := p.Checkpoints()
	if len(cps) == 0 {
		return chaincfg.Checkpoint{}, false
	}
	return cps[len(cps)-1], true
}

// returns true if the given height is directly or indirectly checkpointed
func IsSecured(p *chaincfg.Params, height int32) bool {
	last, ok := Last(p)
	return ok && height <= last.Height
}

// Digest hashes the checkpoint table, so nodes can compare tables cheaply.
func Digest(p *chaincfg.Params) [32]byte {
	s := binary.Ser{}
	for _, cp := range p.Checkpoints() {
		s.AddUint32(uint32(cp.Height))
		s.AddFixedByteArray(cp.Hash[:])
	}
	return blake3.Sum256(s.Output())
}
