package bitcrypto

import (
	"errors"

	"github.com/mogwai-project/mogwai-node/binary"
	"github.com/mogwai-project/mogwai-node/config"
	"golang.org/x/crypto/argon2"
)

const SALT_SIZE = 16

// Stored parameters above these limits are rejected before any key is derived.
const (
	MAX_KDF_TIME   = 16 * config.KDF_ITERATIONS
	MAX_KDF_MEMORY = 16 * config.KDF_MEMORY
)

var (
	ErrWeakKDF   = errors.New("kdf parameters are too weak")
	ErrCostlyKDF = errors.New("kdf parameters exceed the allowed cost")
)

// KDFParams are the Argon2id parameters stored next to encrypted data.
type KDFParams struct {
	Salt   [SALT_SIZE]byte
	Time   uint32
	Memory uint32 // KiB
}

// NewKDFParams returns parameters with a fresh random salt.
func NewKDFParams(time, mem uint32) KDFParams {
	p := KDFParams{
		Time:   time,
		Memory: mem,
	}
	RandRead(p.Salt[:])
	return p
}

// Key derives a 32-byte encryption key from pass.
func (p KDFParams) Key(pass []byte) [32]byte {
	return KDF(pass, p.Salt[:], p.Time, p.Memory)
}

func (p KDFParams) Serialize(s *binary.Ser) {
	s.AddFixedByteArray(p.Salt[:])
	s.AddUint32(p.Time)
	s.AddUint32(p.Memory)
}

func (p *KDFParams) Deserialize(d *binary.Des) error {
	d.ReadInto(p.Salt[:])
	p.Time = d.ReadUint32()
	p.Memory = d.ReadUint32()
	if d.Error() != nil {
		return d.Error()
	}
	if p.Time == 0 || p.Memory < 8 {
		return ErrWeakKDF
	}
	if p.Time > MAX_KDF_TIME || p.Memory > MAX_KDF_MEMORY {
		return ErrCostlyKDF
	}
	return nil
}

// KDF derives a 32-byte encryption key with Argon2id. mem is in KiB.
func KDF(pass, salt []byte, time, mem uint32) [32]byte {
	return [32]byte(argon2.IDKey(pass, salt, time, mem, 1, 32))
}
