// Package binary implements the bounds-checked record codec used for extended keys,
// checkpoints and keystore entries. Fixed integers are little-endian unless the method
// name carries a BE suffix.
package binary

import "encoding/binary"

// Ser appends fields to a growing buffer.
type Ser struct {
	data []byte
}

// NewSer starts an empty record on top of buf's backing array.
func NewSer(buf []byte) Ser {
	return Ser{data: buf[:0]}
}

func (s Ser) Output() []byte { return s.data }

func (s *Ser) AddUint8(n uint8) { s.data = append(s.data, n) }

func (s *Ser) AddUint32(n uint32) { s.data = binary.LittleEndian.AppendUint32(s.data, n) }

func (s *Ser) AddUint32BE(n uint32) { s.data = binary.BigEndian.AppendUint32(s.data, n) }

// AddFixedByteArray writes a without a length prefix. The reader must know the size.
func (s *Ser) AddFixedByteArray(a []byte) { s.data = append(s.data, a...) }

// AddByteSlice writes a uvarint length followed by a.
func (s *Ser) AddByteSlice(a []byte) {
	s.data = binary.AppendUvarint(s.data, uint64(len(a)))
	s.data = append(s.data, a...)
}

func (s *Ser) AddString(a string) {
	s.data = binary.AppendUvarint(s.data, uint64(len(a)))
	s.data = append(s.data, a...)
}
