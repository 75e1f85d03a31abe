package binary

import (
	"encoding/binary"
	"errors"
	"path"
	"runtime"
	"strconv"
)

// ErrShortData is wrapped by every length error reported by Des.
var ErrShortData = errors.New("invalid length")

// Des reads fields from a byte slice. The first failure is sticky: later reads return
// zero values and Error reports the original failure.
type Des struct {
	data []byte
	err  error
}

func NewDes(data []byte) Des {
	return Des{data: data}
}

// RemainingData returns the bytes not consumed yet.
func (d Des) RemainingData() []byte { return d.data }

func (d *Des) Error() error { return d.err }

type shortErr struct{ at string }

func (e shortErr) Error() string { return e.at + ": " + ErrShortData.Error() }
func (e shortErr) Unwrap() error { return ErrShortData }

// take consumes n bytes. It returns nil once the reader has failed.
func (d *Des) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || len(d.data) < n {
		d.err = shortErr{caller(3)}
		return nil
	}
	b := d.data[:n:n]
	d.data = d.data[n:]
	return b
}

func (d *Des) ReadUint8() uint8 {
	if b := d.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (d *Des) ReadUint32() uint32 {
	if b := d.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (d *Des) ReadUint32BE() uint32 {
	if b := d.take(4); b != nil {
		return binary.BigEndian.Uint32(b)
	}
	return 0
}

// ReadFixedByteArray returns a copy of the next length bytes. On failure it still
// returns length zero bytes.
func (d *Des) ReadFixedByteArray(length int) []byte {
	out := make([]byte, length)
	copy(out, d.take(length))
	return out
}

// ReadInto fills dst from the next len(dst) bytes.
func (d *Des) ReadInto(dst []byte) {
	copy(dst, d.take(len(dst)))
}

// ReadByteSlice reads a uvarint length prefix and that many bytes.
func (d *Des) ReadByteSlice() []byte {
	if d.err != nil {
		return []byte{}
	}
	length, n := binary.Uvarint(d.data)
	if n <= 0 {
		if n == 0 {
			d.err = shortErr{caller(2)}
		} else {
			d.err = errors.New(caller(2) + ": invalid uvarint length")
		}
		return []byte{}
	}
	if length > uint64(len(d.data)-n) {
		d.err = shortErr{caller(2)}
		return []byte{}
	}
	d.data = d.data[n:]
	return append([]byte{}, d.take(int(length))...)
}

func (d *Des) ReadString() string {
	return string(d.ReadByteSlice())
}

// caller names the file and line skip frames above it.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}
	return path.Base(file) + ":" + strconv.Itoa(line)
}
