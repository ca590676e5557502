package vtline

import (
	"encoding/binary"
	"math"
)

// maxArgStorage bounds arg_storage, the byte buffer holding serialized
// typed argument values (§3).
const maxArgStorage = 256

// Argument-kind tags interleaved into the token stream ahead of an
// arg_storage offset (§6). They are negative so they can never collide
// with a real (non-negative) grammar token ID.
const (
	TagInteger = -1
	TagFloat   = -2
	TagString  = -3
)

// ParsedLine is the output of a successful tokenization, delivered to the
// parse callback (§6). Tokens is terminated by a trailing 0, mirroring the
// source's sentinel convention even though Go callers can just use len().
//
// Host-order serialization: the source reinterprets arg_storage bytes
// in-place as native int/float representation (§9 Design Notes). Go has no
// safe reinterpret-cast of a byte slice, so values are encoded/decoded
// explicitly below using little-endian, a fixed and documented convention
// rather than true host order.
type ParsedLine struct {
	Tokens     []int
	ArgStorage []byte
	LastEntry  *TokenEntry
}

// argWriter accumulates serialized argument values into a fixed-capacity
// buffer, returning the offset at which each value was written.
type argWriter struct {
	buf [maxArgStorage]byte
	n   int
}

func (w *argWriter) putInt(v int64) int {
	off := w.n
	binary.LittleEndian.PutUint64(w.buf[off:], uint64(v))
	w.n += 8
	return off
}

func (w *argWriter) putFloat(v float64) int {
	off := w.n
	binary.LittleEndian.PutUint64(w.buf[off:], math.Float64bits(v))
	w.n += 8
	return off
}

func (w *argWriter) putString(s []byte) int {
	off := w.n
	binary.LittleEndian.PutUint16(w.buf[off:], uint16(len(s)))
	copy(w.buf[off+2:], s)
	w.n += 2 + len(s)
	return off
}

// DecodeInt reads an INTEGER argument value previously written at off.
func DecodeInt(argStorage []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint64(argStorage[off:]))
}

// DecodeFloat reads a FLOAT argument value previously written at off.
func DecodeFloat(argStorage []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(argStorage[off:]))
}

// DecodeString reads a STRING argument value previously written at off.
func DecodeString(argStorage []byte, off int) []byte {
	n := binary.LittleEndian.Uint16(argStorage[off:])
	return argStorage[off+2 : off+2+int(n)]
}
