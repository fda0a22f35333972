// Package binary provides the little-endian, fixed-width cursor used to
// decode a Maru module file. Unlike a LEB128 wire format, every field in
// the container is a packed fixed-width integer, so the reader only
// needs to track position for diagnostics and hand back raw byte runs.
package binary

import (
	"encoding/binary"
	"unicode/utf8"
)

// Reader is a position-tracking cursor over a module file's byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential reading from offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, bool) {
	if r.Len() < 1 {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, bool) {
	if n < 0 || r.Len() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, bool) {
	b, ok := r.ReadBytes(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, bool) {
	v, ok := r.ReadU32()
	return int32(v), ok
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, bool) {
	b, ok := r.ReadBytes(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

// ReadCString reads bytes up to (and consuming) the next NUL byte and
// validates them as UTF-8. The returned bool is false if no NUL was
// found before the input ran out, or the bytes were not valid UTF-8.
func (r *Reader) ReadCString() (string, bool) {
	end := -1
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			end = i
			break
		}
	}
	if end < 0 {
		return "", false
	}
	raw := r.data[r.pos:end]
	if !utf8.Valid(raw) {
		return "", false
	}
	s := string(raw)
	r.pos = end + 1
	return s, true
}
