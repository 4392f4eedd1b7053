// Package archive2 provides structs and functions for decoding NEXRAD Archive II files.
//
// The documents used and referenced in this package:
//  • RDA/RPG: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620002T.pdf (high level details)
//  • User: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620010H.pdf (bulk of the format)
package archive2

import (
	"encoding/binary"
	"math"
)

// reader decodes big-endian primitives from an immutable byte buffer without
// aliasing it into the decoded model. It never panics; every read that would
// run past the end of buf returns errBufferTooShort.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// remaining returns the number of unread bytes left in the buffer.
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) need(n int) error {
	if n < 0 || r.remaining() < n {
		return errBufferTooShort
	}
	return nil
}

func (r *reader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

// str reads n raw bytes and returns them as a string, with no NUL-termination
// assumed and no whitespace trimming performed.
func (r *reader) str(n int) (string, error) {
	if err := r.need(n); err != nil {
		return "", err
	}
	v := string(r.buf[r.pos : r.pos+n])
	r.pos += n
	return v, nil
}

// bytes reads n raw bytes and returns a copy owned by the caller, never
// aliasing the underlying buffer.
func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// peekStr reads n bytes starting at offset off relative to the start of the
// buffer without advancing the cursor, for block-name lookahead.
func (r *reader) peekStr(off, n int) (string, error) {
	if off < 0 || off+n > len(r.buf) {
		return "", errBufferTooShort
	}
	return string(r.buf[off : off+n]), nil
}
