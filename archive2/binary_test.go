package archive2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	buf := []byte{
		0x01,                   // u8 = 1
		0xFF,                   // i8 = -1
		0x00, 0x0A,             // u16 = 10
		0xFF, 0xFF,             // i16 = -1
		0x00, 0x00, 0x00, 0x2A, // u32 = 42
		0xFF, 0xFF, 0xFF, 0xFF, // i32 = -1
	}
	r := newReader(buf)

	u8, err := r.u8()
	require.NoError(t, err)
	assert.EqualValues(t, 1, u8)

	i8, err := r.i8()
	require.NoError(t, err)
	assert.EqualValues(t, -1, i8)

	u16, err := r.u16()
	require.NoError(t, err)
	assert.EqualValues(t, 10, u16)

	i16, err := r.i16()
	require.NoError(t, err)
	assert.EqualValues(t, -1, i16)

	u32, err := r.u32()
	require.NoError(t, err)
	assert.EqualValues(t, 42, u32)

	i32, err := r.i32()
	require.NoError(t, err)
	assert.EqualValues(t, -1, i32)
}

func TestReaderFloats(t *testing.T) {
	buf := make([]byte, 12)
	// float32 1.5 big-endian
	bits32 := math.Float32bits(1.5)
	buf[0] = byte(bits32 >> 24)
	buf[1] = byte(bits32 >> 16)
	buf[2] = byte(bits32 >> 8)
	buf[3] = byte(bits32)
	// float64 2.5 big-endian
	bits64 := math.Float64bits(2.5)
	for i := 0; i < 8; i++ {
		buf[4+i] = byte(bits64 >> uint(56-8*i))
	}

	r := newReader(buf)
	f32, err := r.f32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	f64, err := r.f64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f64)
}

func TestReaderStrAndSkip(t *testing.T) {
	buf := []byte("ABCDEFGH")
	r := newReader(buf)
	s, err := r.str(4)
	require.NoError(t, err)
	assert.Equal(t, "ABCD", s)

	require.NoError(t, r.skip(2))

	s2, err := r.str(2)
	require.NoError(t, err)
	assert.Equal(t, "GH", s2)
}

func TestReaderBufferTooShort(t *testing.T) {
	r := newReader([]byte{0x00, 0x01})
	_, err := r.u32()
	assert.True(t, IsBufferTooShort(err))
}

func TestReaderPeekStr(t *testing.T) {
	buf := []byte("xxxVOLyyy")
	r := newReader(buf)
	s, err := r.peekStr(3, 3)
	require.NoError(t, err)
	assert.Equal(t, "VOL", s)

	// peeking should not move the cursor
	assert.Equal(t, 0, r.pos)
}
