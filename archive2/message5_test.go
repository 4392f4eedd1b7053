package archive2

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMessage5Body(patternNumber uint16, cuts []uint16) []byte {
	var buf bytes.Buffer
	putU16(&buf, 1)             // pattern type
	putU16(&buf, patternNumber) // pattern number
	putU16(&buf, uint16(len(cuts)))
	putU16(&buf, 0) // clutter map group
	buf.WriteByte(0) // doppler vel resolution
	buf.WriteByte(0) // pulse width
	padding := make([]byte, message5HeaderLength-10)
	for i := range padding {
		padding[i] = 0xAA // distinguishable from the cut fields that follow
	}
	buf.Write(padding)

	for _, raw := range cuts {
		putU16(&buf, raw) // elevation angle raw
		buf.WriteByte(0)  // channel config
		buf.WriteByte(0)  // waveform type
		buf.WriteByte(0)  // super res flags
		buf.WriteByte(0)  // prf number
		putU16(&buf, 0)   // prf pulse count
		putU16(&buf, 0)   // azimuth rate
		putU16(&buf, 0)   // reflectivity threshold
		putU16(&buf, 0)   // velocity threshold
		putU16(&buf, 0)   // spectrum width threshold
		putU16(&buf, 0)   // zdr threshold
		putU16(&buf, 0)   // phi threshold
		putU16(&buf, 0)   // rho threshold
		for i := 0; i < 3; i++ {
			putU16(&buf, 0) // edge angle
			putU16(&buf, 0) // doppler prf number
			putU16(&buf, 0) // doppler prf pulse count
			putU16(&buf, 0) // spare
		}
	}

	return buf.Bytes()
}

func TestDecodeMessage5(t *testing.T) {
	body := buildMessage5Body(212, []uint16{0, 16384, 32768})

	vcp, err := decodeMessage5(body)
	require.NoError(t, err)

	assert.EqualValues(t, 212, vcp.PatternNumber)
	require.Len(t, vcp.Cuts, 3)

	assert.InDelta(t, 0.0, vcp.Cuts[0].ElevationAngleDegrees(), 1e-6)
	assert.InDelta(t, 90.0, vcp.Cuts[1].ElevationAngleDegrees(), 1e-6)
	assert.InDelta(t, 180.0, vcp.Cuts[2].ElevationAngleDegrees(), 1e-6)
}

// TestDecodeMessage5_HeaderLengthMatchesFixedFields guards against the
// header skip drifting out of sync with the 22-byte header again: it builds
// a record with exactly message5HeaderLength bytes before the first cut and
// checks that the cut's own fields, not header padding, land in ElevationAngleRaw
// and ReflectivityThreshold.
func TestDecodeMessage5_HeaderLengthMatchesFixedFields(t *testing.T) {
	var buf bytes.Buffer
	putU16(&buf, 1)    // pattern type
	putU16(&buf, 1)    // pattern number
	putU16(&buf, 1)    // num cuts
	putU16(&buf, 0)    // clutter map group
	buf.WriteByte(0)   // doppler vel resolution
	buf.WriteByte(0)   // pulse width
	require.Equal(t, 10, buf.Len())
	buf.Write(make([]byte, message5HeaderLength-10))
	require.Equal(t, message5HeaderLength, buf.Len())

	putU16(&buf, 8192) // elevation angle raw -> 45 degrees
	buf.WriteByte(0)    // channel config
	buf.WriteByte(0)    // waveform type
	buf.WriteByte(0)    // super res flags
	buf.WriteByte(0)    // prf number
	putU16(&buf, 0)     // prf pulse count
	putU16(&buf, 0)     // azimuth rate
	putU16(&buf, uint16(int16(-321))) // reflectivity threshold, distinct nonzero value
	for i := 0; i < 5+3*4; i++ {
		putU16(&buf, 0)
	}

	vcp, err := decodeMessage5(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, vcp.Cuts, 1)
	assert.InDelta(t, 45.0, vcp.Cuts[0].ElevationAngleDegrees(), 1e-6)
	assert.EqualValues(t, -321, vcp.Cuts[0].ReflectivityThreshold)
}
