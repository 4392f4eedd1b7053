package archive2

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMessage1Record assembles a legacy radial record starting at its
// message header: the 48 leading bytes of the legacy header that
// decodeMessage1 reads, followed directly by the gate arrays. An empty
// spectrum-width array leaves its pointer at zero.
func buildMessage1Record(elevationNumber uint16, azCode uint16, refCodes, velCodes, swCodes []byte, dopplerResolution uint16) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 16)) // message header, unused by decodeMessage1

	putU32(&buf, 7200000)  // collection ms
	putU16(&buf, 20000)    // collection date
	putU16(&buf, 460)      // unambiguous range (decameters)
	putU16(&buf, azCode)   // azimuth angle code
	putU16(&buf, 12)       // azimuth number
	putU16(&buf, 0)        // radial status
	binWriteI16(&buf, 40)  // elevation angle code (5.0deg)
	putU16(&buf, elevationNumber)
	binWriteI16(&buf, 0)   // surveillance first gate
	binWriteI16(&buf, 0)   // doppler first gate
	binWriteI16(&buf, 250) // surveillance gate spacing
	binWriteI16(&buf, 250) // doppler gate spacing
	putU16(&buf, uint16(len(refCodes)))
	putU16(&buf, uint16(len(velCodes)))
	binWriteI16(&buf, 0) // cut sector number
	putF32(&buf, 0)      // calib const

	headerLen := 16 + 48 // message header plus the legacy header fields, pointers included
	_ = headerLen

	refOff := 16 + 48
	velOff := refOff + len(refCodes)
	swOff := velOff + len(velCodes)

	putU16(&buf, uint16(refOff))
	putU16(&buf, uint16(velOff))
	if len(swCodes) == 0 {
		putU16(&buf, 0) // no spectrum-width array
	} else {
		putU16(&buf, uint16(swOff))
	}
	putU16(&buf, dopplerResolution)
	putU16(&buf, 0) // vcp
	binWriteI16(&buf, 1600) // nyquist vel raw (16.00 m/s)

	buf.Write(refCodes)
	buf.Write(velCodes)
	buf.Write(swCodes)

	return buf.Bytes()
}

func binWriteI16(buf *bytes.Buffer, v int16) {
	putU16(buf, uint16(v))
}

func TestDecodeMessage1_Basic(t *testing.T) {
	ref := []byte{0, 1, 70, 166}
	vel := []byte{131, 133}
	sw := []byte{131, 135}

	record := buildMessage1Record(2, 40, ref, vel, sw, 2)

	rad, err := decodeMessage1(record)
	require.NoError(t, err)

	assert.EqualValues(t, 2, rad.ElevationNumber)
	assert.InDelta(t, 5.0, float64(rad.AzimuthAngle), 1e-6)
	assert.InDelta(t, 5.0, float64(rad.ElevationAngle), 1e-6)

	require.NotNil(t, rad.REF)
	assert.True(t, math.IsNaN(float64(rad.REF.Value(0, false))))
	assert.True(t, math.IsNaN(float64(rad.REF.Value(1, false))))
	assert.InDelta(t, 2.0, rad.REF.Value(2, false), 1e-6)  // (70-66)/2
	assert.InDelta(t, 50.0, rad.REF.Value(3, false), 1e-6) // (166-66)/2

	require.NotNil(t, rad.VEL)
	assert.InDelta(t, 1.0, rad.VEL.Value(0, false), 1e-6) // (131-129)/2 doppler res 2 -> scale 2
	assert.InDelta(t, 2.0, rad.VEL.Value(1, false), 1e-6) // (133-129)/2

	require.NotNil(t, rad.SW)
	assert.InDelta(t, 1.0, rad.SW.Value(0, false), 1e-6)

	require.NotNil(t, rad.RAD)
	assert.InDelta(t, 4600.0, rad.RAD.UnambiguousRangeMeters(), 1e-6)
	assert.InDelta(t, 16.0, rad.RAD.NyquistVelocityMetersPerSec(), 1e-6)
}

func TestDecodeMessage1_DopplerResolutionOne(t *testing.T) {
	ref := []byte{70}
	vel := []byte{131, 133}
	sw := []byte{}

	record := buildMessage1Record(1, 0, ref, vel, sw, 1)

	rad, err := decodeMessage1(record)
	require.NoError(t, err)

	require.NotNil(t, rad.VEL)
	assert.InDelta(t, 2.0, rad.VEL.Value(0, false), 1e-6) // (131-129)/1
}
